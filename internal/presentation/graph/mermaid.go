// Package graph renders a machine's transition structure as a Mermaid state
// diagram, for embedding in documentation.
package graph

import (
	"fmt"
	"strings"

	"github.com/turingtools/tapir/pkg/domain"
)

// GenerateMermaid produces Mermaid stateDiagram-v2 syntax from a machine.
// Each edge is labeled with its (read / write, move) annotation; transitions
// to the halt marker point at the terminal state.
func GenerateMermaid(m *domain.Machine) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString("    [*] --> s0\n")

	for _, rule := range m.Table().Rules() {
		from := stateID(rule.From)
		to := "[*]"
		if !rule.Next.Halted() {
			to = stateID(rule.Next.State())
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s: %s / %s, %s\n",
			from, to, escape(rule.Read), escape(rule.Write), rule.Move))
	}
	return sb.String()
}

func stateID(state int) string {
	return fmt.Sprintf("s%d", state)
}

// escape replaces symbols Mermaid treats as markup.
func escape(sym domain.Symbol) string {
	s := sym.String()
	switch s {
	case "_":
		return "blank"
	case ":", ";", "#":
		return fmt.Sprintf("%q", s)
	default:
		return s
	}
}
