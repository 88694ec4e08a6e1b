package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/turingtools/tapir/pkg/domain"
)

// Describe renders a markdown summary of the machine for the terminal, using
// glamour with automatic light/dark detection.
func Describe(m *domain.Machine) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return "", err
	}
	return r.Render(DescribeMarkdown(m))
}

// DescribeMarkdown builds the raw markdown document behind Describe. Exposed
// separately so the HTTP adapter can serve it unrendered.
func DescribeMarkdown(m *domain.Machine) string {
	var b strings.Builder

	b.WriteString("# Turing machine\n\n")
	fmt.Fprintf(&b, "- **states**: %d (plus the halt marker)\n", m.NStates())
	fmt.Fprintf(&b, "- **symbols**: %d\n", m.Alphabet().Len())
	fmt.Fprintf(&b, "- **blank**: `%s`\n\n", m.Alphabet().Blank())

	b.WriteString("## Transition table\n\n")
	b.WriteString("| state | read | write | move | next |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, rule := range m.Table().Rules() {
		fmt.Fprintf(&b, "| %d | `%s` | `%s` | %s | %s |\n",
			rule.From, rule.Read, rule.Write, rule.Move, rule.Next)
	}

	b.WriteString("\nA run is **accepted** when the cell under the head at halt is not the blank symbol.\n")
	return b.String()
}
