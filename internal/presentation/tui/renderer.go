// Package tui renders machine definitions and run reports for the terminal.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/turingtools/tapir/pkg/domain"
	"golang.org/x/term"
)

// Renderer formats machine tables and case reports. Color is resolved once at
// construction so piped output stays plain.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer creates a renderer. When color is false (or the profile cannot
// be resolved) all styling degrades to plain ASCII.
func NewRenderer(color bool) *Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}
	return &Renderer{profile: profile}
}

// IsTerminal reports whether f is attached to a TTY, used by the CLI to
// decide the default color mode.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Header returns the one-line machine summary.
func (r *Renderer) Header(m *domain.Machine) string {
	return r.style(m.String(), "#818cf8")
}

// Table renders the transition table as a grid: one row per state, one column
// per symbol in declared order, each cell holding the (write, move, next)
// triple for that state/symbol pair. Pure formatting, no mutation.
func (r *Renderer) Table(m *domain.Machine) string {
	var b strings.Builder
	b.WriteString(r.style("> transition table", "#818cf8"))
	b.WriteString("\n")

	symbols := m.Alphabet().Symbols()
	cells := make(map[int]map[domain.Symbol]string, m.NStates())
	width := len("symbol")
	for _, rule := range m.Table().Rules() {
		row, ok := cells[rule.From]
		if !ok {
			row = make(map[domain.Symbol]string, len(symbols))
			cells[rule.From] = row
		}
		cell := fmt.Sprintf("%s %s %s", rule.Write, rule.Move.Token(), rule.Next)
		row[rule.Read] = cell
		if len(cell) > width {
			width = len(cell)
		}
	}

	b.WriteString("state |")
	for _, sym := range symbols {
		fmt.Fprintf(&b, " %-*s |", width, sym.String())
	}
	b.WriteString("\n")

	for state := 0; state < m.NStates(); state++ {
		fmt.Fprintf(&b, "%5d |", state)
		for _, sym := range symbols {
			fmt.Fprintf(&b, " %-*s |", width, cells[state][sym])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Case returns the report header for one test case.
func (r *Renderer) Case(index, total int, input string) string {
	var b strings.Builder
	fmt.Fprintf(&b, ">> case %d of %d\n", index, total)
	fmt.Fprintf(&b, ">>> input: %q", input)
	return b.String()
}

// Result formats a halted run: final tape, head position and verdict.
func (r *Renderer) Result(res *domain.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, ">>> final tape: %s\n", res.Tape)
	fmt.Fprintf(&b, ">>> head position: %d\n", res.Head)
	fmt.Fprintf(&b, ">>> steps: %d\n", res.Steps)
	if res.Accepted {
		b.WriteString(">>> " + r.style("[accepted]", "#34d399"))
	} else {
		b.WriteString(">>> " + r.style("[rejected]", "#fb7185"))
	}
	return b.String()
}

// CaseError formats a per-case failure. The run continues with the next case.
func (r *Renderer) CaseError(err error) string {
	return ">>> " + r.style("[failed] "+err.Error(), "#fb7185")
}

func (r *Renderer) style(s, color string) string {
	return termenv.String(s).Foreground(r.profile.Color(color)).String()
}
