package runtime

import (
	"strings"

	"github.com/turingtools/tapir/pkg/domain"
)

// Tape is a mutable symbol sequence, conceptually infinite in both directions.
// It is backed by a physical buffer plus an origin offset, so extending on the
// left is amortized O(1) and never shifts existing cells on the happy path.
type Tape struct {
	blank domain.Symbol
	cells []domain.Symbol // physical storage
	start int             // offset of logical cell 0 within cells
	n     int             // logical length
}

// NewTape creates a tape holding the given cells. An empty input yields a
// single blank cell so the head always starts on the tape.
func NewTape(blank domain.Symbol, cells []domain.Symbol) *Tape {
	if len(cells) == 0 {
		cells = []domain.Symbol{blank}
	}
	t := &Tape{
		blank: blank,
		cells: make([]domain.Symbol, len(cells)),
		n:     len(cells),
	}
	copy(t.cells, cells)
	return t
}

// Len returns the logical tape length.
func (t *Tape) Len() int { return t.n }

// Read returns the symbol at logical index i.
func (t *Tape) Read(i int) domain.Symbol {
	return t.cells[t.start+i]
}

// Write stores sym at logical index i.
func (t *Tape) Write(i int, sym domain.Symbol) {
	t.cells[t.start+i] = sym
}

// ExtendRight appends exactly one blank cell to the right end.
func (t *Tape) ExtendRight() {
	end := t.start + t.n
	if end < len(t.cells) {
		t.cells[end] = t.blank
	} else {
		t.cells = append(t.cells, t.blank)
	}
	t.n++
}

// ExtendLeft prepends exactly one blank cell. Logical indices of existing
// cells all shift up by one; callers adjust the head accordingly.
func (t *Tape) ExtendLeft() {
	if t.start == 0 {
		// Reallocate with headroom proportional to the current size so
		// repeated left extension stays amortized O(1).
		headroom := t.n
		if headroom < 4 {
			headroom = 4
		}
		grown := make([]domain.Symbol, headroom+len(t.cells))
		copy(grown[headroom:], t.cells)
		t.cells = grown
		t.start = headroom
	}
	t.start--
	t.cells[t.start] = t.blank
	t.n++
}

// Cells returns a copy of the logical tape contents.
func (t *Tape) Cells() []domain.Symbol {
	out := make([]domain.Symbol, t.n)
	copy(out, t.cells[t.start:t.start+t.n])
	return out
}

func (t *Tape) String() string {
	var b strings.Builder
	b.Grow(t.n)
	for _, s := range t.cells[t.start : t.start+t.n] {
		b.WriteRune(rune(s))
	}
	return b.String()
}
