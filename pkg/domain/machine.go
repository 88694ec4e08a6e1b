package domain

import (
	"fmt"
	"strings"
)

// Machine is an immutable Turing machine definition. It is read-only during
// evaluation and may be shared across engines evaluating independent tapes.
type Machine struct {
	alphabet *Alphabet
	table    *Table
}

// NewMachine assembles a machine from its alphabet and a complete transition
// table. An incomplete table is a specification error: no partial machine is
// usable.
func NewMachine(alphabet *Alphabet, table *Table) (*Machine, error) {
	if alphabet == nil || table == nil {
		return nil, &SpecError{Reason: "machine requires an alphabet and a transition table"}
	}
	if err := table.Complete(); err != nil {
		return nil, err
	}
	return &Machine{alphabet: alphabet, table: table}, nil
}

// Alphabet returns the machine's symbol alphabet.
func (m *Machine) Alphabet() *Alphabet { return m.alphabet }

// Table returns the machine's transition table.
func (m *Machine) Table() *Table { return m.table }

// NStates returns the number of running states.
func (m *Machine) NStates() int { return m.table.NStates() }

func (m *Machine) String() string {
	tokens := make([]string, 0, m.alphabet.Len())
	for _, s := range m.alphabet.Symbols() {
		tokens = append(tokens, s.String())
	}
	return fmt.Sprintf("[turing machine] states=%d symbols=%d alphabet=[%s]",
		m.NStates(), m.alphabet.Len(), strings.Join(tokens, " "))
}

// Result captures the outcome of running one tape to halt.
type Result struct {
	// Input is the raw tape string the run started from.
	Input string `json:"input"`

	// Tape is the final tape contents, including cells added by extension.
	Tape string `json:"tape"`

	// Head is the final head position within Tape.
	Head int `json:"head"`

	// Steps is the number of transitions executed before halting.
	Steps int `json:"steps"`

	// Accepted reports the verdict: true unless the cell under the head at
	// halt holds the blank symbol. The verdict inspects only that single
	// cell, never the rest of the tape.
	Accepted bool `json:"accepted"`
}
