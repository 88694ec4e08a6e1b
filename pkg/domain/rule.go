package domain

import (
	"fmt"
	"sort"
)

// HaltWire is the wire representation of the halt state in rule lines.
const HaltWire = -1

// Next is the tagged next-state value of a rule: either a running state in
// [0, nstates) or the terminal halt marker. It replaces the wire format's
// untyped -1 sentinel so that no reserved integer leaks into lookups.
type Next struct {
	halt  bool
	state int
}

// Halt returns the terminal next-state value.
func Halt() Next { return Next{halt: true} }

// ToState returns a next-state value pointing at a running state.
func ToState(state int) Next { return Next{state: state} }

// ParseNext converts a wire next-state integer (-1 = halt) into a Next.
func ParseNext(wire int) (Next, error) {
	if wire == HaltWire {
		return Halt(), nil
	}
	if wire < 0 {
		return Next{}, &SpecError{Reason: fmt.Sprintf("invalid next state %d", wire)}
	}
	return ToState(wire), nil
}

// Halted reports whether this value is the halt marker.
func (n Next) Halted() bool { return n.halt }

// State returns the running state id. Only meaningful when Halted is false.
func (n Next) State() int { return n.state }

func (n Next) String() string {
	if n.halt {
		return "halt"
	}
	return fmt.Sprintf("%d", n.state)
}

// Rule is one entry of the transition function:
// in state From reading Read, write Write, move the head, continue at Next.
type Rule struct {
	From  int
	Read  Symbol
	Write Symbol
	Move  Move
	Next  Next
}

func (r Rule) String() string {
	return fmt.Sprintf("(%d, %s) -> (%s, %s, %s)", r.From, r.Read, r.Write, r.Move.Token(), r.Next)
}

type tableKey struct {
	state  int
	symbol int
}

// Table is the deterministic transition function of a machine, keyed by
// (state, symbol index). Insertion order is irrelevant: the key itself imposes
// the canonical (state, symbol) order, so lookups never depend on how the
// rules were supplied.
type Table struct {
	nstates  int
	alphabet *Alphabet
	rules    map[tableKey]Rule
}

// NewTable creates an empty table for nstates running states over alphabet.
func NewTable(nstates int, alphabet *Alphabet) *Table {
	return &Table{
		nstates:  nstates,
		alphabet: alphabet,
		rules:    make(map[tableKey]Rule, nstates*alphabet.Len()),
	}
}

// NStates returns the number of running states the table covers.
func (t *Table) NStates() int { return t.nstates }

// Len returns the number of registered rules.
func (t *Table) Len() int { return len(t.rules) }

// Insert registers a rule. The rule's states and symbols must be declared, and
// the (From, Read) key must not already be present.
func (t *Table) Insert(r Rule) error {
	if r.From < 0 || r.From >= t.nstates {
		return &SpecError{Reason: fmt.Sprintf("rule %s: state %d out of range [0, %d)", r, r.From, t.nstates)}
	}
	readIdx, err := t.alphabet.Index(r.Read)
	if err != nil {
		return &SpecError{Reason: fmt.Sprintf("rule %s: read symbol %s not in alphabet", r, quote(r.Read.String()))}
	}
	if !t.alphabet.Contains(r.Write) {
		return &SpecError{Reason: fmt.Sprintf("rule %s: write symbol %s not in alphabet", r, quote(r.Write.String()))}
	}
	if !r.Next.Halted() && (r.Next.State() < 0 || r.Next.State() >= t.nstates) {
		return &SpecError{Reason: fmt.Sprintf("rule %s: next state %s out of range [0, %d)", r, r.Next, t.nstates)}
	}

	key := tableKey{state: r.From, symbol: readIdx}
	if _, dup := t.rules[key]; dup {
		return &SpecError{Reason: fmt.Sprintf("duplicate rule for state %d reading %s", r.From, quote(r.Read.String()))}
	}
	t.rules[key] = r
	return nil
}

// Lookup returns the rule for (state, sym).
// Returns an UnknownSymbolError if sym is not declared, or an
// IncompleteTransitionError if no rule was registered for the pair.
func (t *Table) Lookup(state int, sym Symbol) (Rule, error) {
	symIdx, err := t.alphabet.Index(sym)
	if err != nil {
		return Rule{}, err
	}
	r, ok := t.rules[tableKey{state: state, symbol: symIdx}]
	if !ok {
		return Rule{}, &IncompleteTransitionError{State: state, Symbol: sym}
	}
	return r, nil
}

// Complete verifies that the table is a total function: exactly one rule per
// (state, symbol) combination.
func (t *Table) Complete() error {
	want := t.nstates * t.alphabet.Len()
	if len(t.rules) != want {
		return &SpecError{Reason: fmt.Sprintf("transition table has %d rules, want %d (states x symbols)", len(t.rules), want)}
	}
	for state := 0; state < t.nstates; state++ {
		for symIdx := 0; symIdx < t.alphabet.Len(); symIdx++ {
			if _, ok := t.rules[tableKey{state: state, symbol: symIdx}]; !ok {
				return &SpecError{Reason: fmt.Sprintf("missing rule for state %d reading %s", state, quote(t.alphabet.At(symIdx).String()))}
			}
		}
	}
	return nil
}

// Rules returns all registered rules in canonical ascending (state, symbol)
// order, regardless of insertion order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, 0, len(t.rules))
	keys := make([]tableKey, 0, len(t.rules))
	for k := range t.rules {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}
		return keys[i].symbol < keys[j].symbol
	})
	for _, k := range keys {
		out = append(out, t.rules[k])
	}
	return out
}
