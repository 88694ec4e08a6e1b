package domain

import (
	"errors"
	"fmt"
)

// ErrNotHalted is returned when a verdict is requested from an engine that is
// still running.
var ErrNotHalted = errors.New("machine has not halted")

// ErrHalted is returned when a step is attempted on a halted engine.
var ErrHalted = errors.New("machine has halted")

// ErrRunNotFound is returned when a run id cannot be found in a run store.
var ErrRunNotFound = errors.New("run not found")

// ErrNoTape is returned when a run is attempted before a tape was loaded.
var ErrNoTape = errors.New("no tape loaded")

// SpecError reports a malformed machine specification: mismatched counts,
// incomplete rule lines, undeclared symbols in rules, and similar load-time
// problems. It is fatal to startup; no partial machine is usable.
type SpecError struct {
	Line   int // 1-based input line, 0 when not tied to a line
	Reason string
}

func (e *SpecError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed specification: line %d: %s", e.Line, e.Reason)
	}
	return "malformed specification: " + e.Reason
}

// UnknownSymbolError reports a tape cell holding a symbol outside the declared
// alphabet. It is fatal to the current test case only.
type UnknownSymbolError struct {
	Symbol Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", rune(e.Symbol))
}

// IncompleteTransitionError reports a reachable (state, symbol) pair with no
// registered rule. It is fatal to the current test case only; the engine never
// silently defaults to a blank write or a stay move.
type IncompleteTransitionError struct {
	State  int
	Symbol Symbol
}

func (e *IncompleteTransitionError) Error() string {
	return fmt.Sprintf("no transition for state %d reading %q", e.State, rune(e.Symbol))
}
