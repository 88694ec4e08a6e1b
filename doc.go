/*
Package tapir simulates single-tape, deterministic Turing machines: given a
finite transition table over a fixed symbol alphabet and a set of input tapes,
it runs the machine on each tape and reports acceptance or rejection.

# Concept

A machine is an immutable definition: an ordered alphabet whose first symbol
is the blank, and a total transition function mapping every (state, symbol)
pair to a (write, move, next-state) triple. Execution owns a mutable context
(tape, head, current state) and steps until the transition function yields the
halt marker. The tape is conceptually infinite: walking off either end grows
it by one blank cell.

A halted run is accepted exactly when the cell under the head is not the blank
symbol. This head-local rule is the literal contract of the simulated machine
format; the halting state itself carries no accept/reject meaning.

The engine performs no cycle detection. A transition table that never reaches
the halt marker runs forever; an optional step budget can be configured to
bound runaway tables explicitly.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/turingtools/tapir"
	)

	func main() {
		sim, err := tapir.Load("machine.txt")
		if err != nil {
			log.Fatal(err)
		}

		for _, cr := range sim.EvaluateAll(context.Background()) {
			if cr.Err != nil {
				fmt.Printf("case %d failed: %v\n", cr.Index+1, cr.Err)
				continue
			}
			fmt.Printf("case %d: tape=%s accepted=%v\n", cr.Index+1, cr.Result.Tape, cr.Result.Accepted)
		}
	}

Errors are local to one evaluation: an unknown symbol or a gap in the
transition table aborts only that case, and the remaining cases still run.
Specification load errors abort the whole run before any case executes.
*/
package tapir
