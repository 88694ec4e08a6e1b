package tapir_test

import (
	"context"
	"fmt"
	"log"

	"github.com/turingtools/tapir"
	"github.com/turingtools/tapir/pkg/domain"
)

// ExampleNew demonstrates using tapir purely as a Go library, building the
// machine from Go values without reading a specification file.
func ExampleNew() {
	// 1. Declare the alphabet. Index 0 is the blank symbol.
	alphabet, err := domain.NewAlphabet([]string{"_", "1"})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Fill the transition table. This machine appends one '1' to a
	// unary number: scan right over the 1s, write on the first blank, halt.
	table := domain.NewTable(2, alphabet)
	rules := []domain.Rule{
		{From: 0, Read: '1', Write: '1', Move: domain.MoveRight, Next: domain.ToState(0)},
		{From: 0, Read: '_', Write: '1', Move: domain.MoveStay, Next: domain.ToState(1)},
		{From: 1, Read: '1', Write: '1', Move: domain.MoveStay, Next: domain.Halt()},
		{From: 1, Read: '_', Write: '_', Move: domain.MoveStay, Next: domain.Halt()},
	}
	for _, r := range rules {
		if err := table.Insert(r); err != nil {
			log.Fatal(err)
		}
	}

	// 3. Assemble the machine. Construction fails if the table is not total.
	machine, err := domain.NewMachine(alphabet, table)
	if err != nil {
		log.Fatal(err)
	}

	// 4. Evaluate tapes. Each call runs on a fresh engine.
	sim := tapir.New(machine, nil)
	for _, input := range []string{"11", ""} {
		res, err := sim.Evaluate(context.Background(), input)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("input=%q tape=%s accepted=%v\n", input, res.Tape, res.Accepted)
	}

	// Output:
	// input="11" tape=111 accepted=true
	// input="" tape=1 accepted=true
}
