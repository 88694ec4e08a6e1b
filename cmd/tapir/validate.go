package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turingtools/tapir"
	"github.com/turingtools/tapir/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <specification>",
	Short: "Check a machine specification for consistency",
	Long: `Loads the specification and verifies the transition table is a total
function, then reports structural warnings: states unreachable from state 0
and tables from which the halt marker can never be reached.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := tapir.Load(args[0])
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		report := validator.Check(sim.Machine())
		for _, state := range report.UnreachableStates {
			fmt.Printf("warning: state %d is unreachable from state 0\n", state)
		}
		if !report.HaltReachable {
			fmt.Println("warning: the halt state is unreachable; every run will loop forever")
		}
		if report.Clean() {
			fmt.Println("specification is valid")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
