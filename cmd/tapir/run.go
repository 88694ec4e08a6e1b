package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turingtools/tapir"
)

var runCmd = &cobra.Command{
	Use:   "run <specification>",
	Short: "Run all test cases from a machine specification",
	Long: `Loads the specification file (text or YAML, by extension), prints the
machine summary and transition table, then evaluates every bundled test case.
A case that fails (unknown symbol, missing transition) is reported and the
remaining cases still run. The exit status is 0 regardless of verdicts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		stepLimit, _ := cmd.Flags().GetInt("step-limit")

		sim, err := tapir.Load(args[0],
			tapir.WithLogger(logger),
			tapir.WithStepLimit(stepLimit),
		)
		if err != nil {
			return err
		}

		r := newRenderer(cmd)
		fmt.Println(r.Header(sim.Machine()))
		fmt.Println(r.Table(sim.Machine()))

		cases := sim.Cases()
		fmt.Printf("> %d cases available\n\n", len(cases))

		for _, cr := range sim.EvaluateAll(cmd.Context()) {
			fmt.Println(r.Case(cr.Index+1, len(cases), cr.Input))
			if cr.Err != nil {
				fmt.Println(r.CaseError(cr.Err))
			} else {
				fmt.Println(r.Result(cr.Result))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("step-limit", 0, "Abort a case after this many steps (0 = unbounded)")

	// The default form delegates to runCmd.RunE with the root command, so the
	// flag must exist on both for the two invocations to behave identically.
	rootCmd.Flags().Int("step-limit", 0, "Abort a case after this many steps (0 = unbounded)")

	// Make 'run' the default when a file is given without a subcommand.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runCmd.RunE(cmd, args)
	}
	rootCmd.Args = cobra.ArbitraryArgs
}
