package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turingtools/tapir"
	"github.com/turingtools/tapir/internal/presentation/graph"
	"github.com/turingtools/tapir/internal/presentation/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <specification>",
	Short: "Print the machine summary and transition table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := tapir.Load(args[0])
		if err != nil {
			return err
		}

		describe, _ := cmd.Flags().GetBool("describe")
		if describe {
			out, err := tui.Describe(sim.Machine())
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		}

		mermaid, _ := cmd.Flags().GetBool("mermaid")
		if mermaid {
			fmt.Print(graph.GenerateMermaid(sim.Machine()))
			return nil
		}

		r := newRenderer(cmd)
		fmt.Println(r.Header(sim.Machine()))
		fmt.Println(r.Table(sim.Machine()))
		fmt.Printf("> %d cases available\n", len(sim.Cases()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("describe", false, "Render a markdown description instead of the raw grid")
	showCmd.Flags().Bool("mermaid", false, "Emit a Mermaid state diagram of the transition graph")
}
