package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/turingtools/tapir/internal/logging"
	"github.com/turingtools/tapir/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tapir",
	Short: "Tapir simulates deterministic single-tape Turing machines",
	Long: `Tapir loads a Turing machine specification (transition table, alphabet and
test cases) and runs each case to halt, reporting the final tape and whether
the input was accepted.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// newLogger builds the application logger from the persistent flags.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	if jsonOut, _ := cmd.Flags().GetBool("log-json"); jsonOut {
		return logging.NewJSON(os.Stderr, level), nil
	}
	return logging.New(level), nil
}

// newRenderer builds the terminal renderer, honoring --no-color and TTY
// detection.
func newRenderer(cmd *cobra.Command) *tui.Renderer {
	noColor, _ := cmd.Flags().GetBool("no-color")
	color := !noColor && tui.IsTerminal(os.Stdout)
	return tui.NewRenderer(color)
}
