package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turingtools/tapir"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tapir",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tapir version %s\n", tapir.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
