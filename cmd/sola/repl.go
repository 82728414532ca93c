package main

import (
	"github.com/spf13/cobra"

	"sola/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse expressions and contracts interactively",
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
