package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sola/internal/errors"
	"sola/internal/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	tokens, perr := parser.NewScanner(path, string(source)).ScanTokens()
	if perr != nil {
		reporter := errors.NewReporter(path, string(source))
		fmt.Fprint(os.Stderr, reporter.Format(perr))
		os.Exit(1)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Type", "Lexeme", "Line", "Column", "Offset"})
	for _, tok := range tokens {
		table.Append([]string{
			tok.Type.String(),
			tok.Lexeme,
			strconv.Itoa(tok.Position.Line),
			strconv.Itoa(tok.Position.Column),
			strconv.Itoa(tok.Position.Offset),
		})
	}
	table.Render()
	return nil
}
