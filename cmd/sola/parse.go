package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sola/internal/errors"
	"sola/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	startTime := time.Now()
	program, perr := parser.ParseSource(path, string(source))
	duration := formatDuration(time.Since(startTime))

	if perr != nil {
		reporter := errors.NewReporter(path, string(source))
		fmt.Fprint(os.Stderr, reporter.Format(perr))
		color.Red("Parsing failed after %s", duration)
		os.Exit(1)
	}

	fmt.Println(program.String())
	color.Green("Successfully parsed %s in %s", path, duration)
	return nil
}
