// SPDX-License-Identifier: Apache-2.0
package repl

import (
	"fmt"
	"strings"

	"github.com/peterh/liner"

	"sola/internal/ast"
	"sola/internal/errors"
	"sola/internal/parser"
)

const prompt = ">> "

// Start runs the read-parse-print loop. A line starting with 'contract' is
// parsed as a program; anything else is parsed as a single expression.
func Start() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("Sola REPL — enter an expression or a contract, Ctrl-D to exit")

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			// io.EOF on Ctrl-D, liner.ErrPromptAborted on Ctrl-C
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(input)

		fmt.Print(eval(trimmed))
	}
}

func eval(input string) string {
	var node ast.Node
	var perr *errors.Error

	if strings.HasPrefix(input, "contract") {
		node, perr = parser.ParseSource("repl", input)
	} else {
		node, perr = parser.ParseExpression("repl", input)
	}

	if perr != nil {
		return errors.NewReporter("repl", input).Format(perr)
	}
	return node.String() + "\n"
}
