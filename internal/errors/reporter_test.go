package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"sola/internal/ast"
)

func TestReporterFormatsSyntaxError(t *testing.T) {
	color.NoColor = true

	source := `contract Counter {
  uint count
}`
	reporter := NewReporter("test.sola", source)

	err := &Error{
		Kind:     Syntax,
		Position: ast.Position{Filename: "test.sola", Line: 2, Column: 8},
		Message:  "expected ';' after variable declaration, found '}'",
	}
	formatted := reporter.Format(err)

	assert.Contains(t, formatted, "syntax error:")
	assert.Contains(t, formatted, "expected ';'")
	assert.Contains(t, formatted, "test.sola:2:8")
	assert.Contains(t, formatted, "uint count")

	// Caret sits under column 8 of the quoted source line.
	lines := strings.Split(formatted, "\n")
	var marker string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			marker = line
		}
	}
	assert.NotEmpty(t, marker, "formatted output should carry a caret marker")
	assert.Equal(t, len(marker), strings.Index(marker, "^")+1)
}

func TestReporterFormatsLexicalError(t *testing.T) {
	color.NoColor = true

	reporter := NewReporter("test.sola", "uint x = @;")
	err := &Error{
		Kind:     Lexical,
		Position: ast.Position{Filename: "test.sola", Line: 1, Column: 10},
		Message:  "unexpected character '@'",
	}
	formatted := reporter.Format(err)

	assert.Contains(t, formatted, "lexical error:")
	assert.Contains(t, formatted, "unexpected character '@'")
	assert.Contains(t, formatted, "test.sola:1:10")
}

func TestReporterSkipsSourceLineOutOfRange(t *testing.T) {
	color.NoColor = true

	reporter := NewReporter("test.sola", "contract C {}")
	err := &Error{
		Kind:     Syntax,
		Position: ast.Position{Filename: "test.sola", Line: 99, Column: 1},
		Message:  "unexpected end of input: expected '}'",
	}
	formatted := reporter.Format(err)

	assert.Contains(t, formatted, "test.sola:99:1")
	assert.NotContains(t, formatted, "^")
}

func TestErrorStringIncludesLocation(t *testing.T) {
	err := &Error{
		Kind:     Lexical,
		Position: ast.Position{Filename: "main.sola", Line: 3, Column: 7},
		Message:  "unterminated string literal",
	}

	assert.Contains(t, err.Error(), "main.sola:3:7")
	assert.Contains(t, err.Error(), "lexical error")
	assert.Contains(t, err.Error(), "unterminated string literal")
}
