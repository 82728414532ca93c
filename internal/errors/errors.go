package errors

import (
	"fmt"

	"sola/internal/ast"
)

// Kind classifies a front end failure. The taxonomy is closed: malformed
// character-level input is Lexical, a token sequence that violates the
// grammar is Syntax.
type Kind int

const (
	Lexical Kind = iota
	Syntax
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical error"
	case Syntax:
		return "syntax error"
	default:
		return "error"
	}
}

// Error is the single failure value produced by the pipeline. The first
// error encountered aborts processing and is returned to the caller; no
// partial AST accompanies it.
type Error struct {
	Kind     Kind
	Position ast.Position
	Message  string
}

func (e *Error) Error() string {
	if e.Position.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Position.Filename, e.Position.Line, e.Position.Column, e.Kind, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Position.Line, e.Position.Column, e.Kind, e.Message)
}
