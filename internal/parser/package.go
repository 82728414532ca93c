package parser

import (
	"sola/internal/ast"
	"sola/internal/errors"
)

// ParseSource runs the full front end pipeline on one compilation unit:
// source text through the scanner, the token stream through the parser.
// On success the whole Program is handed back atomically; on failure only
// the first error is returned and no partial tree is exposed.
func ParseSource(filename, source string) (*ast.Program, *errors.Error) {
	tokens, err := NewScanner(filename, source).ScanTokens()
	if err != nil {
		return nil, err
	}
	return NewParser(filename, tokens).ParseProgram()
}

// ParseExpression parses a single expression spanning the whole input.
// The REPL uses it for expression-only lines; it is also the convenient
// entry point for expression-level tests.
func ParseExpression(filename, source string) (ast.Expr, *errors.Error) {
	tokens, err := NewScanner(filename, source).ScanTokens()
	if err != nil {
		return nil, err
	}

	p := NewParser(filename, tokens)
	expr, perr := p.parseExpr()
	if perr != nil {
		return nil, perr
	}
	if !p.isAtEnd() {
		return nil, p.syntaxError("expected end of expression")
	}
	return expr, nil
}
