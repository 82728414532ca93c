package parser

import (
	"fmt"

	"sola/internal/ast"
	"sola/internal/errors"
)

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) (Token, *errors.Error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.syntaxError(message)
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// checkDeclaredType reports whether the next token starts a typed variable
// declaration.
func (p *Parser) checkDeclaredType() bool {
	switch p.peek().Type {
	case UINT, BOOL, STRING_TYPE, ADDRESS:
		return true
	default:
		return false
	}
}

// syntaxError builds the failure value for the token at the cursor, naming
// what was expected and what was found instead. Parsing halts at the first
// one: there is no recovery and no multi-error reporting.
func (p *Parser) syntaxError(message string) *errors.Error {
	tok := p.peek()
	full := fmt.Sprintf("%s, found %s", message, tok.describe())
	if tok.Type == EOF {
		full = fmt.Sprintf("unexpected end of input: %s", message)
	}
	return &errors.Error{
		Kind:     errors.Syntax,
		Position: p.makePos(tok),
		Message:  full,
	}
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	w := tok.width()
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + w,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + w,
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(message string) (ast.Ident, *errors.Error) {
	tok, err := p.consume(IDENTIFIER, message)
	if err != nil {
		return ast.Ident{}, err
	}
	return p.makeIdent(tok), nil
}
