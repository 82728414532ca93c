package parser

import (
	"sola/internal/ast"
	"sola/internal/errors"
)

// Parser consumes the token sequence produced by the scanner and builds the
// AST. It is single-pass and deterministic; the first unexpected token (or
// unexpected end of input) aborts with a syntax error.
type Parser struct {
	filename string
	tokens   []Token
	current  int
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseProgram parses zero or more contract declarations up to end of input.
func (p *Parser) ParseProgram() (*ast.Program, *errors.Error) {
	program := &ast.Program{
		Pos:    p.makePos(p.peek()),
		EndPos: p.makePos(p.peek()),
	}

	for !p.isAtEnd() {
		contract, err := p.parseContract()
		if err != nil {
			return nil, err
		}
		program.Contracts = append(program.Contracts, contract)
		program.EndPos = contract.EndPos
	}

	return program, nil
}

func (p *Parser) parseContract() (*ast.ContractDecl, *errors.Error) {
	start, err := p.consume(CONTRACT, "expected 'contract'")
	if err != nil {
		return nil, err
	}

	name, err := p.consumeIdent("expected contract name")
	if err != nil {
		return nil, err
	}

	members, err := p.parseMemberBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ContractDecl{
		Pos:     p.makePos(start),
		EndPos:  members.EndPos,
		Name:    name,
		Members: members,
	}, nil
}

// parseMemberBlock parses the brace-delimited contract body. Members are
// zero or more of: a typed variable declaration terminated by ';', a bare
// expression terminated by ';', or a function declaration (no trailing ';').
func (p *Parser) parseMemberBlock() (*ast.MemberBlock, *errors.Error) {
	open, err := p.consume(LEFT_BRACE, "expected '{' to open contract body")
	if err != nil {
		return nil, err
	}

	var members []ast.Stmt
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		switch {
		case p.check(FUNCTION):
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			members = append(members, fn)

		case p.checkDeclaredType():
			decl, err := p.parseVarDecl(true)
			if err != nil {
				return nil, err
			}
			semi, err := p.consume(SEMICOLON, "expected ';' after variable declaration")
			if err != nil {
				return nil, err
			}
			decl.EndPos = p.makeEndPos(semi)
			members = append(members, decl)

		default:
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			semi, err := p.consume(SEMICOLON, "expected ';' after expression")
			if err != nil {
				return nil, err
			}
			members = append(members, &ast.ExprStmt{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(semi),
				Expr:   expr,
			})
		}
	}

	close, err := p.consume(RIGHT_BRACE, "expected '}' to close contract body")
	if err != nil {
		return nil, err
	}

	return &ast.MemberBlock{
		Pos:     p.makePos(open),
		EndPos:  p.makeEndPos(close),
		Members: members,
	}, nil
}

// parseVarDecl parses "type name" with an optional "= expr" initializer.
// Defaults are only meaningful for contract-level and block-level
// declarations; parameter positions pass allowDefault=false.
func (p *Parser) parseVarDecl(allowDefault bool) (*ast.VarDecl, *errors.Error) {
	typeRef, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}

	name, err := p.consumeIdent("expected variable name after type")
	if err != nil {
		return nil, err
	}

	decl := &ast.VarDecl{
		Pos:    typeRef.Pos,
		EndPos: name.EndPos,
		Type:   typeRef,
		Name:   name,
	}

	if p.check(EQUAL) {
		if !allowDefault {
			return nil, p.syntaxError("parameters cannot have default values")
		}
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		decl.Value = value
		decl.EndPos = value.NodeEndPos()
	}

	return decl, nil
}

func (p *Parser) parseTypeRef() (*ast.TypeRef, *errors.Error) {
	var kind ast.DeclaredType
	switch p.peek().Type {
	case UINT:
		kind = ast.UINT
	case BOOL:
		kind = ast.BOOL
	case STRING_TYPE:
		kind = ast.STRING
	case ADDRESS:
		kind = ast.ADDRESS
	default:
		return nil, p.syntaxError("expected type name")
	}

	tok := p.advance()
	return &ast.TypeRef{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Kind:   kind,
	}, nil
}
