package parser

import (
	"sola/internal/ast"
	"sola/internal/errors"
)

func (p *Parser) parseFunction() (*ast.FunctionDecl, *errors.Error) {
	start, err := p.consume(FUNCTION, "expected 'function'")
	if err != nil {
		return nil, err
	}

	name, err := p.consumeIdent("expected function name")
	if err != nil {
		return nil, err
	}

	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}

	returnType, err := p.parseReturnsClause()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlockExpr()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{
		Pos:    p.makePos(start),
		EndPos: body.EndPos,
		Name:   name,
		Params: params,
		Return: returnType,
		Body:   body,
	}, nil
}

// parseParamList parses the parenthesized comma-separated parameter list.
// Each parameter is a typed declaration; defaults are not permitted here.
func (p *Parser) parseParamList() (*ast.ParamList, *errors.Error) {
	open, err := p.consume(LEFT_PAREN, "expected '(' after function name")
	if err != nil {
		return nil, err
	}

	var params []*ast.VarDecl
	if !p.check(RIGHT_PAREN) {
		for {
			param, err := p.parseVarDecl(false)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(COMMA) {
				break
			}
		}
	}

	close, err := p.consume(RIGHT_PAREN, "expected ')' after parameter list")
	if err != nil {
		return nil, err
	}

	return &ast.ParamList{
		Pos:    p.makePos(open),
		EndPos: p.makeEndPos(close),
		Params: params,
	}, nil
}

// parseReturnsClause parses the optional "returns (Type)" clause.
func (p *Parser) parseReturnsClause() (*ast.TypeRef, *errors.Error) {
	if !p.match(RETURNS) {
		return nil, nil
	}

	if _, err := p.consume(LEFT_PAREN, "expected '(' after 'returns'"); err != nil {
		return nil, err
	}
	typeRef, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RIGHT_PAREN, "expected ')' after return type"); err != nil {
		return nil, err
	}

	return typeRef, nil
}

// parseBlockExpr parses a compound expression: semicolon-terminated
// statements followed by an optional trailing expression with no semicolon.
// The trailing expression, if present, is the block's value. This shape is
// shared by function bodies, if/else arms, and loop bodies.
func (p *Parser) parseBlockExpr() (*ast.BlockExpr, *errors.Error) {
	open, err := p.consume(LEFT_BRACE, "expected '{' to open block")
	if err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	var tail ast.Expr

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if p.checkDeclaredType() {
			decl, err := p.parseVarDecl(true)
			if err != nil {
				return nil, err
			}
			semi, err := p.consume(SEMICOLON, "expected ';' after variable declaration")
			if err != nil {
				return nil, err
			}
			decl.EndPos = p.makeEndPos(semi)
			stmts = append(stmts, decl)
			continue
		}

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if p.match(SEMICOLON) {
			stmts = append(stmts, &ast.ExprStmt{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(p.previous()),
				Expr:   expr,
			})
		} else if p.check(RIGHT_BRACE) {
			tail = expr
			break
		} else {
			return nil, p.syntaxError("expected ';' or '}' after expression")
		}
	}

	close, err := p.consume(RIGHT_BRACE, "expected '}' to close block")
	if err != nil {
		return nil, err
	}

	return &ast.BlockExpr{
		Pos:    p.makePos(open),
		EndPos: p.makeEndPos(close),
		Stmts:  stmts,
		Tail:   tail,
	}, nil
}
