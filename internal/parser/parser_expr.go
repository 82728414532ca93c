package parser

import (
	"fmt"
	"math/big"

	"sola/internal/ast"
	"sola/internal/errors"
)

type binaryOp struct {
	precedence int
	op         ast.Operator
}

// binaryOps drives the left-associative, chainable tiers. Assignment sits
// above this table (right-associative, identifier target only) and the
// power operator below it (non-chainable).
var binaryOps = map[TokenType]binaryOp{
	OR:            {1, ast.OR},
	AND:           {2, ast.AND},
	EQUAL_EQUAL:   {3, ast.EQ},
	BANG_EQUAL:    {3, ast.NOT_EQ},
	LESS:          {4, ast.LT},
	LESS_EQUAL:    {4, ast.LE},
	GREATER:       {4, ast.GT},
	GREATER_EQUAL: {4, ast.GE},
	PLUS:          {5, ast.ADD},
	MINUS:         {5, ast.SUB},
	STAR:          {6, ast.MUL},
	SLASH:         {6, ast.DIV},
}

// parseExpr parses a full expression. The structured forms (if, for, block)
// are alternatives at this level, mutually exclusive with the binary
// expression chain.
func (p *Parser) parseExpr() (ast.Expr, *errors.Error) {
	switch p.peek().Type {
	case IF:
		return p.parseIfExpr()
	case FOR:
		return p.parseForEachExpr()
	case LEFT_BRACE:
		return p.parseBlockExpr()
	default:
		return p.parseAssignExpr()
	}
}

// parseAssignExpr parses the assignment tier. The left-hand side is
// syntactically restricted to a bare identifier; the right-hand side
// re-enters the full expression grammar, which makes chained assignment
// right-associative.
func (p *Parser) parseAssignExpr() (ast.Expr, *errors.Error) {
	left, err := p.parseBinaryExpr(0)
	if err != nil {
		return nil, err
	}

	if !p.check(EQUAL) {
		return left, nil
	}

	target, ok := left.(*ast.IdentExpr)
	if !ok {
		return nil, p.syntaxError("left-hand side of assignment must be an identifier")
	}
	p.advance()

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.AssignExpr{
		Pos:    target.Pos,
		EndPos: value.NodeEndPos(),
		Target: target,
		Value:  value,
	}, nil
}

func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, *errors.Error) {
	expr, err := p.parsePowerExpr()
	if err != nil {
		return nil, err
	}

	for {
		entry, ok := binaryOps[p.peek().Type]
		if !ok || entry.precedence < minPrec {
			break
		}

		p.advance()
		right, err := p.parseBinaryExpr(entry.precedence + 1)
		if err != nil {
			return nil, err
		}

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     entry.op,
			Left:   expr,
			Right:  right,
		}
	}

	return expr, nil
}

// parsePowerExpr parses the power tier. Its operand positions are primaries,
// not the power tier itself, so '**' does not chain: "a ** b ** c" is a
// syntax error unless parenthesized.
func (p *Parser) parsePowerExpr() (ast.Expr, *errors.Error) {
	left, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	if !p.check(STAR_STAR) {
		return left, nil
	}
	p.advance()

	right, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	if p.check(STAR_STAR) {
		return nil, p.syntaxError("'**' cannot be chained; parenthesize the right operand")
	}

	return &ast.BinaryExpr{
		Pos:    left.NodePos(),
		EndPos: right.NodeEndPos(),
		Op:     ast.POW,
		Left:   left,
		Right:  right,
	}, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, *errors.Error) {
	switch p.peek().Type {
	case NUMBER:
		return p.numberLit(p.advance())

	case STRING:
		tok := p.advance()
		return &ast.StringLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Lexeme,
		}, nil

	case IDENTIFIER:
		tok := p.advance()
		if p.check(LEFT_PAREN) {
			return p.parseCallExpr(tok)
		}
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}, nil

	case LEFT_PAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RIGHT_PAREN, "expected ')'"); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.syntaxError("expected expression")
	}
}

func (p *Parser) parseCallExpr(nameTok Token) (ast.Expr, *errors.Error) {
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}

	return &ast.CallExpr{
		Pos:    p.makePos(nameTok),
		EndPos: args.EndPos,
		Name:   p.makeIdent(nameTok),
		Args:   args,
	}, nil
}

func (p *Parser) parseArgList() (*ast.ArgList, *errors.Error) {
	open, err := p.consume(LEFT_PAREN, "expected '(' before arguments")
	if err != nil {
		return nil, err
	}

	var args []ast.Expr
	if !p.check(RIGHT_PAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(COMMA) {
				break
			}
		}
	}

	close, err := p.consume(RIGHT_PAREN, "expected ')' after arguments")
	if err != nil {
		return nil, err
	}

	return &ast.ArgList{
		Pos:    p.makePos(open),
		EndPos: p.makeEndPos(close),
		Args:   args,
	}, nil
}

func (p *Parser) parseIfExpr() (ast.Expr, *errors.Error) {
	start, err := p.consume(IF, "expected 'if'")
	if err != nil {
		return nil, err
	}

	cond, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}

	then, err := p.parseBlockExpr()
	if err != nil {
		return nil, err
	}

	expr := &ast.IfExpr{
		Pos:    p.makePos(start),
		EndPos: then.EndPos,
		Cond:   cond,
		Then:   then,
	}

	if p.match(ELSE) {
		var elseBranch ast.Expr
		if p.check(IF) {
			elseBranch, err = p.parseIfExpr()
		} else {
			elseBranch, err = p.parseBlockExpr()
		}
		if err != nil {
			return nil, err
		}
		expr.Else = elseBranch
		expr.EndPos = elseBranch.NodeEndPos()
	}

	return expr, nil
}

func (p *Parser) parseForEachExpr() (ast.Expr, *errors.Error) {
	start, err := p.consume(FOR, "expected 'for'")
	if err != nil {
		return nil, err
	}

	binding, err := p.consumeIdent("expected loop variable after 'for'")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(IN, "expected 'in' after loop variable"); err != nil {
		return nil, err
	}

	rangeExpr, err := p.parseRangeExpr()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlockExpr()
	if err != nil {
		return nil, err
	}

	return &ast.ForEachExpr{
		Pos:     p.makePos(start),
		EndPos:  body.EndPos,
		Binding: binding,
		Range:   rangeExpr,
		Body:    body,
	}, nil
}

// parseRangeExpr parses exactly "number .. number"; the inclusive bounds
// must be literal numbers, not arbitrary expressions.
func (p *Parser) parseRangeExpr() (*ast.RangeExpr, *errors.Error) {
	startTok, err := p.consume(NUMBER, "expected number to start range")
	if err != nil {
		return nil, err
	}
	start, err := p.numberLit(startTok)
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(DOT_DOT, "expected '..' in range"); err != nil {
		return nil, err
	}

	endTok, err := p.consume(NUMBER, "expected number to end range")
	if err != nil {
		return nil, err
	}
	end, err := p.numberLit(endTok)
	if err != nil {
		return nil, err
	}

	return &ast.RangeExpr{
		Pos:    start.Pos,
		EndPos: end.EndPos,
		Start:  start,
		End:    end,
	}, nil
}

func (p *Parser) numberLit(tok Token) (*ast.NumberLit, *errors.Error) {
	value, ok := new(big.Int).SetString(tok.Lexeme, 10)
	if !ok {
		// The scanner guarantees a pure digit run, so this is unreachable on
		// its output; it guards tokens constructed by other callers.
		return nil, &errors.Error{
			Kind:     errors.Syntax,
			Position: p.makePos(tok),
			Message:  fmt.Sprintf("malformed number literal %q", tok.Lexeme),
		}
	}

	return &ast.NumberLit{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  value,
	}, nil
}
