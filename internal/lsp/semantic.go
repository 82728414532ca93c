package lsp

import (
	"sola/internal/parser"
)

// The set of semantic token types the server reports (as required by the
// LSP spec); indices into this slice are the wire encoding.
var SemanticTokenTypes = []string{
	"keyword",
	"type",
	"variable",
	"function",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

const (
	semKeyword uint32 = iota
	semType
	semVariable
	semFunction
	semNumber
	semString
	semOperator
)

type semanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      uint32
	TokenModifiers uint32
}

// collectSemanticTokens classifies the scanner's token stream into LSP
// semantic token classes. Identifiers immediately followed by '(' are
// reported as functions.
func collectSemanticTokens(tokens []parser.Token) []semanticToken {
	var result []semanticToken

	for i, tok := range tokens {
		var class uint32
		switch tok.Type {
		case parser.CONTRACT, parser.FUNCTION, parser.RETURNS,
			parser.IF, parser.ELSE, parser.FOR, parser.IN:
			class = semKeyword
		case parser.UINT, parser.BOOL, parser.STRING_TYPE, parser.ADDRESS:
			class = semType
		case parser.IDENTIFIER:
			class = semVariable
			if i+1 < len(tokens) && tokens[i+1].Type == parser.LEFT_PAREN {
				class = semFunction
			}
		case parser.NUMBER:
			class = semNumber
		case parser.STRING:
			class = semString
		case parser.PLUS, parser.MINUS, parser.STAR, parser.STAR_STAR,
			parser.SLASH, parser.EQUAL, parser.EQUAL_EQUAL, parser.BANG_EQUAL,
			parser.LESS, parser.LESS_EQUAL, parser.GREATER, parser.GREATER_EQUAL,
			parser.AND, parser.OR, parser.DOT_DOT:
			class = semOperator
		default:
			continue
		}

		length := len(tok.Lexeme)
		if tok.Type == parser.STRING {
			length += 2 // the delimiting quotes
		}

		result = append(result, semanticToken{
			Line:      uint32(tok.Position.Line - 1),
			StartChar: uint32(tok.Position.Column - 1),
			Length:    uint32(length),
			TokenType: class,
		})
	}

	return result
}
