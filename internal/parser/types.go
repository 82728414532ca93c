package parser

import "fmt"

// TokenType is the closed set of token kinds.
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING

	// Structural keywords
	CONTRACT
	FUNCTION
	RETURNS
	IF
	ELSE
	FOR
	IN

	// Type keywords
	UINT
	BOOL
	STRING_TYPE
	ADDRESS

	// Operators
	PLUS
	MINUS
	STAR
	STAR_STAR
	SLASH
	EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	OR

	// Separators
	COMMA
	SEMICOLON
	DOT_DOT

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
)

var tokenNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENTIFIER:    "IDENTIFIER",
	NUMBER:        "NUMBER",
	STRING:        "STRING",
	CONTRACT:      "CONTRACT",
	FUNCTION:      "FUNCTION",
	RETURNS:       "RETURNS",
	IF:            "IF",
	ELSE:          "ELSE",
	FOR:           "FOR",
	IN:            "IN",
	UINT:          "UINT",
	BOOL:          "BOOL",
	STRING_TYPE:   "STRING_TYPE",
	ADDRESS:       "ADDRESS",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	STAR:          "STAR",
	STAR_STAR:     "STAR_STAR",
	SLASH:         "SLASH",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	BANG_EQUAL:    "BANG_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	AND:           "AND",
	OR:            "OR",
	COMMA:         "COMMA",
	SEMICOLON:     "SEMICOLON",
	DOT_DOT:       "DOT_DOT",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
}

func (tt TokenType) String() string {
	if int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return "UNKNOWN"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// describe returns the way a token is referred to in diagnostics.
func (t Token) describe() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case IDENTIFIER:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	case NUMBER:
		return fmt.Sprintf("number %s", t.Lexeme)
	case STRING:
		return "string literal"
	default:
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
}

// width is the number of source characters the token spans. String tokens
// store their content without the delimiting quotes.
func (t Token) width() int {
	if t.Type == STRING {
		return len(t.Lexeme) + 2
	}
	return len(t.Lexeme)
}
