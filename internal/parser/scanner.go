package parser

import (
	"fmt"
	"unicode"

	"sola/internal/ast"
	"sola/internal/errors"
)

// Scanner converts source text into a sequence of located tokens. It holds
// no state across inputs; distinct sources may be scanned concurrently on
// independent Scanner values.
type Scanner struct {
	filename    string
	source      string
	tokens      []Token
	start       int
	current     int
	startLine   int
	line        int
	startColumn int
	column      int
	err         *errors.Error
}

func NewScanner(filename, source string) *Scanner {
	return &Scanner{
		filename: filename,
		source:   source,
		line:     1,
		column:   1,
	}
}

// ScanTokens tokenizes the whole input, or stops at the first lexical error.
// On error no tokens are returned: the pipeline never exposes partial
// results alongside a failure.
func (s *Scanner) ScanTokens() ([]Token, *errors.Error) {
	for !s.isAtEnd() && s.err == nil {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	if s.err != nil {
		return nil, s.err
	}

	s.tokens = append(s.tokens, Token{
		Type:     EOF,
		Position: Position{Line: s.line, Column: s.column, Offset: s.current},
	})
	return s.tokens, nil
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case ';':
		s.addToken(SEMICOLON)
	case '+':
		s.addToken(PLUS)
	case '-':
		s.addToken(MINUS)
	case '/':
		s.addToken(SLASH)

	// Operators with multi-character variants: the longer spelling is always
	// tried first so it cannot be shadowed by its prefix.
	case '*':
		if s.matchNext('*') {
			s.addToken(STAR_STAR)
		} else {
			s.addToken(STAR)
		}
	case '=':
		if s.matchNext('=') {
			s.addToken(EQUAL_EQUAL)
		} else {
			s.addToken(EQUAL)
		}
	case '<':
		if s.matchNext('=') {
			s.addToken(LESS_EQUAL)
		} else {
			s.addToken(LESS)
		}
	case '>':
		if s.matchNext('=') {
			s.addToken(GREATER_EQUAL)
		} else {
			s.addToken(GREATER)
		}

	// Two-character units whose first character is not a token on its own
	case '!':
		if s.matchNext('=') {
			s.addToken(BANG_EQUAL)
		} else {
			s.reportError("unexpected character: '!'")
		}
	case '&':
		if s.matchNext('&') {
			s.addToken(AND)
		} else {
			s.reportError("unexpected character: '&'")
		}
	case '|':
		if s.matchNext('|') {
			s.addToken(OR)
		} else {
			s.reportError("unexpected character: '|'")
		}
	case '.':
		if s.matchNext('.') {
			s.addToken(DOT_DOT)
		} else {
			s.reportError("unexpected character: '.'")
		}

	// Whitespace (ignored)
	case ' ', '\r', '\t', '\n':

	// String literals
	case '"':
		s.scanString()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("unexpected character: %q", c))
	}
}

// scanIdentifier consumes a maximal run of identifier characters and only
// then checks the keyword table.
func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	s.addToken(lookupIdentifier(text))
}

// scanNumber consumes a maximal run of digits. The lexeme is kept as text;
// the parser materializes the arbitrary-precision value, so literals of any
// length survive losslessly.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(NUMBER)
}

// scanString consumes a quote-delimited span. The content between the
// delimiters is taken verbatim: the language defines no escape sequences.
func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("unterminated string literal")
		return
	}
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, Token{
		Type:     STRING,
		Lexeme:   value,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
	})
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) addToken(tokenType TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: text,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	if s.err != nil {
		return
	}
	s.err = &errors.Error{
		Kind:    errors.Lexical,
		Message: message,
		Position: ast.Position{
			Filename: s.filename,
			Offset:   s.start,
			Line:     s.startLine,
			Column:   s.startColumn,
		},
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}
