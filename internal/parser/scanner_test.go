package parser

import (
	"strings"
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "contract function returns if else for in uint bool string address customIdent"
	expected := []TokenType{
		CONTRACT, FUNCTION, RETURNS, IF, ELSE, FOR, IN,
		UINT, BOOL, STRING_TYPE, ADDRESS, IDENTIFIER,
	}

	tokens, err := NewScanner("test.sola", input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(tokens) != len(expected)+1 { // + EOF
		t.Fatalf("expected %d tokens, got %d", len(expected)+1, len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Errorf("expected trailing EOF token")
	}
}

func TestKeywordsAreNotReservedPrefixes(t *testing.T) {
	tokens, err := NewScanner("test.sola", "iffy formal contractor").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if tokens[i].Type != IDENTIFIER {
			t.Errorf("token %d: expected IDENTIFIER, got %s (%q)", i, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestOperatorsMaximalMunch(t *testing.T) {
	input := "== = != ** * && || <= < >= > .. + - / ( ) { } ; ,"
	expected := []TokenType{
		EQUAL_EQUAL, EQUAL, BANG_EQUAL, STAR_STAR, STAR, AND, OR,
		LESS_EQUAL, LESS, GREATER_EQUAL, GREATER, DOT_DOT,
		PLUS, MINUS, SLASH,
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, SEMICOLON, COMMA,
	}
	expectedLexemes := []string{
		"==", "=", "!=", "**", "*", "&&", "||", "<=", "<", ">=", ">", "..",
		"+", "-", "/", "(", ")", "{", "}", ";", ",",
	}

	tokens, err := NewScanner("test.sola", input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(tokens) != len(expected)+1 {
		t.Fatalf("expected %d tokens, got %d", len(expected)+1, len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("token %d: expected lexeme %q, got %q", i, expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestMaximalMunchWithoutSpaces(t *testing.T) {
	tokens, err := NewScanner("test.sola", "a==b").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	expected := []TokenType{IDENTIFIER, EQUAL_EQUAL, IDENTIFIER, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	longLiteral := "1234567890123456789012345678901234567890"
	input := "42 0 " + longLiteral

	tokens, err := NewScanner("test.sola", input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	for i, lexeme := range []string{"42", "0", longLiteral} {
		if tokens[i].Type != NUMBER {
			t.Errorf("token %d: expected NUMBER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, lexeme, tokens[i].Lexeme)
		}
	}
}

func TestStringsAreVerbatim(t *testing.T) {
	input := `"hello" "a\n"`
	tokens, err := NewScanner("test.sola", input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	if tokens[0].Type != STRING || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING 'hello', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	// No escape processing: the backslash and 'n' stay two characters.
	if tokens[1].Type != STRING || tokens[1].Lexeme != `a\n` {
		t.Errorf("expected STRING 'a\\n' verbatim, got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := NewScanner("test.sola", `"unterminated`).ScanTokens()
	if err == nil {
		t.Fatal("expected an unterminated string error, got none")
	}
	if !strings.Contains(err.Message, "unterminated") {
		t.Errorf("unexpected message: %q", err.Message)
	}
	if err.Position.Column != 1 {
		t.Errorf("expected error at column 1, got %d", err.Position.Column)
	}
}

func TestLexicalErrorLocality(t *testing.T) {
	tokens, err := NewScanner("test.sola", "uint x = @;").ScanTokens()
	if err == nil {
		t.Fatal("expected a lexical error, got none")
	}
	if tokens != nil {
		t.Errorf("expected no tokens alongside the error, got %d", len(tokens))
	}
	if err.Position.Line != 1 || err.Position.Column != 10 {
		t.Errorf("expected error at 1:10 (the '@'), got %d:%d", err.Position.Line, err.Position.Column)
	}
}

func TestLoneOperatorPrefixesAreErrors(t *testing.T) {
	for _, input := range []string{"!", "&", "|", ".", "a . b", "x & y"} {
		if _, err := NewScanner("test.sola", input).ScanTokens(); err == nil {
			t.Errorf("input %q: expected a lexical error, got none", input)
		}
	}
}

func TestPositions(t *testing.T) {
	input := "uint x\n  == y"
	tokens, err := NewScanner("test.sola", input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	expected := []struct {
		line, column, offset int
	}{
		{1, 1, 0},  // uint
		{1, 6, 5},  // x
		{2, 3, 9},  // ==
		{2, 6, 12}, // y
	}
	for i, exp := range expected {
		pos := tokens[i].Position
		if pos.Line != exp.line || pos.Column != exp.column || pos.Offset != exp.offset {
			t.Errorf("token %d: expected %d:%d@%d, got %d:%d@%d",
				i, exp.line, exp.column, exp.offset, pos.Line, pos.Column, pos.Offset)
		}
	}

	// Locations do not go backwards as the scanner advances.
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Position.Offset < tokens[i-1].Position.Offset {
			t.Errorf("token %d offset %d precedes token %d offset %d",
				i, tokens[i].Position.Offset, i-1, tokens[i-1].Position.Offset)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, err := NewScanner("test.sola", "   \n\t ").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Fatalf("expected a single EOF token, got %d tokens", len(tokens))
	}
}

func TestNoCommentSyntax(t *testing.T) {
	// There is no comment syntax: '//' is two division operators.
	tokens, err := NewScanner("test.sola", "// not a comment").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if tokens[0].Type != SLASH || tokens[1].Type != SLASH {
		t.Errorf("expected two SLASH tokens, got %s %s", tokens[0].Type, tokens[1].Type)
	}
}
