package parser

// KEYWORDS maps exact identifier spellings to keyword tokens. Lookup happens
// only after the maximal identifier scan, so keywords are never reserved
// prefixes: "iffy" is an identifier.
var KEYWORDS = map[string]TokenType{
	"contract": CONTRACT,
	"function": FUNCTION,
	"returns":  RETURNS,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"in":       IN,
	"uint":     UINT,
	"bool":     BOOL,
	"string":   STRING_TYPE,
	"address":  ADDRESS,
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
