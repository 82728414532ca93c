package ast

type NodeType int

const (
	// Special
	ILLEGAL NodeType = iota

	// Root
	PROGRAM

	// Shared
	IDENT
	TYPE_REF

	// Statements
	CONTRACT_DECL
	MEMBER_BLOCK
	FUNCTION_DECL
	VAR_DECL
	EXPR_STMT

	// Expressions
	NUMBER_LIT
	STRING_LIT
	IDENT_EXPR
	BINARY_EXPR
	ASSIGN_EXPR
	IF_EXPR
	FOR_EACH_EXPR
	RANGE_EXPR
	BLOCK_EXPR
	CALL_EXPR
	PARAM_LIST
	ARG_LIST
)

// Operator is the closed set of binary and assignment operators.
type Operator int

const (
	ADD Operator = iota
	SUB
	MUL
	DIV
	POW
	EQ
	NOT_EQ
	LT
	LE
	GT
	GE
	AND
	OR
	ASSIGN
)

var operatorNames = [...]string{
	ADD:    "+",
	SUB:    "-",
	MUL:    "*",
	DIV:    "/",
	POW:    "**",
	EQ:     "==",
	NOT_EQ: "!=",
	LT:     "<",
	LE:     "<=",
	GT:     ">",
	GE:     ">=",
	AND:    "&&",
	OR:     "||",
	ASSIGN: "=",
}

func (op Operator) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "?"
}

// DeclaredType is the closed set of builtin declared types. There are no
// user-defined types and no inference.
type DeclaredType int

const (
	UINT DeclaredType = iota
	BOOL
	STRING
	ADDRESS
)

var declaredTypeNames = [...]string{
	UINT:    "uint",
	BOOL:    "bool",
	STRING:  "string",
	ADDRESS: "address",
}

func (dt DeclaredType) String() string {
	if int(dt) < len(declaredTypeNames) {
		return declaredTypeNames[dt]
	}
	return "?"
}
