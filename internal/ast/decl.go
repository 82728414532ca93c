package ast

import "math/big"

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like contract names, variable names, etc.
// Example: "Token", "balance", "transfer"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Program is the AST root: an ordered sequence of contract declarations.
// Declaration order is preserved.
type Program struct {
	Pos       Position
	EndPos    Position
	Contracts []*ContractDecl
}

// ContractDecl represents a top-level contract declaration
// Example: "contract Token { uint total; function mint(uint n) { ... } }"
type ContractDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Members *MemberBlock
}

// MemberBlock is the brace-delimited body of a contract: variable
// declarations, bare expression statements, and function declarations.
type MemberBlock struct {
	Pos     Position
	EndPos  Position
	Members []Stmt
}

// FunctionDecl represents a function declaration
// Example: "function add(uint a, uint b) returns (uint) { a + b }"
type FunctionDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params *ParamList
	Return *TypeRef // nil when the function has no 'returns' clause
	Body   *BlockExpr
}

// VarDecl represents a typed variable declaration, with an optional default
// value at contract level and never in parameter position.
// Example: "uint total = 0", "address owner"
type VarDecl struct {
	Pos    Position
	EndPos Position
	Type   *TypeRef
	Name   Ident
	Value  Expr // nil when the declaration has no initializer
}

// ExprStmt represents a semicolon-terminated expression statement
// Example: "transfer(to, amount);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// TypeRef is a use of one of the builtin declared types
// Example: "uint" in "uint balance"
type TypeRef struct {
	Pos    Position
	EndPos Position
	Kind   DeclaredType
}

// NumberLit represents an integer literal. The value is arbitrary-precision:
// literals of any length parse losslessly.
type NumberLit struct {
	Pos    Position
	EndPos Position
	Value  *big.Int
}

// StringLit represents a string literal; the content between the quotes is
// taken verbatim (the language defines no escape sequences).
type StringLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

// IdentExpr represents an identifier in expression position
// Example: "balance", "owner"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// BinaryExpr represents binary operations
// Example: "a + b", "balance >= amount", "x && y"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     Operator
	Left   Expr
	Right  Expr
}

// AssignExpr represents an assignment. The target is syntactically
// restricted to a bare identifier; the value re-enters the full expression
// grammar, so "a = b = c" is right-associative.
type AssignExpr struct {
	Pos    Position
	EndPos Position
	Target *IdentExpr
	Value  Expr
}

// IfExpr represents a conditional expression. Else is nil, a *BlockExpr, or
// a nested *IfExpr for "else if" chains.
type IfExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   *BlockExpr
	Else   Expr
}

// ForEachExpr represents iteration over an inclusive numeric range
// Example: "for i in 1..10 { total = total + i; }"
type ForEachExpr struct {
	Pos     Position
	EndPos  Position
	Binding Ident
	Range   *RangeExpr
	Body    *BlockExpr
}

// RangeExpr represents an inclusive range between two numeric literals;
// the bounds cannot be arbitrary expressions.
type RangeExpr struct {
	Pos    Position
	EndPos Position
	Start  *NumberLit
	End    *NumberLit
}

// BlockExpr is a compound expression: zero or more semicolon-terminated
// statements followed by an optional trailing expression that supplies the
// block's value. A nil Tail means the block has no value.
type BlockExpr struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
	Tail   Expr
}

// CallExpr represents function calls
// Example: "transfer(to, amount)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   *ArgList
}

// ParamList is the parenthesized parameter list of a function declaration,
// reusing VarDecl entries (without default values).
type ParamList struct {
	Pos    Position
	EndPos Position
	Params []*VarDecl
}

// ArgList is the parenthesized argument list of a call.
type ArgList struct {
	Pos    Position
	EndPos Position
	Args   []Expr
}
