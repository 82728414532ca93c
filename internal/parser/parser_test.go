package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sola/internal/ast"
	"sola/internal/errors"
)

func TestParseEmptyProgram(t *testing.T) {
	program, perr := ParseSource("test.sola", "")
	assert.Nil(t, perr, "should have no parse errors")
	assert.NotNil(t, program)
	assert.Empty(t, program.Contracts)
}

func TestParseEmptyContract(t *testing.T) {
	program, perr := ParseSource("test.sola", `contract Empty {
}`)
	assert.Nil(t, perr, "should have no parse errors")
	assert.Len(t, program.Contracts, 1)
	assert.Equal(t, "Empty", program.Contracts[0].Name.Value)
	assert.Empty(t, program.Contracts[0].Members.Members)
}

func TestParseContractOrderPreserved(t *testing.T) {
	source := `contract B {}
contract A {}
contract C {}`

	program, perr := ParseSource("test.sola", source)
	assert.Nil(t, perr)
	assert.Len(t, program.Contracts, 3)
	assert.Equal(t, "B", program.Contracts[0].Name.Value)
	assert.Equal(t, "A", program.Contracts[1].Name.Value)
	assert.Equal(t, "C", program.Contracts[2].Name.Value)
}

func TestParseVariableMembers(t *testing.T) {
	source := `contract Token {
    uint total = 0;
    address owner;
    bool paused;
    string name = "Sola";
}`

	program, perr := ParseSource("test.sola", source)
	assert.Nil(t, perr, "should have no parse errors")

	members := program.Contracts[0].Members.Members
	assert.Len(t, members, 4)

	total := members[0].(*ast.VarDecl)
	assert.Equal(t, ast.UINT, total.Type.Kind)
	assert.Equal(t, "total", total.Name.Value)
	assert.NotNil(t, total.Value)

	owner := members[1].(*ast.VarDecl)
	assert.Equal(t, ast.ADDRESS, owner.Type.Kind)
	assert.Nil(t, owner.Value, "declaration without initializer has no value")

	paused := members[2].(*ast.VarDecl)
	assert.Equal(t, ast.BOOL, paused.Type.Kind)

	name := members[3].(*ast.VarDecl)
	assert.Equal(t, ast.STRING, name.Type.Kind)
	lit, ok := name.Value.(*ast.StringLit)
	assert.True(t, ok, "initializer should be a string literal")
	assert.Equal(t, "Sola", lit.Value)
}

func TestParseExpressionMember(t *testing.T) {
	source := `contract Init {
    setup();
}`

	program, perr := ParseSource("test.sola", source)
	assert.Nil(t, perr)

	stmt, ok := program.Contracts[0].Members.Members[0].(*ast.ExprStmt)
	assert.True(t, ok, "member should be an expression statement")
	call, ok := stmt.Expr.(*ast.CallExpr)
	assert.True(t, ok, "expression should be a call")
	assert.Equal(t, "setup", call.Name.Value)
	assert.Empty(t, call.Args.Args)
}

func TestParseFunction(t *testing.T) {
	source := `contract Math {
    function add(uint a, uint b) returns (uint) {
        a + b
    }
}`

	program, perr := ParseSource("test.sola", source)
	assert.Nil(t, perr, "should have no parse errors")

	fn, ok := program.Contracts[0].Members.Members[0].(*ast.FunctionDecl)
	assert.True(t, ok, "member should be a function declaration")
	assert.Equal(t, "add", fn.Name.Value)

	assert.Len(t, fn.Params.Params, 2)
	assert.Equal(t, ast.UINT, fn.Params.Params[0].Type.Kind)
	assert.Equal(t, "a", fn.Params.Params[0].Name.Value)
	assert.Equal(t, "b", fn.Params.Params[1].Name.Value)

	assert.NotNil(t, fn.Return)
	assert.Equal(t, ast.UINT, fn.Return.Kind)

	assert.Empty(t, fn.Body.Stmts)
	tail, ok := fn.Body.Tail.(*ast.BinaryExpr)
	assert.True(t, ok, "body tail should be a binary expression")
	assert.Equal(t, ast.ADD, tail.Op)
}

func TestParseFunctionWithoutReturns(t *testing.T) {
	source := `contract T {
    function touch() {
        counter = counter + 1;
    }
}`

	program, perr := ParseSource("test.sola", source)
	assert.Nil(t, perr)

	fn := program.Contracts[0].Members.Members[0].(*ast.FunctionDecl)
	assert.Nil(t, fn.Return)
	assert.Len(t, fn.Body.Stmts, 1)
	assert.Nil(t, fn.Body.Tail, "body with trailing semicolon has no value")
}

func TestParameterDefaultsRejected(t *testing.T) {
	source := `contract T {
    function f(uint a = 1) {}
}`

	_, perr := ParseSource("test.sola", source)
	assert.NotNil(t, perr)
	assert.Equal(t, errors.Syntax, perr.Kind)
	assert.Contains(t, perr.Message, "default")
}

func TestMissingClosingBrace(t *testing.T) {
	_, perr := ParseSource("test.sola", `contract T { uint x;`)
	assert.NotNil(t, perr)
	assert.Equal(t, errors.Syntax, perr.Kind)
	assert.Contains(t, perr.Message, "unexpected end of input")
}

func TestMissingSemicolonAfterDeclaration(t *testing.T) {
	_, perr := ParseSource("test.sola", `contract T { uint x uint y; }`)
	assert.NotNil(t, perr)
	assert.Equal(t, errors.Syntax, perr.Kind)
	assert.Contains(t, perr.Message, "expected ';'")
}

func TestNoPartialProgramOnError(t *testing.T) {
	program, perr := ParseSource("test.sola", `contract A {} contract B { uint }`)
	assert.NotNil(t, perr)
	assert.Nil(t, program, "no partial tree may accompany an error")
}

func TestErrorPositionsCarryFilename(t *testing.T) {
	_, perr := ParseSource("example.sola", `contract T { uint }`)
	assert.NotNil(t, perr)
	assert.Equal(t, "example.sola", perr.Position.Filename)
	assert.Equal(t, 1, perr.Position.Line)
}

func TestRoundTripStability(t *testing.T) {
	source := `contract Token {
    uint total = 0;

    function mint(uint amount) returns (uint) {
        total = total + amount;
        total
    }

    function burn(uint amount) {
        if amount <= total {
            total = total - amount;
        } else {
            total = 0;
        };
    }
}`

	first, err1 := ParseSource("test.sola", source)
	second, err2 := ParseSource("test.sola", source)
	assert.Nil(t, err1)
	assert.Nil(t, err2)
	assert.Equal(t, first, second, "parsing is deterministic")
	assert.Equal(t, first.String(), second.String())
}
