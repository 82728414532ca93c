package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Contracts))
	for _, contract := range p.Contracts {
		parts = append(parts, contract.String())
	}
	return strings.Join(parts, "\n\n")
}

func (i *Ident) String() string {
	return i.Value
}

func (t *TypeRef) String() string {
	return t.Kind.String()
}

func (c *ContractDecl) String() string {
	return fmt.Sprintf("contract %s %s", c.Name.Value, c.Members.String())
}

func (m *MemberBlock) String() string {
	if len(m.Members) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, member := range m.Members {
		b.WriteString("  " + strings.ReplaceAll(memberString(member), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// memberString renders a statement in a statement list, re-adding the
// semicolon that terminates declarations and expression statements.
func memberString(stmt Stmt) string {
	switch s := stmt.(type) {
	case *VarDecl:
		return s.String() + ";"
	default:
		return stmt.String()
	}
}

func (f *FunctionDecl) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("function %s%s", f.Name.Value, f.Params.String()))
	if f.Return != nil {
		b.WriteString(fmt.Sprintf(" returns (%s)", f.Return.String()))
	}
	b.WriteString(" ")
	b.WriteString(f.Body.String())
	return b.String()
}

func (v *VarDecl) String() string {
	if v.Value != nil {
		return fmt.Sprintf("%s %s = %s", v.Type.String(), v.Name.Value, v.Value.String())
	}
	return fmt.Sprintf("%s %s", v.Type.String(), v.Name.Value)
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (n *NumberLit) String() string {
	return n.Value.String()
}

func (s *StringLit) String() string {
	return fmt.Sprintf("%q", s.Value)
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.String(), b.Right.String())
}

func (a *AssignExpr) String() string {
	return fmt.Sprintf("%s = %s", a.Target.Name, a.Value.String())
}

func (i *IfExpr) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("if %s %s", i.Cond.String(), i.Then.String()))
	if i.Else != nil {
		b.WriteString(" else ")
		b.WriteString(i.Else.String())
	}
	return b.String()
}

func (f *ForEachExpr) String() string {
	return fmt.Sprintf("for %s in %s %s", f.Binding.Value, f.Range.String(), f.Body.String())
}

func (r *RangeExpr) String() string {
	return fmt.Sprintf("%s..%s", r.Start.String(), r.End.String())
}

func (b *BlockExpr) String() string {
	if len(b.Stmts) == 0 && b.Tail == nil {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Stmts {
		sb.WriteString("  " + strings.ReplaceAll(memberString(stmt), "\n", "\n  ") + "\n")
	}
	if b.Tail != nil {
		sb.WriteString("  " + strings.ReplaceAll(b.Tail.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (c *CallExpr) String() string {
	return c.Name.Value + c.Args.String()
}

func (p *ParamList) String() string {
	parts := make([]string, 0, len(p.Params))
	for _, param := range p.Params {
		parts = append(parts, param.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (a *ArgList) String() string {
	parts := make([]string, 0, len(a.Args))
	for _, arg := range a.Args {
		parts = append(parts, arg.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
