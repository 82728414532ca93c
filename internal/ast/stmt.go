package ast

type Stmt interface {
	Node
	isStmt()
}

func (*ContractDecl) isStmt() {}

func (*MemberBlock) isStmt() {}

func (*FunctionDecl) isStmt() {}

func (*VarDecl) isStmt() {}

func (*ExprStmt) isStmt() {}
