package ast

type Expr interface {
	Node
	isExpr()
}

func (*NumberLit) isExpr() {}

func (*StringLit) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*AssignExpr) isExpr() {}

func (*IfExpr) isExpr() {}

func (*ForEachExpr) isExpr() {}

func (*RangeExpr) isExpr() {}

func (*BlockExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*ParamList) isExpr() {}

func (*ArgList) isExpr() {}
