package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (t *TypeRef) NodePos() Position    { return t.Pos }
func (t *TypeRef) NodeEndPos() Position { return t.EndPos }
func (*TypeRef) NodeType() NodeType     { return TYPE_REF }

func (c *ContractDecl) NodePos() Position    { return c.Pos }
func (c *ContractDecl) NodeEndPos() Position { return c.EndPos }
func (*ContractDecl) NodeType() NodeType     { return CONTRACT_DECL }

func (m *MemberBlock) NodePos() Position    { return m.Pos }
func (m *MemberBlock) NodeEndPos() Position { return m.EndPos }
func (*MemberBlock) NodeType() NodeType     { return MEMBER_BLOCK }

func (f *FunctionDecl) NodePos() Position    { return f.Pos }
func (f *FunctionDecl) NodeEndPos() Position { return f.EndPos }
func (*FunctionDecl) NodeType() NodeType     { return FUNCTION_DECL }

func (v *VarDecl) NodePos() Position    { return v.Pos }
func (v *VarDecl) NodeEndPos() Position { return v.EndPos }
func (*VarDecl) NodeType() NodeType     { return VAR_DECL }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (n *NumberLit) NodePos() Position    { return n.Pos }
func (n *NumberLit) NodeEndPos() Position { return n.EndPos }
func (*NumberLit) NodeType() NodeType     { return NUMBER_LIT }

func (s *StringLit) NodePos() Position    { return s.Pos }
func (s *StringLit) NodeEndPos() Position { return s.EndPos }
func (*StringLit) NodeType() NodeType     { return STRING_LIT }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (a *AssignExpr) NodePos() Position    { return a.Pos }
func (a *AssignExpr) NodeEndPos() Position { return a.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (i *IfExpr) NodePos() Position    { return i.Pos }
func (i *IfExpr) NodeEndPos() Position { return i.EndPos }
func (*IfExpr) NodeType() NodeType     { return IF_EXPR }

func (f *ForEachExpr) NodePos() Position    { return f.Pos }
func (f *ForEachExpr) NodeEndPos() Position { return f.EndPos }
func (*ForEachExpr) NodeType() NodeType     { return FOR_EACH_EXPR }

func (r *RangeExpr) NodePos() Position    { return r.Pos }
func (r *RangeExpr) NodeEndPos() Position { return r.EndPos }
func (*RangeExpr) NodeType() NodeType     { return RANGE_EXPR }

func (b *BlockExpr) NodePos() Position    { return b.Pos }
func (b *BlockExpr) NodeEndPos() Position { return b.EndPos }
func (*BlockExpr) NodeType() NodeType     { return BLOCK_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (p *ParamList) NodePos() Position    { return p.Pos }
func (p *ParamList) NodeEndPos() Position { return p.EndPos }
func (*ParamList) NodeType() NodeType     { return PARAM_LIST }

func (a *ArgList) NodePos() Position    { return a.Pos }
func (a *ArgList) NodeEndPos() Position { return a.EndPos }
func (*ArgList) NodeType() NodeType     { return ARG_LIST }
