package ast

import "github.com/go-bsl/bslint/internal/token"

// BasicLitExpr is a literal primitive: number, string, date, or boolean/null keyword.
type BasicLitExpr struct {
	Kind   token.Kind
	Value  token.Value
	Place_ token.Place
}

func (*BasicLitExpr) exprNode()            {}
func (b *BasicLitExpr) Place() token.Place { return b.Place_ }

// FieldExpr is a `.field[(args)]` tail element.
type FieldExpr struct {
	Name   string
	Args   []Expr // nil if not a call; entries may be nil for skipped positions
	IsCall bool
	Place_ token.Place
}

func (*FieldExpr) tailNode()             {}
func (f *FieldExpr) Place() token.Place  { return f.Place_ }

// IndexExpr is a `[expr]` tail element.
type IndexExpr struct {
	Expr   Expr
	Place_ token.Place
}

func (*IndexExpr) tailNode()            {}
func (i *IndexExpr) Place() token.Place { return i.Place_ }

// TailExpr is implemented by FieldExpr and IndexExpr.
type TailExpr interface {
	Node
	tailNode()
}

// IdentExpr is an identifier with optional call arguments and an optional
// trailing access chain.
type IdentExpr struct {
	Head   *Item
	IsCall bool
	Args   []Expr // nil if not a call; entries may be nil for skipped positions
	Tail   []TailExpr
	Place_ token.Place
}

func (*IdentExpr) exprNode()            {}
func (i *IdentExpr) Place() token.Place { return i.Place_ }

// UnaryExpr is a prefix `+`/`-`.
type UnaryExpr struct {
	Op      token.Kind
	Operand Expr
	Place_  token.Place
}

func (*UnaryExpr) exprNode()            {}
func (u *UnaryExpr) Place() token.Place { return u.Place_ }

// BinaryExpr is a two-operand operator expression.
type BinaryExpr struct {
	Left, Right Expr
	Op          token.Kind
	Place_      token.Place
}

func (*BinaryExpr) exprNode()            {}
func (b *BinaryExpr) Place() token.Place { return b.Place_ }

// NotExpr is a `Not expr`.
type NotExpr struct {
	Expr   Expr
	Place_ token.Place
}

func (*NotExpr) exprNode()            {}
func (n *NotExpr) Place() token.Place { return n.Place_ }

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Expr   Expr
	Place_ token.Place
}

func (*ParenExpr) exprNode()            {}
func (p *ParenExpr) Place() token.Place { return p.Place_ }

// TernaryExpr is `?(cond, then, else)` with an optional trailing tail chain.
type TernaryExpr struct {
	Cond, Then, Else Expr
	Tail             []TailExpr
	Place_           token.Place
}

func (*TernaryExpr) exprNode()            {}
func (t *TernaryExpr) Place() token.Place { return t.Place_ }

// NewExpr is `New [Name] [(args)]`.
type NewExpr struct {
	Name   string // empty if absent
	Args   []Expr
	Place_ token.Place
}

func (*NewExpr) exprNode()            {}
func (n *NewExpr) Place() token.Place { return n.Place_ }

// StringExpr is a concatenation of one or more string fragments: either
// repeated STRING tokens, or a STRING_BEG...STRING_MID*...STRING_END group.
type StringExpr struct {
	List   []*BasicLitExpr
	Place_ token.Place
}

func (*StringExpr) exprNode()            {}
func (s *StringExpr) Place() token.Place { return s.Place_ }
