package ast

import "github.com/go-bsl/bslint/internal/token"

// AssignStmt is `left = right;`.
type AssignStmt struct {
	Left   *IdentExpr
	Right  Expr
	Place_ token.Place
}

func (*AssignStmt) stmtNode()            {}
func (a *AssignStmt) Place() token.Place { return a.Place_ }

// ReturnStmt is `Return [expr];`. Expr is non-nil only inside a function body.
type ReturnStmt struct {
	Expr   Expr
	Place_ token.Place
}

func (*ReturnStmt) stmtNode()            {}
func (r *ReturnStmt) Place() token.Place { return r.Place_ }

// BreakStmt is `Break;` — a leaf node (no children, enter only).
type BreakStmt struct{ Place_ token.Place }

func (*BreakStmt) stmtNode()            {}
func (b *BreakStmt) Place() token.Place { return b.Place_ }

// ContinueStmt is `Continue;` — a leaf node.
type ContinueStmt struct{ Place_ token.Place }

func (*ContinueStmt) stmtNode()            {}
func (c *ContinueStmt) Place() token.Place { return c.Place_ }

// RaiseStmt is `Raise [expr];`.
type RaiseStmt struct {
	Expr   Expr
	Place_ token.Place
}

func (*RaiseStmt) stmtNode()            {}
func (r *RaiseStmt) Place() token.Place { return r.Place_ }

// ExecuteStmt is `Execute(expr);`.
type ExecuteStmt struct {
	Expr   Expr
	Place_ token.Place
}

func (*ExecuteStmt) stmtNode()            {}
func (e *ExecuteStmt) Place() token.Place { return e.Place_ }

// CallStmt is a bare call expression used as a statement.
type CallStmt struct {
	Ident  *IdentExpr
	Place_ token.Place
}

func (*CallStmt) stmtNode()            {}
func (c *CallStmt) Place() token.Place { return c.Place_ }

// ElsIfStmt is one `ElsIf cond Then ...` branch.
type ElsIfStmt struct {
	Cond   Expr
	Then   []Stmt
	Place_ token.Place
}

func (*ElsIfStmt) stmtNode()            {}
func (e *ElsIfStmt) Place() token.Place { return e.Place_ }

// ElseStmt is the trailing `Else ...` branch of an IfStmt.
type ElseStmt struct {
	Body   []Stmt
	Place_ token.Place
}

func (*ElseStmt) stmtNode()            {}
func (e *ElseStmt) Place() token.Place { return e.Place_ }

// IfStmt is `If cond Then ... [ElsIf ...]* [Else ...] EndIf;`.
type IfStmt struct {
	Cond   Expr
	Then   []Stmt
	ElsIfs []*ElsIfStmt
	Else   *ElseStmt
	Place_ token.Place
}

func (*IfStmt) stmtNode()            {}
func (i *IfStmt) Place() token.Place { return i.Place_ }

// WhileStmt is `While cond Do ... EndDo;`.
type WhileStmt struct {
	Cond   Expr
	Body   []Stmt
	Place_ token.Place
}

func (*WhileStmt) stmtNode()            {}
func (w *WhileStmt) Place() token.Place { return w.Place_ }

// ForStmt is `For ident = from To to Do ... EndDo;`.
type ForStmt struct {
	Ident      *IdentExpr
	From, To   Expr
	Body       []Stmt
	Place_     token.Place
}

func (*ForStmt) stmtNode()            {}
func (f *ForStmt) Place() token.Place { return f.Place_ }

// ForEachStmt is `For Each ident In in Do ... EndDo;`.
type ForEachStmt struct {
	Ident  *IdentExpr
	In     Expr
	Body   []Stmt
	Place_ token.Place
}

func (*ForEachStmt) stmtNode()            {}
func (f *ForEachStmt) Place() token.Place { return f.Place_ }

// ExceptStmt is the `Except ... EndTry;` clause of a TryStmt.
type ExceptStmt struct {
	Body   []Stmt
	Place_ token.Place
}

func (*ExceptStmt) stmtNode()            {}
func (e *ExceptStmt) Place() token.Place { return e.Place_ }

// TryStmt is `Try ... Except ... EndTry;`.
type TryStmt struct {
	Try    []Stmt
	Except *ExceptStmt
	Place_ token.Place
}

func (*TryStmt) stmtNode()            {}
func (t *TryStmt) Place() token.Place { return t.Place_ }

// GotoStmt is `Goto ~label;` — a leaf node.
type GotoStmt struct {
	Label  string
	Place_ token.Place
}

func (*GotoStmt) stmtNode()            {}
func (g *GotoStmt) Place() token.Place { return g.Place_ }

// LabelStmt is `~label:` — a leaf node.
type LabelStmt struct {
	Label  string
	Place_ token.Place
}

func (*LabelStmt) stmtNode()            {}
func (l *LabelStmt) Place() token.Place { return l.Place_ }
