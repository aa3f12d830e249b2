package ast

import "github.com/go-bsl/bslint/internal/token"

// PrepExpr is a preprocessor condition expression: And/Or/Not/symbol/paren.
type PrepExpr interface {
	Node
	prepExprNode()
}

// PrepSymExpr references a preprocessor availability symbol, optionally
// negated with `Not` written inline as `exist: bool` (exist=false means
// the symbol was written as `Not Symbol`).
type PrepSymExpr struct {
	Symbol string
	Exist  bool
	Place_ token.Place
}

func (*PrepSymExpr) prepExprNode()        {}
func (p *PrepSymExpr) Place() token.Place { return p.Place_ }

// PrepBinaryExpr is `left And/Or right`.
type PrepBinaryExpr struct {
	Left, Right PrepExpr
	Op          token.Kind // AND or OR
	Place_      token.Place
}

func (*PrepBinaryExpr) prepExprNode()        {}
func (p *PrepBinaryExpr) Place() token.Place { return p.Place_ }

// PrepNotExpr is `Not expr`.
type PrepNotExpr struct {
	Expr   PrepExpr
	Place_ token.Place
}

func (*PrepNotExpr) prepExprNode()        {}
func (p *PrepNotExpr) Place() token.Place { return p.Place_ }

// PrepParenExpr is a parenthesized preprocessor expression.
type PrepParenExpr struct {
	Expr   PrepExpr
	Place_ token.Place
}

func (*PrepParenExpr) prepExprNode()        {}
func (p *PrepParenExpr) Place() token.Place { return p.Place_ }

// PrepIfInst is `#If cond Then`. It occupies both declaration and statement
// positions.
type PrepIfInst struct {
	Cond   PrepExpr
	Place_ token.Place
}

func (*PrepIfInst) declNode()            {}
func (*PrepIfInst) stmtNode()            {}
func (p *PrepIfInst) Place() token.Place { return p.Place_ }

// PrepElsIfInst is `#ElsIf cond Then`.
type PrepElsIfInst struct {
	Cond   PrepExpr
	Place_ token.Place
}

func (*PrepElsIfInst) declNode()            {}
func (*PrepElsIfInst) stmtNode()            {}
func (p *PrepElsIfInst) Place() token.Place { return p.Place_ }

// PrepElseInst is `#Else` — a leaf node.
type PrepElseInst struct{ Place_ token.Place }

func (*PrepElseInst) declNode()            {}
func (*PrepElseInst) stmtNode()            {}
func (p *PrepElseInst) Place() token.Place { return p.Place_ }

// PrepEndIfInst is `#EndIf` — a leaf node.
type PrepEndIfInst struct{ Place_ token.Place }

func (*PrepEndIfInst) declNode()            {}
func (*PrepEndIfInst) stmtNode()            {}
func (p *PrepEndIfInst) Place() token.Place { return p.Place_ }

// PrepRegionInst is `#Region Name` — a leaf node.
type PrepRegionInst struct {
	Name   string
	Place_ token.Place
}

func (*PrepRegionInst) declNode()            {}
func (*PrepRegionInst) stmtNode()            {}
func (p *PrepRegionInst) Place() token.Place { return p.Place_ }

// PrepEndRegionInst is `#EndRegion` — a leaf node.
type PrepEndRegionInst struct{ Place_ token.Place }

func (*PrepEndRegionInst) declNode()            {}
func (*PrepEndRegionInst) stmtNode()            {}
func (p *PrepEndRegionInst) Place() token.Place { return p.Place_ }
