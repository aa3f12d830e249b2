package analyzer

import (
	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
	"github.com/go-bsl/bslint/internal/visitor"
)

// InefficientConcat flags an expression that chains more than one `+`
// where at least one operand along the chain is a string — e.g.
// `"a" + B + "c" + D` — on the theory that each extra `+` reallocates the
// whole string. A single `+` of two strings is cheap and not flagged, and
// a chain of plain numeric additions is not flagged either, since there
// is no string involved to make concatenation the likely culprit.
type InefficientConcat struct {
	visitor.BasePlugin
	Issues []Issue
}

func NewInefficientConcat() *InefficientConcat { return &InefficientConcat{} }

func (p *InefficientConcat) Name() string { return "inefficient-concat" }

// EnterExpr fires only for expression roots, which is exactly the
// boundary this check is scoped to: reset the counters at the root, walk
// the already-built subtree once to recompute them (equivalent to firing
// enter_BinaryExpr/leave_Expr per node), and report if both thresholds
// are crossed.
func (p *InefficientConcat) EnterExpr(e ast.Expr, _ *visitor.Stack, _ *visitor.Counters) {
	addCount, sawString := countAdds(e)
	if sawString && addCount > 1 {
		p.Issues = append(p.Issues, Issue{
			Kind:          KindInefficientConcat,
			Severity:      SeverityMinor,
			Message:       "string is rebuilt through repeated concatenation; consider a single format or template call",
			EffortMinutes: 10,
			Place:         e.Place(),
		})
	}
}

// countAdds walks e depth-first, counting `+` BinaryExprs and noting
// whether a string literal appears as an operand anywhere in the tree.
func countAdds(e ast.Expr) (addCount int, sawString bool) {
	switch n := e.(type) {
	case *ast.BinaryExpr:
		la, ls := countAdds(n.Left)
		ra, rs := countAdds(n.Right)
		addCount = la + ra
		sawString = ls || rs
		if n.Op == token.ADD {
			addCount++
			if isStringOperand(n.Left) || isStringOperand(n.Right) {
				sawString = true
			}
		}
		return addCount, sawString
	case *ast.UnaryExpr:
		return countAdds(n.Operand)
	case *ast.NotExpr:
		return countAdds(n.Expr)
	case *ast.ParenExpr:
		return countAdds(n.Expr)
	case *ast.TernaryExpr:
		a1, s1 := countAdds(n.Cond)
		a2, s2 := countAdds(n.Then)
		a3, s3 := countAdds(n.Else)
		return a1 + a2 + a3, s1 || s2 || s3
	default:
		return 0, isStringOperand(e)
	}
}

func isStringOperand(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.StringExpr:
		return true
	case *ast.BasicLitExpr:
		return n.Kind == token.STRING
	case *ast.ParenExpr:
		return isStringOperand(n.Expr)
	default:
		return false
	}
}
