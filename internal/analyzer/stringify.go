package analyzer

import (
	"strings"

	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
)

// stringify renders an expression as a normalized, order-preserving string
// used only to test two expressions for syntactic (not semantic) equality —
// it is not meant to round-trip back to valid source.
func stringify(e ast.Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e ast.Expr) {
	switch n := e.(type) {
	case *ast.BasicLitExpr:
		b.WriteString(n.Kind.String())
		b.WriteByte(':')
		b.WriteString(valueString(n.Value))
	case *ast.IdentExpr:
		if n.Head != nil {
			b.WriteString(strings.ToLower(n.Head.Name))
		}
		if n.IsCall {
			b.WriteByte('(')
			for i, a := range n.Args {
				if i > 0 {
					b.WriteByte(',')
				}
				if a != nil {
					writeExpr(b, a)
				}
			}
			b.WriteByte(')')
		}
		for _, t := range n.Tail {
			writeTail(b, t)
		}
	case *ast.UnaryExpr:
		b.WriteString(n.Op.String())
		writeExpr(b, n.Operand)
	case *ast.BinaryExpr:
		b.WriteByte('(')
		writeExpr(b, n.Left)
		b.WriteString(n.Op.String())
		writeExpr(b, n.Right)
		b.WriteByte(')')
	case *ast.NotExpr:
		b.WriteString("not(")
		writeExpr(b, n.Expr)
		b.WriteByte(')')
	case *ast.ParenExpr:
		b.WriteByte('(')
		writeExpr(b, n.Expr)
		b.WriteByte(')')
	case *ast.TernaryExpr:
		b.WriteString("?(")
		writeExpr(b, n.Cond)
		b.WriteByte(',')
		writeExpr(b, n.Then)
		b.WriteByte(',')
		writeExpr(b, n.Else)
		b.WriteByte(')')
	case *ast.NewExpr:
		b.WriteString("new:")
		b.WriteString(strings.ToLower(n.Name))
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			if a != nil {
				writeExpr(b, a)
			}
		}
		b.WriteByte(')')
	case *ast.StringExpr:
		for _, frag := range n.List {
			b.WriteString(valueString(frag.Value))
		}
	}
}

func valueString(v token.Value) string {
	if d, ok := v.Decimal(); ok {
		return d.String()
	}
	if s, ok := v.String(); ok {
		return s
	}
	if bv, ok := v.Bool(); ok {
		if bv {
			return "true"
		}
		return "false"
	}
	if v.IsNull() {
		return "null"
	}
	return ""
}

func writeTail(b *strings.Builder, t ast.TailExpr) {
	switch n := t.(type) {
	case *ast.FieldExpr:
		b.WriteByte('.')
		b.WriteString(strings.ToLower(n.Name))
		if n.IsCall {
			b.WriteByte('(')
			for i, a := range n.Args {
				if i > 0 {
					b.WriteByte(',')
				}
				if a != nil {
					writeExpr(b, a)
				}
			}
			b.WriteByte(')')
		}
	case *ast.IndexExpr:
		b.WriteByte('[')
		writeExpr(b, n.Expr)
		b.WriteByte(']')
	}
}
