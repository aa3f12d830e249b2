package analyzer

import (
	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
	"github.com/go-bsl/bslint/internal/visitor"
)

// StructureCtorMisuse flags `New Structure(...)` calls with more than two
// arguments whose first argument is itself a string literal — the
// signature of a call meant as `New Structure("Key1, Key2", Val1, Val2)`
// (a single comma-separated key list followed by values) but written
// instead as a flat argument list, which Structure's constructor does not
// accept in that form. The check is purely syntactic: a first argument that
// already holds a comma-separated key list is flagged just the same.
type StructureCtorMisuse struct {
	visitor.BasePlugin
	Issues []Issue
}

func NewStructureCtorMisuse() *StructureCtorMisuse { return &StructureCtorMisuse{} }

func (p *StructureCtorMisuse) Name() string { return "structure-constructor-misuse" }

func (p *StructureCtorMisuse) EnterExpr(e ast.Expr, _ *visitor.Stack, _ *visitor.Counters) {
	n, ok := e.(*ast.NewExpr)
	if !ok {
		return
	}
	if token.Fold(n.Name) != token.Fold("Structure") && token.Fold(n.Name) != token.Fold("Структура") {
		return
	}
	if len(n.Args) <= 2 {
		return
	}
	if len(n.Args) == 0 || n.Args[0] == nil || !isStringLiteral(n.Args[0]) {
		return
	}
	p.Issues = append(p.Issues, Issue{
		Kind:          KindStructureCtorMisuse,
		Severity:      SeverityMajor,
		Message:       "Structure constructor takes a comma-separated key list as its first argument, not a flat argument list",
		EffortMinutes: 10,
		Place:         n.Place(),
	})
}

func isStringLiteral(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.StringExpr:
		return true
	case *ast.BasicLitExpr:
		return n.Kind == token.STRING
	default:
		return false
	}
}
