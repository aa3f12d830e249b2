package analyzer

import (
	"testing"

	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/global"
	"github.com/go-bsl/bslint/internal/parser"
)

// parseSoleCondition parses a single "If <expr> Then EndIf;" statement and
// stringifies its condition, for stringify tests that need a real parsed
// ast.Expr rather than a hand-built one.
func parseSoleCondition(t *testing.T, exprSrc string) string {
	t.Helper()
	src := "Procedure P()\n  If " + exprSrc + " Then\n  EndIf;\nEndProcedure\n"
	registry, err := global.Load()
	if err != nil {
		t.Fatalf("load global registry: %v", err)
	}
	p := parser.New(src, registry.Context(global.CommonModule))
	m, errs := p.ParseModule()
	for _, e := range errs {
		if e.Fatal {
			t.Fatalf("unexpected fatal parse error parsing %q: %s", exprSrc, e.Message)
		}
	}
	md, ok := m.Decls[0].(*ast.MethodDecl)
	if !ok {
		t.Fatalf("expected a MethodDecl, got %T", m.Decls[0])
	}
	ifStmt, ok := md.Body[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected an IfStmt, got %T", md.Body[0])
	}
	return stringify(ifStmt.Cond)
}

func TestStringify_CaseInsensitiveIdentifiers(t *testing.T) {
	a := parseSoleCondition(t, "X = 1")
	b := parseSoleCondition(t, "x = 1")
	if a != b {
		t.Errorf("stringify should fold identifier case: %q != %q", a, b)
	}
}

func TestStringify_DistinguishesOperators(t *testing.T) {
	eq := parseSoleCondition(t, "X = 1")
	neq := parseSoleCondition(t, "X <> 1")
	if eq == neq {
		t.Errorf("different operators must not stringify the same: %q == %q", eq, neq)
	}
}

func TestStringify_DistinguishesOperandOrder(t *testing.T) {
	a := parseSoleCondition(t, "X = 1")
	b := parseSoleCondition(t, "1 = X")
	if a == b {
		t.Errorf("swapped operands must not stringify the same: %q == %q", a, b)
	}
}
