package scope

import (
	"testing"

	"github.com/go-bsl/bslint/internal/ast"
)

func TestDeclareVar_RejectsRedeclaration(t *testing.T) {
	s := New()
	first := &ast.Item{Name: "Итог"}
	if ok := s.DeclareVar(first); !ok {
		t.Fatalf("first declaration of %q should succeed", first.Name)
	}
	second := &ast.Item{Name: "ИТОГ"} // same lowercased key, different case
	if ok := s.DeclareVar(second); ok {
		t.Fatalf("redeclaration of %q under a different case should be rejected", second.Name)
	}
	got, ok := s.LookupVarLocal("итог")
	if !ok || got != first {
		t.Fatalf("lookup after a rejected redeclaration should still return the original Item")
	}
}

func TestLookupVar_WalksOuterChain(t *testing.T) {
	outer := New()
	outer.DeclareVar(&ast.Item{Name: "Global"})
	inner := Nested(outer)
	inner.DeclareVar(&ast.Item{Name: "Local"})

	if _, ok := inner.LookupVar("Global"); !ok {
		t.Errorf("inner scope should see an outer-declared var")
	}
	if _, ok := outer.LookupVar("Local"); ok {
		t.Errorf("outer scope must not see an inner-declared var")
	}
	if _, ok := inner.LookupVarLocal("Global"); ok {
		t.Errorf("LookupVarLocal must not walk to the outer scope")
	}
}

func TestVarsAndMethodsAreSeparateNamespaces(t *testing.T) {
	s := New()
	if ok := s.DeclareVar(&ast.Item{Name: "Foo"}); !ok {
		t.Fatalf("declare var Foo")
	}
	if ok := s.DeclareMethod(&ast.Item{Name: "Foo"}); !ok {
		t.Fatalf("a method and a var may share a name: they live in separate namespaces")
	}
	if _, ok := s.LookupVar("Foo"); !ok {
		t.Errorf("var Foo should still resolve")
	}
	if _, ok := s.LookupMethod("Foo"); !ok {
		t.Errorf("method Foo should still resolve")
	}
}

func TestReplaceMethod_RelocatesForwardReference(t *testing.T) {
	s := New()
	placeholder := &ast.Item{Name: "DoWork"}
	s.DeclareMethod(placeholder)

	real := &ast.Item{Name: "DoWork", Decl: &ast.MethodDecl{}}
	s.ReplaceMethod(real)

	got, ok := s.LookupMethod("dowork")
	if !ok || got != real {
		t.Fatalf("ReplaceMethod should overwrite the placeholder Item in place")
	}
	if got.Decl == nil {
		t.Errorf("relocated Item should carry the real declaration")
	}
}
