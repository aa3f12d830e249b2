package analyzer

import (
	"testing"

	"github.com/go-bsl/bslint/internal/global"
	"github.com/go-bsl/bslint/internal/parser"
	"github.com/go-bsl/bslint/internal/visitor"
)

func TestDefaultPlugins_EndToEnd(t *testing.T) {
	src := "Procedure P()\n" +
		"  Var A;\n" +
		"  Try\n" +
		"    A = 1;\n" +
		"  Except\n" +
		"  EndTry;\n" +
		"EndProcedure\n"

	registry, err := global.Load()
	if err != nil {
		t.Fatalf("load global registry: %v", err)
	}
	p := parser.New(src, registry.Context(global.CommonModule))
	m, errs := p.ParseModule()
	for _, e := range errs {
		if e.Fatal {
			t.Fatalf("unexpected fatal parse error: %s", e.Message)
		}
	}

	plugins := NewDefaultPlugins()
	runner := visitor.NewRunner(AsPlugins(plugins), func(plugin, hook string, recovered any) {
		t.Fatalf("plugin %s panicked in %s: %v", plugin, hook, recovered)
	})
	runner.Walk(m)

	issues := CollectIssues(plugins, src, 0)

	kinds := map[Kind]bool{}
	for _, iss := range issues {
		kinds[iss.Kind] = true
	}
	if !kinds[KindUnusedLocalVariable] {
		t.Errorf("expected an unused-local-variable issue, got: %+v", issues)
	}
	if !kinds[KindEmptyExceptBlock] {
		t.Errorf("expected an empty-except-block issue, got: %+v", issues)
	}
}
