package analyzer

import (
	"testing"

	"github.com/go-bsl/bslint/internal/global"
	"github.com/go-bsl/bslint/internal/parser"
	"github.com/go-bsl/bslint/internal/visitor"
)

// parseAndRun parses src as a CommonModule and runs a single fresh
// IssueCollector over it, returning whatever Issues it raised plus any
// parse errors — the shared fixture every plugin test in this package
// drives its end-to-end scenarios through.
func parseAndRun(t *testing.T, src string, plugin IssueCollector) ([]Issue, []parser.Error) {
	t.Helper()
	registry, err := global.Load()
	if err != nil {
		t.Fatalf("load global registry: %v", err)
	}
	p := parser.New(src, registry.Context(global.CommonModule))
	m, errs := p.ParseModule()

	runner := visitor.NewRunner([]visitor.Plugin{plugin}, func(plugin, hook string, recovered any) {
		t.Fatalf("plugin %s panicked in %s: %v", plugin, hook, recovered)
	})
	runner.Walk(m)
	return plugin.issues(), errs
}
