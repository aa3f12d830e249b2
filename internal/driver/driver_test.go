package driver

import (
	"testing"
	"time"

	"github.com/go-bsl/bslint/internal/analyzer"
	"github.com/go-bsl/bslint/internal/cache"
	"github.com/go-bsl/bslint/internal/global"
	"github.com/go-bsl/bslint/internal/parser"
)

func TestAnalyze_PreservesInputOrder(t *testing.T) {
	registry, err := global.Load()
	if err != nil {
		t.Fatalf("load global registry: %v", err)
	}

	modules := []Module{
		{Path: "A.bsl", Source: "Procedure P()\n  Var Unused;\nEndProcedure\n", Kind: global.CommonModule},
		{Path: "B.bsl", Source: "Procedure Q()\nEndProcedure\n", Kind: global.CommonModule},
		{Path: "C.bsl", Source: "Procedure R()\n  Try\n  Except\n  EndTry;\nEndProcedure\n", Kind: global.CommonModule},
	}

	results := Analyze(registry, modules, Options{Workers: 2})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []string{"A.bsl", "B.bsl", "C.bsl"} {
		if results[i].Path != want {
			t.Errorf("results[%d].Path = %q, want %q (order must match input)", i, results[i].Path, want)
		}
	}
	if len(results[0].Issues) == 0 {
		t.Error("A.bsl declares an unused local and should be flagged")
	}
	if len(results[2].Issues) == 0 {
		t.Error("C.bsl has an empty except block and should be flagged")
	}
}

func TestAnalyze_UsesCacheOnSecondRun(t *testing.T) {
	registry, err := global.Load()
	if err != nil {
		t.Fatalf("load global registry: %v", err)
	}
	c, err := cache.Open(":memory:")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer c.Close()

	modules := []Module{{Path: "A.bsl", Source: "Procedure P()\nEndProcedure\n", Kind: global.CommonModule}}

	first := Analyze(registry, modules, Options{Workers: 1, Cache: c})
	if first[0].Cached {
		t.Error("first run should be a cache miss")
	}

	second := Analyze(registry, modules, Options{Workers: 1, Cache: c})
	if !second[0].Cached {
		t.Error("second run over unchanged source should be a cache hit")
	}
}

func TestSummarize(t *testing.T) {
	results := []ModuleResult{
		{
			Issues:   []analyzer.Issue{{Kind: analyzer.KindLineTooLong}},
			Errors:   []parser.Error{{Message: "boom"}},
			Cached:   true,
			Duration: 5 * time.Millisecond,
		},
		{
			Issues:   []analyzer.Issue{{Kind: analyzer.KindTrailingWhitespace}, {Kind: analyzer.KindEmptyExceptBlock}},
			Duration: 3 * time.Millisecond,
		},
	}

	s := Summarize(results)
	if s.Modules != 2 {
		t.Errorf("Modules = %d, want 2", s.Modules)
	}
	if s.CachedHits != 1 {
		t.Errorf("CachedHits = %d, want 1", s.CachedHits)
	}
	if s.TotalIssues != 3 {
		t.Errorf("TotalIssues = %d, want 3", s.TotalIssues)
	}
	if s.TotalErrors != 1 {
		t.Errorf("TotalErrors = %d, want 1", s.TotalErrors)
	}
	if s.TotalElapsed != 8*time.Millisecond {
		t.Errorf("TotalElapsed = %v, want 8ms", s.TotalElapsed)
	}
	if s.String() == "" {
		t.Error("String() should render a non-empty summary")
	}
}

func TestKindForPath_FallsBackToCommonModuleWithoutMetadata(t *testing.T) {
	if got := KindForPath("/no/such/path/Module.bsl"); got != global.CommonModule {
		t.Errorf("KindForPath with no sibling metadata = %v, want CommonModule", got)
	}
}
