// Package driver wires scanning, parsing, traversal, and analysis
// together into a full run over a tree of modules, fanning work out
// across a small fixed-size goroutine pool — mirroring the stdlib-only
// concurrency style the rest of this codebase favors over a pool
// library: a jobs channel feeding workers, each result stored into a
// slice at its job's index, with a sync.WaitGroup marking completion.
package driver

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go-bsl/bslint/internal/analyzer"
	"github.com/go-bsl/bslint/internal/cache"
	"github.com/go-bsl/bslint/internal/global"
	"github.com/go-bsl/bslint/internal/metadata"
	"github.com/go-bsl/bslint/internal/parser"
	"github.com/go-bsl/bslint/internal/visitor"
)

// Module is one unit of work: a module's source plus the global context
// it should be parsed against.
type Module struct {
	Path   string
	Source string
	Kind   global.ModuleKind
}

// ModuleResult is the outcome of analyzing a single Module.
type ModuleResult struct {
	Path     string
	Issues   []analyzer.Issue
	Errors   []parser.Error
	Panics   []PanicReport
	Duration time.Duration
	Cached   bool
}

// PanicReport records a plugin hook panic recovered mid-traversal.
type PanicReport struct {
	Plugin string
	Hook   string
	Value  any
}

// Options configures a Run.
type Options struct {
	Workers       int
	MaxLineLength int
	Cache         *cache.Cache // optional; nil disables the incremental cache
}

// Run holds the identity and aggregate state of one end-to-end analysis pass.
type Run struct {
	ID      string
	Started time.Time
}

// NewRun stamps a fresh run ID, used to correlate a report with the log
// output of the invocation that produced it.
func NewRun(startedAt time.Time) Run {
	return Run{ID: uuid.NewString(), Started: startedAt}
}

// Analyze fans modules out across opts.Workers goroutines (clamped to at
// least 1), analyzing each with a fresh set of plugins (plugins carry
// per-method state, so they are not safe to share across modules run
// concurrently), and returns one ModuleResult per input Module in the
// same order they were submitted.
func Analyze(registry *global.Registry, modules []Module, opts Options) []ModuleResult {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	maxLineLen := opts.MaxLineLength
	if maxLineLen <= 0 {
		maxLineLen = analyzer.DefaultMaxLineLength
	}

	type job struct {
		index int
		mod   Module
	}
	jobs := make(chan job)
	results := make([]ModuleResult, len(modules))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = analyzeOne(registry, j.mod, maxLineLen, opts.Cache)
			}
		}()
	}

	for i, m := range modules {
		jobs <- job{index: i, mod: m}
	}
	close(jobs)
	wg.Wait()

	return results
}

func analyzeOne(registry *global.Registry, mod Module, maxLineLen int, c *cache.Cache) ModuleResult {
	start := time.Now()
	hash := cache.Hash(mod.Source)

	if c != nil {
		if issues, ok := c.Lookup(mod.Path, hash); ok {
			return ModuleResult{Path: mod.Path, Issues: issues, Duration: time.Since(start), Cached: true}
		}
	}

	ctx := registry.Context(mod.Kind)
	p := parser.New(mod.Source, ctx)
	m, perrs := p.ParseModule()

	plugins := analyzer.NewDefaultPlugins()

	var panics []PanicReport
	runner := visitor.NewRunner(analyzer.AsPlugins(plugins), func(plugin, hook string, recovered any) {
		panics = append(panics, PanicReport{Plugin: plugin, Hook: hook, Value: recovered})
	})
	runner.Walk(m)

	issues := analyzer.CollectIssues(plugins, mod.Source, maxLineLen)

	if c != nil {
		if err := c.Store(mod.Path, hash, issues, time.Now().Unix()); err != nil {
			panics = append(panics, PanicReport{Plugin: "cache", Hook: "Store", Value: err})
		}
	}

	return ModuleResult{
		Path:     mod.Path,
		Issues:   issues,
		Errors:   perrs,
		Panics:   panics,
		Duration: time.Since(start),
	}
}

// KindForPath resolves a module's global.ModuleKind from its paired
// metadata XML, falling back to global.CommonModule when no metadata
// sibling exists or it cannot be parsed (a loose .bsl fixture, say).
func KindForPath(bslPath string) global.ModuleKind {
	xmlPath, ok := metadata.Pair(bslPath)
	if !ok {
		return global.CommonModule
	}
	meta, err := metadata.Load(xmlPath)
	if err != nil {
		return global.CommonModule
	}
	if kind, ok := global.KindFromString(meta.Kind); ok {
		return kind
	}
	return global.CommonModule
}

// Summary tallies a Run's results for --verbose reporting.
type Summary struct {
	Modules      int
	CachedHits   int
	TotalIssues  int
	TotalPanics  int
	TotalErrors  int
	TotalElapsed time.Duration
}

// Summarize aggregates a slice of ModuleResult into a Summary.
func Summarize(results []ModuleResult) Summary {
	var s Summary
	s.Modules = len(results)
	for _, r := range results {
		if r.Cached {
			s.CachedHits++
		}
		s.TotalIssues += len(r.Issues)
		s.TotalPanics += len(r.Panics)
		s.TotalErrors += len(r.Errors)
		s.TotalElapsed += r.Duration
	}
	return s
}

// String renders a Summary for a one-line --verbose footer.
func (s Summary) String() string {
	return fmt.Sprintf("%d module(s), %d cached, %d issue(s), %d error(s), %d panic(s), %s",
		s.Modules, s.CachedHits, s.TotalIssues, s.TotalErrors, s.TotalPanics, s.TotalElapsed)
}
