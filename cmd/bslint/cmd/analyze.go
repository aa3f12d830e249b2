package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/go-bsl/bslint/internal/cache"
	"github.com/go-bsl/bslint/internal/diagformat"
	"github.com/go-bsl/bslint/internal/driver"
	"github.com/go-bsl/bslint/internal/global"
	"github.com/go-bsl/bslint/internal/report"
)

var (
	analyzeWorkers       int
	analyzeMaxLineLength int
	analyzeCachePath     string
	analyzeOverridesPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <metadata-root> <output.json>",
	Short: "Analyze a tree of modules and write a generic-issue report",
	Long: `analyze walks metadata-root for *.bsl module files, pairs each with
its sibling metadata XML to resolve its module kind, runs the full
analyzer plugin set over every module, and writes a SonarQube-compatible
generic-issue JSON document to output.json.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", runtime.NumCPU(), "number of concurrent analysis workers")
	analyzeCmd.Flags().IntVar(&analyzeMaxLineLength, "max-line-length", 0, "override the maximum line length checked by the line-length rule")
	analyzeCmd.Flags().StringVar(&analyzeCachePath, "cache", "", "path to a SQLite incremental-analysis cache (omit to disable caching)")
	analyzeCmd.Flags().StringVar(&analyzeOverridesPath, "global-overrides", "", "path to a YAML file overriding the built-in global-context registry")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	root, outputPath := args[0], args[1]

	var overrides [][]byte
	if analyzeOverridesPath != "" {
		data, err := os.ReadFile(analyzeOverridesPath)
		if err != nil {
			return fmt.Errorf("read global overrides: %w", err)
		}
		overrides = append(overrides, data)
	}
	registry, err := global.Load(overrides...)
	if err != nil {
		return fmt.Errorf("load global registry: %w", err)
	}

	paths, err := findModules(root)
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	if len(paths) == 0 {
		exitWithError("no .bsl modules found under %s", root)
	}

	modules := make([]driver.Module, 0, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		modules = append(modules, driver.Module{
			Path:   path,
			Source: string(src),
			Kind:   driver.KindForPath(path),
		})
	}

	var c *cache.Cache
	if analyzeCachePath != "" {
		c, err = cache.Open(analyzeCachePath)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer c.Close()
	}

	run := driver.NewRun(time.Now())
	results := driver.Analyze(registry, modules, driver.Options{
		Workers:       analyzeWorkers,
		MaxLineLength: analyzeMaxLineLength,
		Cache:         c,
	})

	files := make([]report.FileIssues, 0, len(results))
	var parseErrors []*diagformat.SourceError
	for i, res := range results {
		files = append(files, report.FileIssues{File: res.Path, Issues: res.Issues})
		for _, perr := range res.Errors {
			parseErrors = append(parseErrors, diagformat.NewSourceError(perr.Pos, perr.Message, modules[i].Source, res.Path))
		}
	}

	doc, err := report.Build(files)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	if len(parseErrors) > 0 {
		color := isatty.IsTerminal(os.Stderr.Fd())
		fmt.Fprint(os.Stderr, diagformat.FormatAll(parseErrors, color))
	}

	if verbose {
		summary := driver.Summarize(results)
		fmt.Fprintf(os.Stderr, "run %s: %s\n", run.ID, summary)
	}

	return nil
}

func findModules(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".bsl") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
