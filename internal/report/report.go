// Package report builds the SonarQube-compatible generic-issue JSON report
// from the analyzer.Issues collected across a run, grouping them by file
// and ordering them with a natural sort so paths like "Module10.bsl" sort
// after "Module2.bsl" instead of before it.
package report

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/go-bsl/bslint/internal/analyzer"
)

// FileIssues pairs a source file with the Issues found in it.
type FileIssues struct {
	File   string
	Issues []analyzer.Issue
}

// Build renders files (already grouped per source file) into the report's
// JSON document, in natural-sorted file order. Each issue is appended with
// tidwall/sjson rather than built up through a struct and marshaled in one
// shot, so a caller could in principle stream files in one at a time
// without holding the whole tree in memory.
func Build(files []FileIssues) (string, error) {
	ordered := make([]FileIssues, len(files))
	copy(ordered, files)
	sort.Slice(ordered, func(i, j int) bool { return natural.Less(ordered[i].File, ordered[j].File) })

	doc := `{"issues":[]}`
	var err error
	i := 0
	for _, f := range ordered {
		for _, issue := range f.Issues {
			doc, err = appendIssue(doc, i, f.File, issue)
			if err != nil {
				return "", fmt.Errorf("report: append issue: %w", err)
			}
			i++
		}
	}
	return doc, nil
}

func appendIssue(doc string, index int, file string, issue analyzer.Issue) (string, error) {
	base := fmt.Sprintf("issues.%d", index)
	var err error
	doc, err = sjson.Set(doc, base+".engineId", "bslint")
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".ruleId", string(issue.Kind))
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".severity", severityToSonar(issue.Severity))
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".type", typeToSonar(issue.Type))
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".effortMinutes", issue.EffortMinutes)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".primaryLocation.message", issue.Message)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".primaryLocation.filePath", file)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".primaryLocation.textRange.startLine", issue.Place.BegLine)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".primaryLocation.textRange.endLine", issue.Place.EndLine)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".primaryLocation.textRange.startColumn", issue.Place.BegCol)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, base+".primaryLocation.textRange.endColumn", issue.Place.EndCol)
	if err != nil {
		return "", err
	}
	return doc, nil
}

func typeToSonar(t analyzer.Type) string {
	switch t {
	case analyzer.TypeBug:
		return "BUG"
	case analyzer.TypeVulnerability:
		return "VULNERABILITY"
	default:
		return "CODE_SMELL"
	}
}

func severityToSonar(s analyzer.Severity) string {
	switch s {
	case analyzer.SeverityCritical:
		return "CRITICAL"
	case analyzer.SeverityMajor:
		return "MAJOR"
	case analyzer.SeverityMinor:
		return "MINOR"
	default:
		return "INFO"
	}
}

// Query runs a gjson path expression against a previously built report
// document — used by the `report query` CLI subcommand to let a user pull
// a single field (e.g. "issues.#.ruleId") without re-parsing JSON by hand.
func Query(doc, path string) string {
	return gjson.Get(doc, path).String()
}
