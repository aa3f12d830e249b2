package analyzer

import (
	"fmt"
	"strings"

	"github.com/go-bsl/bslint/internal/token"
)

// DefaultMaxLineLength is the column limit used by CheckLineLength when
// the caller does not override it, grounded on the original
// implementation's codestyle.py default.
const DefaultMaxLineLength = 120

// CheckLineLength flags lines longer than maxLen runes. maxLen <= 0 uses
// DefaultMaxLineLength. Unlike the AST-driven plugins, this check (and
// CheckTrailingWhitespace) runs directly over the raw source text, since
// line length and trailing whitespace are properties of the text, not of
// anything the parser produces.
func CheckLineLength(source string, maxLen int) []Issue {
	if maxLen <= 0 {
		maxLen = DefaultMaxLineLength
	}
	var issues []Issue
	for i, line := range strings.Split(source, "\n") {
		n := len([]rune(strings.TrimRight(line, "\r")))
		if n <= maxLen {
			continue
		}
		lineNo := i + 1
		issues = append(issues, Issue{
			Kind:          KindLineTooLong,
			Severity:      SeverityInfo,
			Message:       fmt.Sprintf("line is %d characters long, exceeds %d", n, maxLen),
			EffortMinutes: 2,
			Place:         token.Place{BegLine: lineNo, EndLine: lineNo, BegCol: maxLen + 1, EndCol: n},
		})
	}
	return issues
}

// CheckTrailingWhitespace flags lines with trailing spaces or tabs.
func CheckTrailingWhitespace(source string) []Issue {
	var issues []Issue
	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimRight(line, "\r")
		stripped := strings.TrimRight(trimmed, " \t")
		if stripped == trimmed {
			continue
		}
		lineNo := i + 1
		issues = append(issues, Issue{
			Kind:          KindTrailingWhitespace,
			Severity:      SeverityInfo,
			Message:       "trailing whitespace",
			EffortMinutes: 1,
			Place:         token.Place{BegLine: lineNo, EndLine: lineNo, BegCol: len(stripped) + 1, EndCol: len(trimmed)},
		})
	}
	return issues
}
