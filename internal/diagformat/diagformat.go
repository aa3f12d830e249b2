// Package diagformat renders scan and parse errors with source context and
// a caret pointing at the offending column, for human-facing CLI output.
// The JSON diagnostic report (internal/report) does not use this package;
// this is terminal/log-facing formatting only.
package diagformat

import (
	"fmt"
	"strings"

	"github.com/go-bsl/bslint/internal/token"
)

// SourceError is a single scan or parse failure with position and source context.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     token.Pos
}

// NewSourceError creates a new SourceError.
func NewSourceError(pos token.Pos, message, source, file string) *SourceError {
	return &SourceError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format renders the error with a single line of source context and a caret.
// If color is true, ANSI escapes highlight the caret and message.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Col)
	} else {
		fmt.Fprintf(&sb, "line %d:%d: ", e.Pos.Line, e.Pos.Col)
	}
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	sourceLine := e.sourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max(0, e.Pos.Col-1)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (e *SourceError) sourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FormatAll renders a batch of errors, one per source-context block.
func FormatAll(errs []*SourceError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s):\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(errs))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
