package diagformat

import (
	"strings"
	"testing"

	"github.com/go-bsl/bslint/internal/token"
)

func TestFormat_IncludesFilePositionAndSourceLine(t *testing.T) {
	source := "Procedure P()\n  DoesNotExist();\nEndProcedure\n"
	e := NewSourceError(token.Pos{Line: 2, Col: 3}, "undeclared call", source, "Module.bsl")

	got := e.Format(false)
	if !strings.Contains(got, "Module.bsl:2:3:") {
		t.Errorf("output missing file:line:col prefix: %q", got)
	}
	if !strings.Contains(got, "undeclared call") {
		t.Errorf("output missing message: %q", got)
	}
	if !strings.Contains(got, "DoesNotExist();") {
		t.Errorf("output missing the offending source line: %q", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("output missing a caret: %q", got)
	}
}

func TestFormat_NoFileUsesLinePrefix(t *testing.T) {
	e := NewSourceError(token.Pos{Line: 1, Col: 1}, "oops", "", "")
	got := e.Format(false)
	if !strings.HasPrefix(got, "line 1:1: oops") {
		t.Errorf("got %q, want a \"line N:C:\" prefix when no file is set", got)
	}
}

func TestFormat_ColorWrapsCaret(t *testing.T) {
	e := NewSourceError(token.Pos{Line: 1, Col: 1}, "oops", "A = 1;", "M.bsl")
	colored := e.Format(true)
	if !strings.Contains(colored, "\033[1;31m^\033[0m") {
		t.Errorf("expected an ANSI-wrapped caret, got %q", colored)
	}
	plain := e.Format(false)
	if strings.Contains(plain, "\033[") {
		t.Errorf("non-color formatting must not include ANSI escapes, got %q", plain)
	}
}

func TestFormatAll_Empty(t *testing.T) {
	if got := FormatAll(nil, false); got != "" {
		t.Errorf("FormatAll(nil) = %q, want empty string", got)
	}
}

func TestFormatAll_SingleErrorHasNoBatchHeader(t *testing.T) {
	e := NewSourceError(token.Pos{Line: 1, Col: 1}, "oops", "A = 1;", "M.bsl")
	got := FormatAll([]*SourceError{e}, false)
	if strings.Contains(got, "error(s):") {
		t.Errorf("a single error should not get the batch header, got %q", got)
	}
}

func TestFormatAll_MultipleErrorsAreNumbered(t *testing.T) {
	e1 := NewSourceError(token.Pos{Line: 1, Col: 1}, "first", "A = 1;", "M.bsl")
	e2 := NewSourceError(token.Pos{Line: 2, Col: 1}, "second", "A = 1;\nB = 2;", "M.bsl")
	got := FormatAll([]*SourceError{e1, e2}, false)
	if !strings.Contains(got, "2 error(s):") {
		t.Errorf("missing batch header, got %q", got)
	}
	if !strings.Contains(got, "[1/2]") || !strings.Contains(got, "[2/2]") {
		t.Errorf("missing error numbering, got %q", got)
	}
}
