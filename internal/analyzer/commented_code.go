package analyzer

import (
	"strings"

	"github.com/go-bsl/bslint/internal/token"
	"github.com/go-bsl/bslint/internal/visitor"
)

// CommentedOutCode flags single-line comments whose text still reads as
// executable code rather than prose: tokenized by spaces, it looks like
// an assignment (`words[1] == "="`), a multi-line-string continuation
// (`words[0]` is `|` or a tab), a reserved keyword sitting where a
// statement would start, or a trailing `;`. Contiguous flagged lines are
// reported only once — the line right after a flagged line is assumed to
// be part of the same commented-out block.
type CommentedOutCode struct {
	visitor.BasePlugin
	Issues []Issue

	lastFlaggedLine int
}

func NewCommentedOutCode() *CommentedOutCode {
	return &CommentedOutCode{lastFlaggedLine: -1}
}

func (p *CommentedOutCode) Name() string { return "commented-out-code" }

func (p *CommentedOutCode) EnterComment(c *visitor.Comment, _ *visitor.Stack, _ *visitor.Counters) {
	if p.lastFlaggedLine == c.Line-1 {
		p.lastFlaggedLine = c.Line
		return
	}
	if !looksLikeCode(c.Text) {
		return
	}
	p.lastFlaggedLine = c.Line
	p.Issues = append(p.Issues, Issue{
		Kind:          KindCommentedOutCode,
		Severity:      SeverityInfo,
		Message:       "comment may contain commented-out code",
		EffortMinutes: 2,
		Place:         token.Place{BegLine: c.Line, EndLine: c.Line},
	})
}

func looksLikeCode(text string) bool {
	words := strings.Split(text, " ")
	if len(words) == 0 {
		return false
	}
	if len(words) > 1 && words[1] == "=" {
		return true
	}
	if words[0] == "|" || words[0] == "\t" {
		return true
	}
	if _, ok := token.LookupIdent(words[0]); ok {
		return true
	}
	if words[0] != "" && strings.HasSuffix(words[0], ";") {
		return true
	}
	return false
}
