package analyzer

import "github.com/go-bsl/bslint/internal/visitor"

// IssueCollector is implemented by every AST-driven plugin in this package:
// a visitor.Plugin that also exposes the Issues it accumulated during the
// walk.
type IssueCollector interface {
	visitor.Plugin
	issues() []Issue
}

func (p *UnusedVariables) issues() []Issue      { return p.Issues }
func (p *ClosingComments) issues() []Issue      { return p.Issues }
func (p *CommentedOutCode) issues() []Issue     { return p.Issues }
func (p *DuplicateCondition) issues() []Issue   { return p.Issues }
func (p *InefficientConcat) issues() []Issue    { return p.Issues }
func (p *EmptyExceptBlock) issues() []Issue     { return p.Issues }
func (p *StructureCtorMisuse) issues() []Issue  { return p.Issues }

// NewDefaultPlugins builds one fresh instance of every core plugin
// enumerated in this package — the set the driver registers for every
// module it analyzes.
func NewDefaultPlugins() []IssueCollector {
	return []IssueCollector{
		NewClosingComments(),
		NewCommentedOutCode(),
		NewUnusedVariables(),
		NewDuplicateCondition(),
		NewInefficientConcat(),
		NewEmptyExceptBlock(),
		NewStructureCtorMisuse(),
	}
}

// CollectIssues runs the AST-driven plugins (already walked) plus the two
// text-driven style checks over source, returning every Issue they raised.
func CollectIssues(plugins []IssueCollector, source string, maxLineLen int) []Issue {
	var all []Issue
	for _, p := range plugins {
		all = append(all, p.issues()...)
	}
	all = append(all, CheckLineLength(source, maxLineLen)...)
	all = append(all, CheckTrailingWhitespace(source)...)
	return all
}

// AsPlugins adapts a []IssueCollector to the []visitor.Plugin the Runner
// expects.
func AsPlugins(cs []IssueCollector) []visitor.Plugin {
	out := make([]visitor.Plugin, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}
