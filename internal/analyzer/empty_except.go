package analyzer

import (
	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/visitor"
)

// EmptyExceptBlock flags a Try/Except whose Except clause has no
// statements — an exception silently swallowed with no handling and no
// explanatory comment is almost always a bug hiding from its caller.
type EmptyExceptBlock struct {
	visitor.BasePlugin
	Issues []Issue
}

func NewEmptyExceptBlock() *EmptyExceptBlock { return &EmptyExceptBlock{} }

func (p *EmptyExceptBlock) Name() string { return "empty-except-block" }

func (p *EmptyExceptBlock) EnterStmt(n ast.Stmt, _ *visitor.Stack, _ *visitor.Counters) {
	try, ok := n.(*ast.TryStmt)
	if !ok || try.Except == nil {
		return
	}
	if len(try.Except.Body) != 0 {
		return
	}
	p.Issues = append(p.Issues, Issue{
		Kind:          KindEmptyExceptBlock,
		Severity:      SeverityMajor,
		Message:       "except block is empty; the exception is silently discarded",
		EffortMinutes: 10,
		Place:         try.Except.Place(),
	})
}
