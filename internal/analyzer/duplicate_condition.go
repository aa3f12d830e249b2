package analyzer

import (
	"fmt"

	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
	"github.com/go-bsl/bslint/internal/visitor"
)

// DuplicateCondition flags an If/ElsIf chain where two branches test the
// exact same condition — the later branch is always dead code, since the
// earlier identical condition already decided the outcome.
type DuplicateCondition struct {
	visitor.BasePlugin
	Issues []Issue
}

func NewDuplicateCondition() *DuplicateCondition { return &DuplicateCondition{} }

func (p *DuplicateCondition) Name() string { return "duplicate-condition" }

func (p *DuplicateCondition) EnterStmt(n ast.Stmt, _ *visitor.Stack, _ *visitor.Counters) {
	ifStmt, ok := n.(*ast.IfStmt)
	if !ok {
		return
	}
	seen := map[string]token.Place{}
	seen[stringify(ifStmt.Cond)] = ifStmt.Place()
	for _, ei := range ifStmt.ElsIfs {
		key := stringify(ei.Cond)
		if first, dup := seen[key]; dup {
			p.Issues = append(p.Issues, Issue{
				Kind:          KindDuplicateCondition,
				Severity:      SeverityMajor,
				Message:       fmt.Sprintf("condition duplicates the one at %s", first),
				EffortMinutes: 10,
				Place:         ei.Place(),
			})
			continue
		}
		seen[key] = ei.Place()
	}
}
