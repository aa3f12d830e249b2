package analyzer

import (
	"fmt"

	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
	"github.com/go-bsl/bslint/internal/visitor"
)

// varState is a binding's read/write state across a method body, mirroring
// the source tool's per-decl state machine rather than a plain used/unused
// flag: a variable that is only ever assigned inside a loop condition's own
// re-evaluation still needs to remember it was read at some point, even
// while a later plain reassignment would otherwise erase that memory.
type varState int

const (
	stateNil varState = iota
	stateSet
	stateGet
	stateGetInLoop
)

type binding struct {
	name  string // original-case spelling, as written in source
	place token.Place
	state varState
	byVal bool
	isVar bool // true for locals/auto (report as unused-local); false for params
}

// UnusedVariables flags local variables, implicit (auto) locals, and
// parameters that a method declares but never reads — tracking a small
// per-decl state machine (Set / Get / GetInLoop) rather than a single
// used/unused bit, so that a variable driven only by a loop condition
// (e.g. `While A < 3 Do ... EndDo`) is correctly treated as used even
// though its last textual touch is an assignment.
//
// StrictParams switches a parameter's initial state from Get (the
// pragmatic default, which suppresses warnings on parameters that are
// merely read) to Nil, flagging parameters that are never referenced at
// all, not just ones that are only ever overwritten.
type UnusedVariables struct {
	visitor.BasePlugin
	Issues []Issue

	StrictParams bool

	decls      map[string]*binding
	lhs        *ast.IdentExpr // the IdentExpr currently remembered as an AssignStmt's left side
	methodName string
}

func NewUnusedVariables() *UnusedVariables {
	return &UnusedVariables{decls: map[string]*binding{}}
}

func (p *UnusedVariables) Name() string { return "unused-variables" }

func (p *UnusedVariables) EnterMethodDecl(d *ast.MethodDecl, _ *visitor.Stack, _ *visitor.Counters) {
	p.decls = map[string]*binding{}
	p.methodName = d.Signature.SigName()
	for _, v := range d.Vars {
		p.decls[token.Fold(v.Name)] = &binding{name: v.Name, place: v.Place_, state: stateSet, isVar: true}
	}
	for _, a := range d.Auto {
		p.decls[token.Fold(a.Name)] = &binding{name: a.Name, place: a.Place_, state: stateSet, isVar: true}
	}
	paramInit := stateGet
	if p.StrictParams {
		paramInit = stateNil
	}
	for _, param := range d.Signature.SigParams() {
		p.decls[token.Fold(param.Name)] = &binding{name: param.Name, place: param.Place_, state: paramInit, byVal: param.ByVal}
	}
}

func (p *UnusedVariables) EnterStmt(n ast.Stmt, _ *visitor.Stack, _ *visitor.Counters) {
	if assign, ok := n.(*ast.AssignStmt); ok {
		p.lhs = assign.Left
	}
}

func (p *UnusedVariables) LeaveStmt(n ast.Stmt, _ *visitor.Stack, c *visitor.Counters) {
	assign, ok := n.(*ast.AssignStmt)
	if !ok {
		return
	}
	p.lhs = nil
	left := assign.Left
	if left == nil || left.Head == nil || left.IsCall || len(left.Tail) != 0 {
		return
	}
	b, ok := p.decls[token.Fold(left.Head.Name)]
	if !ok {
		return
	}
	inLoop := c.Open(visitor.KindForStmt) > 0 || c.Open(visitor.KindWhileStmt) > 0 || c.Open(visitor.KindForEach) > 0
	if b.state == stateGetInLoop && inLoop {
		return
	}
	b.state = stateSet
}

func (p *UnusedVariables) EnterIdentExpr(n *ast.IdentExpr, _ *visitor.Stack, c *visitor.Counters) {
	if n == nil || n.Head == nil || n == p.lhs {
		return
	}
	b, ok := p.decls[token.Fold(n.Head.Name)]
	if !ok {
		return
	}
	inLoop := c.Open(visitor.KindForStmt) > 0 || c.Open(visitor.KindWhileStmt) > 0 || c.Open(visitor.KindForEach) > 0
	if inLoop {
		b.state = stateGetInLoop
	} else {
		b.state = stateGet
	}
}

func (p *UnusedVariables) LeaveMethodDecl(d *ast.MethodDecl, _ *visitor.Stack, _ *visitor.Counters) {
	for _, b := range p.decls {
		if b.isVar {
			if b.state != stateGet && b.state != stateGetInLoop {
				p.Issues = append(p.Issues, Issue{
					Kind:          KindUnusedLocalVariable,
					Severity:      SeverityMinor,
					Message:       fmt.Sprintf("variable %q is declared in %s but never used", b.name, p.methodName),
					EffortMinutes: 5,
					Place:         b.place,
				})
			}
			continue
		}
		if b.state == stateNil || (b.state == stateSet && b.byVal) {
			p.Issues = append(p.Issues, Issue{
				Kind:          KindUnusedParameter,
				Severity:      SeverityInfo,
				Message:       fmt.Sprintf("parameter %q of %s is never used", b.name, p.methodName),
				EffortMinutes: 5,
				Place:         b.place,
			})
		}
	}
}
