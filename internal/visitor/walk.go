package visitor

import (
	"fmt"
	"sort"

	"github.com/go-bsl/bslint/internal/ast"
)

// PanicHandler is invoked when a plugin hook panics. The walk recovers the
// panic, reports it here, and continues traversing — one broken plugin
// must never abort analysis of the rest of the module.
type PanicHandler func(plugin string, hook string, recovered any)

// Runner drives one module traversal against a fixed set of plugins.
type Runner struct {
	plugins  []Plugin
	onPanic  PanicHandler
	counters *Counters
	stack    *Stack
}

// NewRunner builds a Runner over plugins. onPanic may be nil, in which case
// panics are swallowed silently after recovery.
func NewRunner(plugins []Plugin, onPanic PanicHandler) *Runner {
	if onPanic == nil {
		onPanic = func(string, string, any) {}
	}
	return &Runner{plugins: plugins, onPanic: onPanic, counters: newCounters(), stack: &Stack{}}
}

func (r *Runner) safe(plugin, hook string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onPanic(plugin, hook, rec)
		}
	}()
	fn()
}

// Walk runs every plugin over m once.
func (r *Runner) Walk(m *ast.Module) {
	r.enterModule(m)
	for _, d := range m.Decls {
		r.walkDecl(d)
	}
	// Comments are keyed by line in a map; emit them in ascending line
	// order so a plugin tracking contiguous comment blocks (e.g. the
	// commented-out-code check) sees them in source order rather than
	// Go's randomized map iteration order.
	lines := make([]int, 0, len(m.Comments))
	for line := range m.Comments {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	for _, line := range lines {
		r.emitComment(Comment{Text: m.Comments[line].Text, Line: line})
	}
	for _, s := range m.Body {
		r.walkStmt(s)
	}
	r.leaveModule(m)
}

func (r *Runner) enterModule(m *ast.Module) {
	r.counters.enter(KindModule)
	for _, p := range r.plugins {
		r.safe(p.Name(), "EnterModule", func() { p.EnterModule(m, r.stack, r.counters) })
	}
	r.stack.push(m)
}

func (r *Runner) leaveModule(m *ast.Module) {
	r.stack.pop()
	for _, p := range r.plugins {
		r.safe(p.Name(), "LeaveModule", func() { p.LeaveModule(m, r.stack, r.counters) })
	}
	r.counters.leave(KindModule)
}

func (r *Runner) emitComment(c Comment) {
	for _, p := range r.plugins {
		r.safe(p.Name(), "EnterComment", func() { p.EnterComment(&c, r.stack, r.counters) })
	}
}

func (r *Runner) walkDecl(d ast.Decl) {
	md, ok := d.(*ast.MethodDecl)
	if !ok {
		// Region markers and preprocessor instructions in declaration
		// position don't carry a body to recurse into.
		if reg, ok := d.(*ast.PrepRegionInst); ok {
			r.counters.enter(KindRegion)
			for _, p := range r.plugins {
				r.safe(p.Name(), "EnterRegion", func() { p.EnterRegion(reg, r.stack, r.counters) })
			}
			return
		}
		if end, ok := d.(*ast.PrepEndRegionInst); ok {
			for _, p := range r.plugins {
				r.safe(p.Name(), "LeaveRegion", func() { p.LeaveRegion(end, r.stack, r.counters) })
			}
			r.counters.leave(KindRegion)
		}
		return
	}

	r.counters.enter(KindMethodDecl)
	for _, p := range r.plugins {
		r.safe(p.Name(), "EnterMethodDecl", func() { p.EnterMethodDecl(md, r.stack, r.counters) })
	}
	r.stack.push(md)
	for _, s := range md.Body {
		r.walkStmt(s)
	}
	r.stack.pop()
	for _, p := range r.plugins {
		r.safe(p.Name(), "LeaveMethodDecl", func() { p.LeaveMethodDecl(md, r.stack, r.counters) })
	}
	r.counters.leave(KindMethodDecl)
}

func (r *Runner) kindOf(s ast.Stmt) Kind {
	switch s.(type) {
	case *ast.IfStmt:
		return KindIfStmt
	case *ast.WhileStmt:
		return KindWhileStmt
	case *ast.ForStmt:
		return KindForStmt
	case *ast.ForEachStmt:
		return KindForEach
	case *ast.TryStmt:
		return KindTryStmt
	case *ast.ExceptStmt:
		return KindExceptStmt
	case *ast.AssignStmt:
		return KindAssign
	case *ast.CallStmt:
		return KindCallStmt
	default:
		return Kind(fmt.Sprintf("%T", s))
	}
}

func (r *Runner) walkStmt(s ast.Stmt) {
	switch s.(type) {
	case *ast.BreakStmt, *ast.ContinueStmt, *ast.GotoStmt, *ast.LabelStmt:
		// Leaf statements fire EnterStmt only: nothing is pushed, counted,
		// or left.
		for _, p := range r.plugins {
			r.safe(p.Name(), "EnterStmt", func() { p.EnterStmt(s, r.stack, r.counters) })
		}
		return
	}

	kind := r.kindOf(s)
	r.counters.enter(kind)
	for _, p := range r.plugins {
		r.safe(p.Name(), "EnterStmt", func() { p.EnterStmt(s, r.stack, r.counters) })
	}
	r.stack.push(s)

	switch n := s.(type) {
	case *ast.AssignStmt:
		r.walkExprRoot(n.Left)
		r.walkExprRoot(n.Right)
	case *ast.ReturnStmt:
		if n.Expr != nil {
			r.walkExprRoot(n.Expr)
		}
	case *ast.RaiseStmt:
		if n.Expr != nil {
			r.walkExprRoot(n.Expr)
		}
	case *ast.ExecuteStmt:
		r.walkExprRoot(n.Expr)
	case *ast.CallStmt:
		r.walkExprRoot(n.Ident)
	case *ast.IfStmt:
		r.walkExprRoot(n.Cond)
		for _, st := range n.Then {
			r.walkStmt(st)
		}
		for _, ei := range n.ElsIfs {
			r.walkStmt(ei)
		}
		if n.Else != nil {
			r.walkStmt(n.Else)
		}
	case *ast.ElsIfStmt:
		r.walkExprRoot(n.Cond)
		for _, st := range n.Then {
			r.walkStmt(st)
		}
	case *ast.ElseStmt:
		for _, st := range n.Body {
			r.walkStmt(st)
		}
	case *ast.WhileStmt:
		r.walkExprRoot(n.Cond)
		for _, st := range n.Body {
			r.walkStmt(st)
		}
	case *ast.ForStmt:
		r.walkExprRoot(n.Ident)
		r.walkExprRoot(n.From)
		r.walkExprRoot(n.To)
		for _, st := range n.Body {
			r.walkStmt(st)
		}
	case *ast.ForEachStmt:
		r.walkExprRoot(n.Ident)
		r.walkExprRoot(n.In)
		for _, st := range n.Body {
			r.walkStmt(st)
		}
	case *ast.TryStmt:
		for _, st := range n.Try {
			r.walkStmt(st)
		}
		if n.Except != nil {
			r.walkStmt(n.Except)
		}
	case *ast.ExceptStmt:
		for _, st := range n.Body {
			r.walkStmt(st)
		}
	case *ast.PrepIfInst, *ast.PrepElsIfInst, *ast.PrepElseInst, *ast.PrepEndIfInst:
		// leaf preprocessor statements: no children to recurse into.
	case *ast.PrepRegionInst:
		r.counters.enter(KindRegion)
		for _, p := range r.plugins {
			r.safe(p.Name(), "EnterRegion", func() { p.EnterRegion(n, r.stack, r.counters) })
		}
	case *ast.PrepEndRegionInst:
		for _, p := range r.plugins {
			r.safe(p.Name(), "LeaveRegion", func() { p.LeaveRegion(n, r.stack, r.counters) })
		}
		r.counters.leave(KindRegion)
	case *ast.BreakStmt, *ast.ContinueStmt, *ast.GotoStmt, *ast.LabelStmt:
		// leaf statements.
	}

	r.stack.pop()
	for _, p := range r.plugins {
		r.safe(p.Name(), "LeaveStmt", func() { p.LeaveStmt(s, r.stack, r.counters) })
	}
	r.counters.leave(kind)
}

// walkExprRoot brackets an expression that sits directly in a statement
// position (AssignStmt.Right, IfStmt.Cond, …) with Enter/LeaveExpr. Only
// expression *roots* are bracketed this way — nested sub-expressions are
// walked without re-firing the hook at every level so a plugin counting
// "am I inside an expression" doesn't see it incremented once per AST
// level of a single expression tree.
func (r *Runner) walkExprRoot(e ast.Expr) {
	if e == nil {
		return
	}
	kind := r.exprKind(e)
	r.counters.enter(kind)
	for _, p := range r.plugins {
		r.safe(p.Name(), "EnterExpr", func() { p.EnterExpr(e, r.stack, r.counters) })
	}
	r.fireIdentExpr(e)
	r.stack.push(e)
	r.walkExprChildren(e)
	r.stack.pop()
	for _, p := range r.plugins {
		r.safe(p.Name(), "LeaveExpr", func() { p.LeaveExpr(e, r.stack, r.counters) })
	}
	r.counters.leave(kind)
}

// fireIdentExpr dispatches the per-node EnterIdentExpr event when e is an
// IdentExpr — called both for roots (from walkExprRoot) and for nested
// occurrences (from descend), so every identifier reference in the tree
// is visible to plugins regardless of depth.
func (r *Runner) fireIdentExpr(e ast.Expr) {
	id, ok := e.(*ast.IdentExpr)
	if !ok {
		return
	}
	for _, p := range r.plugins {
		r.safe(p.Name(), "EnterIdentExpr", func() { p.EnterIdentExpr(id, r.stack, r.counters) })
	}
}

func (r *Runner) exprKind(e ast.Expr) Kind {
	switch e.(type) {
	case *ast.IdentExpr:
		return KindIdentExpr
	case *ast.BinaryExpr:
		return KindBinaryExpr
	case *ast.StringExpr:
		return KindStringExpr
	default:
		return Kind(fmt.Sprintf("%T", e))
	}
}

// walkExprChildren recurses into an expression's sub-expressions without
// re-bracketing each one as a root — nested literals, identifiers and
// operators are visible to plugins via the stack, not via their own
// Enter/LeaveExpr pair.
func (r *Runner) walkExprChildren(e ast.Expr) {
	switch n := e.(type) {
	case *ast.UnaryExpr:
		r.descend(n.Operand)
	case *ast.BinaryExpr:
		r.descend(n.Left)
		r.descend(n.Right)
	case *ast.NotExpr:
		r.descend(n.Expr)
	case *ast.ParenExpr:
		r.descend(n.Expr)
	case *ast.TernaryExpr:
		r.descend(n.Cond)
		r.descend(n.Then)
		r.descend(n.Else)
		r.descendTail(n.Tail)
	case *ast.NewExpr:
		for _, a := range n.Args {
			r.descend(a)
		}
	case *ast.IdentExpr:
		for _, a := range n.Args {
			r.descend(a)
		}
		r.descendTail(n.Tail)
	case *ast.StringExpr, *ast.BasicLitExpr:
		// leaf expressions.
	}
}

func (r *Runner) descend(e ast.Expr) {
	if e == nil {
		return
	}
	r.fireIdentExpr(e)
	r.stack.push(e)
	r.walkExprChildren(e)
	r.stack.pop()
}

func (r *Runner) descendTail(tail []ast.TailExpr) {
	for _, t := range tail {
		switch te := t.(type) {
		case *ast.FieldExpr:
			for _, a := range te.Args {
				r.descend(a)
			}
		case *ast.IndexExpr:
			r.descend(te.Expr)
		}
	}
}
