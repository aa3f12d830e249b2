// Package visitor implements the traversal and plugin dispatch framework:
// a single walk over a parsed module that calls registered plugin hooks
// on enter/leave of each node, maintaining an ancestor stack and
// per-node-kind open counters that plugins can consult.
//
// Hooks follow a uniform `(node, stack, counters) → void` shape; this
// implementation honors that contract through plain Go interface methods
// rather than a reflective name-based dispatch table. Traversal itself
// switches on concrete node type (ast.go's node taxonomy), not a visitor
// method on each node, since Go has no double dispatch and a type switch
// reads far more naturally to a Go audience than simulating one.
package visitor

import (
	"github.com/go-bsl/bslint/internal/ast"
)

// Kind identifies a node's category for the open-counters map. It mirrors
// the concrete AST type names rather than reusing token.Kind, since many
// AST node types share no corresponding token.
type Kind string

const (
	KindModule     Kind = "Module"
	KindMethodDecl Kind = "MethodDecl"
	KindIfStmt     Kind = "IfStmt"
	KindWhileStmt  Kind = "WhileStmt"
	KindForStmt    Kind = "ForStmt"
	KindForEach    Kind = "ForEachStmt"
	KindTryStmt    Kind = "TryStmt"
	KindExceptStmt Kind = "ExceptStmt"
	KindAssign     Kind = "AssignStmt"
	KindCallStmt   Kind = "CallStmt"
	KindIdentExpr  Kind = "IdentExpr"
	KindBinaryExpr Kind = "BinaryExpr"
	KindStringExpr Kind = "StringExpr"
	KindRegion     Kind = "Region"
)

// Counters tracks how many nodes of each Kind are currently open (entered
// but not yet left) during the walk. Plugins use this to ask, e.g., "am I
// inside a loop" or "am I inside a Region" without re-walking the stack.
type Counters struct {
	open map[Kind]int
}

func newCounters() *Counters { return &Counters{open: map[Kind]int{}} }

// Open reports how many ancestors (inclusive of the current node) of kind
// are currently open.
func (c *Counters) Open(kind Kind) int { return c.open[kind] }

func (c *Counters) enter(kind Kind) { c.open[kind]++ }
func (c *Counters) leave(kind Kind) { c.open[kind]-- }

// Stack is the ancestor chain from the module root down to (but not
// including) the current node.
type Stack struct {
	nodes []ast.Node
}

// Nodes returns the ancestor chain, outermost first.
func (s *Stack) Nodes() []ast.Node { return s.nodes }

// Parent returns the immediate parent, or nil at the root.
func (s *Stack) Parent() ast.Node {
	if len(s.nodes) == 0 {
		return nil
	}
	return s.nodes[len(s.nodes)-1]
}

func (s *Stack) push(n ast.Node) { s.nodes = append(s.nodes, n) }
func (s *Stack) pop()            { s.nodes = s.nodes[:len(s.nodes)-1] }

// Plugin is implemented by every diagnostic check. Embed BasePlugin to get
// no-op defaults for hooks you don't care about — there is no reflection
// here, just interface embedding.
type Plugin interface {
	Name() string

	EnterModule(m *ast.Module, s *Stack, c *Counters)
	LeaveModule(m *ast.Module, s *Stack, c *Counters)
	EnterMethodDecl(d *ast.MethodDecl, s *Stack, c *Counters)
	LeaveMethodDecl(d *ast.MethodDecl, s *Stack, c *Counters)
	EnterStmt(n ast.Stmt, s *Stack, c *Counters)
	LeaveStmt(n ast.Stmt, s *Stack, c *Counters)
	EnterExpr(n ast.Expr, s *Stack, c *Counters)
	LeaveExpr(n ast.Expr, s *Stack, c *Counters)
	// EnterIdentExpr fires for every IdentExpr encountered during the walk,
	// root or nested — unlike EnterExpr (which only brackets expression
	// roots), this is the per-node-kind event the unused-variable check
	// needs to see every identifier reference, including ones buried
	// inside a binary expression or call argument.
	EnterIdentExpr(n *ast.IdentExpr, s *Stack, c *Counters)
	EnterRegion(r *ast.PrepRegionInst, s *Stack, c *Counters)
	LeaveRegion(r *ast.PrepEndRegionInst, s *Stack, c *Counters)
	EnterComment(com *Comment, s *Stack, c *Counters)
}

// Comment wraps a token.Comment so it can flow through the same
// EnterComment hook signature as other nodes without comments needing a
// Place()-bearing wrapper elsewhere in the ast package.
type Comment struct {
	Text string
	Line int
}

// BasePlugin supplies no-op implementations for every Plugin hook. Embed
// it in a concrete plugin and override only the hooks it needs.
type BasePlugin struct{}

func (BasePlugin) EnterModule(*ast.Module, *Stack, *Counters)             {}
func (BasePlugin) LeaveModule(*ast.Module, *Stack, *Counters)             {}
func (BasePlugin) EnterMethodDecl(*ast.MethodDecl, *Stack, *Counters)     {}
func (BasePlugin) LeaveMethodDecl(*ast.MethodDecl, *Stack, *Counters)     {}
func (BasePlugin) EnterStmt(ast.Stmt, *Stack, *Counters)                  {}
func (BasePlugin) LeaveStmt(ast.Stmt, *Stack, *Counters)                  {}
func (BasePlugin) EnterExpr(ast.Expr, *Stack, *Counters)                  {}
func (BasePlugin) LeaveExpr(ast.Expr, *Stack, *Counters)                  {}
func (BasePlugin) EnterIdentExpr(*ast.IdentExpr, *Stack, *Counters)       {}
func (BasePlugin) EnterRegion(*ast.PrepRegionInst, *Stack, *Counters)     {}
func (BasePlugin) LeaveRegion(*ast.PrepEndRegionInst, *Stack, *Counters)  {}
func (BasePlugin) EnterComment(*Comment, *Stack, *Counters)               {}
