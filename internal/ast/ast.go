// Package ast defines the node taxonomy for a parsed module: the Module
// root, declarations, expressions, statements, and preprocessor nodes,
// all sharing a uniform Place contract. Traversal is a switch on
// concrete node type (internal/visitor) rather than a double-dispatch
// Accept/Visitor pair, which keeps adding a new plugin from requiring
// any change to the node types themselves.
package ast

import "github.com/go-bsl/bslint/internal/token"

// Node is the base interface every AST node implements.
type Node interface {
	Place() token.Place
}

// Decl is a module-level or preprocessor declaration-position node.
type Decl interface {
	Node
	declNode()
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement-position node (including preprocessor instructions,
// which are legal in both declaration and statement position).
type Stmt interface {
	Node
	stmtNode()
}

// Item is a symbol-table entry: the identifier's original-case spelling
// and a pointer to its declaration. A nil Decl marks a forward reference
// (a call to a method not yet declared) or a never-declared global.
type Item struct {
	Name string
	Decl Decl
}

// Module is the AST root.
type Module struct {
	Decls     []Decl
	Auto      []*AutoDecl
	Body      []Stmt
	Interface []*Item
	Comments  map[int]token.Comment
	Place_    token.Place
}

func (m *Module) Place() token.Place { return m.Place_ }
