// Package scope implements the nested lexical scopes of a module: a
// module scope and per-method scopes chained toward the module root,
// with separate vars/methods namespaces keyed by lowercased name, and
// an ordered list of implicitly-declared AutoDecl names.
package scope

import (
	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
)

// Scope is a single lexical frame.
type Scope struct {
	Outer   *Scope
	vars    map[string]*ast.Item
	methods map[string]*ast.Item
	auto    []*ast.AutoDecl
}

// New creates a root (outer-less) Scope.
func New() *Scope {
	return &Scope{vars: map[string]*ast.Item{}, methods: map[string]*ast.Item{}}
}

// Nested creates a child Scope whose outer is s.
func Nested(outer *Scope) *Scope {
	return &Scope{Outer: outer, vars: map[string]*ast.Item{}, methods: map[string]*ast.Item{}}
}

// LookupVar walks scope → outer* looking for name (case-insensitive) in the
// vars namespace.
func (s *Scope) LookupVar(name string) (*ast.Item, bool) {
	key := token.Fold(name)
	for cur := s; cur != nil; cur = cur.Outer {
		if it, ok := cur.vars[key]; ok {
			return it, true
		}
	}
	return nil, false
}

// LookupVarLocal looks up name only in this scope's vars namespace, not outer.
func (s *Scope) LookupVarLocal(name string) (*ast.Item, bool) {
	it, ok := s.vars[token.Fold(name)]
	return it, ok
}

// DeclareVar inserts a new vars entry. It reports false (and does not
// insert) if a same-named entry already exists in this scope: no two
// vars entries in one scope may share a lowercased name.
func (s *Scope) DeclareVar(it *ast.Item) bool {
	key := token.Fold(it.Name)
	if _, exists := s.vars[key]; exists {
		return false
	}
	s.vars[key] = it
	return true
}

// LookupMethod walks scope → outer* looking for name in the methods namespace.
func (s *Scope) LookupMethod(name string) (*ast.Item, bool) {
	key := token.Fold(name)
	for cur := s; cur != nil; cur = cur.Outer {
		if it, ok := cur.methods[key]; ok {
			return it, true
		}
	}
	return nil, false
}

// DeclareMethod inserts a new methods entry, subject to the same
// no-redeclaration invariant as DeclareVar.
func (s *Scope) DeclareMethod(it *ast.Item) bool {
	key := token.Fold(it.Name)
	if _, exists := s.methods[key]; exists {
		return false
	}
	s.methods[key] = it
	return true
}

// ReplaceMethod overwrites (or inserts) a methods entry unconditionally —
// used when relocating a forward-referenced Item from the parser's
// pending-calls table once its real declaration is reached.
func (s *Scope) ReplaceMethod(it *ast.Item) {
	s.methods[token.Fold(it.Name)] = it
}

// DeleteMethodUnknown removes a methods entry from this scope. The
// parser's forward-call relocation does not use it: it deletes from its
// own unknown table and calls ReplaceMethod.
func (s *Scope) DeleteMethodUnknown(name string) {
	delete(s.methods, token.Fold(name))
}

// AppendAuto records an implicit variable in textual order.
func (s *Scope) AppendAuto(d *ast.AutoDecl) {
	s.auto = append(s.auto, d)
}

// Auto returns the implicit variables introduced in this scope, in
// textual order.
func (s *Scope) Auto() []*ast.AutoDecl {
	return s.auto
}
