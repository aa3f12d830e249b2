// Package parser implements a single-pass, scannerless-adjacent recursive
// descent parser: it drives internal/scanner token-by-token and resolves
// identifier scope/symbol bindings inline as it parses, rather than in a
// later pass. Before parsing a module's declarations, the caller's chosen
// internal/global.Context is installed into the module's root scope, so
// references to predefined attributes/methods resolve immediately.
package parser

import (
	"fmt"

	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/global"
	"github.com/go-bsl/bslint/internal/scanner"
	"github.com/go-bsl/bslint/internal/scope"
	"github.com/go-bsl/bslint/internal/token"
)

// Parser drives a single module parse.
type Parser struct {
	sc   *scanner.Scanner
	cur  token.Token
	peek token.Token
	// pendingPeek holds a real token bumped out of the peek slot by
	// preprocessorCheatCode; advance drains it before asking the scanner
	// for anything new.
	pendingPeek []token.Token

	errs []Error

	moduleScope *scope.Scope
	curScope    *scope.Scope

	// unknown holds placeholder Items for methods called before their
	// declaration is reached. Each Item's Decl stays nil until the real
	// MethodDecl is parsed, at which point the same Item (not a copy) has
	// its Decl field patched in place — every IdentExpr.Head that already
	// points at it observes the real declaration automatically.
	unknown map[string]*ast.Item

	allowVar         bool       // Var declarations are only legal before the first statement
	pendingDirective token.Kind // last &AtClient-style directive, consumed by the next decl
	curMethod        *ast.MethodDecl
}

// New creates a Parser over src, pre-populating the module root scope from
// ctx (the caller looks ctx up via global.Registry.Context for the
// module's kind).
func New(src string, ctx global.Context) *Parser {
	p := &Parser{
		sc:          scanner.New(src),
		moduleScope: scope.New(),
		unknown:     map[string]*ast.Item{},
	}
	p.curScope = p.moduleScope
	for _, it := range ctx.StandardAttributes {
		p.moduleScope.DeclareVar(it)
	}
	for _, it := range ctx.Attributes {
		p.moduleScope.DeclareVar(it)
	}
	for _, it := range ctx.Methods {
		p.moduleScope.DeclareMethod(it)
	}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	if len(p.pendingPeek) > 0 {
		p.peek = p.pendingPeek[0]
		p.pendingPeek = p.pendingPeek[1:]
		return
	}
	p.peek = p.sc.Scan()
}

func (p *Parser) curPos() token.Pos {
	pl := p.cur.Place
	return token.Pos{Offset: pl.BegPos, Line: pl.BegLine, Col: pl.BegCol}
}

func (p *Parser) fatal(format string, args ...any) {
	p.errs = append(p.errs, Error{Message: fmt.Sprintf(format, args...), Pos: p.curPos(), Fatal: true})
}

func (p *Parser) nonFatal(format string, args ...any) {
	p.errs = append(p.errs, Error{Message: fmt.Sprintf(format, args...), Pos: p.curPos(), Fatal: false})
}

func (p *Parser) expect(k token.Kind) token.Place {
	place := p.cur.Place
	if p.cur.Kind != k {
		p.nonFatal("expected %s, got %s", k, p.cur.Kind)
		return place
	}
	p.advance()
	return place
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

// ParseModule parses the whole source: declarations, then the executable
// body, returning the built ast.Module and every Error collected along the
// way (scanner errors are folded in ahead of any parse errors).
func (p *Parser) ParseModule() (m *ast.Module, errs []Error) {
	defer func() {
		var scanErrs []Error
		for _, se := range p.sc.Errors() {
			scanErrs = append(scanErrs, Error{Message: se.Message, Pos: se.Pos, Fatal: se.Fatal})
		}
		errs = append(scanErrs, errs...)
	}()

	begPlace := p.cur.Place
	m = &ast.Module{Comments: p.sc.Comments()}

	p.allowVar = true
	for p.declStarts() {
		if d := p.parseDecl(); d != nil {
			m.Decls = append(m.Decls, d)
		}
		if p.hasFatal() {
			return m, p.errs
		}
	}

	p.allowVar = false
	for !p.at(token.EOF) {
		if st := p.parseStmt(); st != nil {
			m.Body = append(m.Body, st)
		}
		if p.hasFatal() {
			return m, p.errs
		}
	}

	m.Auto = p.moduleScope.Auto()
	m.Interface = p.exportedInterface(m.Decls)
	endPlace := p.cur.Place
	m.Place_ = token.Join(begPlace, endPlace)

	for name, it := range p.unknown {
		if it.Decl == nil {
			p.errs = append(p.errs, Error{Message: "call to undeclared procedure or function: " + name})
		}
	}

	return m, p.errs
}

func (p *Parser) hasFatal() bool {
	for _, e := range p.sc.Errors() {
		if e.Fatal {
			return true
		}
	}
	for _, e := range p.errs {
		if e.Fatal {
			return true
		}
	}
	return false
}

// exportedInterface collects the Export-marked module-level symbols: the
// subset of a module's surface that other modules may call into.
func (p *Parser) exportedInterface(decls []ast.Decl) []*ast.Item {
	var out []*ast.Item
	for _, d := range decls {
		switch n := d.(type) {
		case *ast.VarModListDecl:
			for _, v := range n.List {
				if v.Export {
					if it, ok := p.moduleScope.LookupVarLocal(v.Name); ok {
						out = append(out, it)
					}
				}
			}
		case *ast.MethodDecl:
			if n.Signature.SigExport() {
				if it, ok := p.moduleScope.LookupMethod(n.Signature.SigName()); ok {
					out = append(out, it)
				}
			}
		}
	}
	return out
}

func (p *Parser) declStarts() bool {
	switch p.cur.Kind {
	case token.VAR, token.PROCEDURE, token.FUNCTION,
		token.AT_CLIENT, token.AT_SERVER, token.AT_SERVER_NO_CONTEXT,
		token.AT_CLIENT_AT_SERVER_NO_CONTEXT, token.AT_CLIENT_AT_SERVER,
		token.PREP_REGION, token.PREP_ENDREGION,
		token.PREP_IF, token.PREP_ELSIF, token.PREP_ELSE, token.PREP_ENDIF:
		return true
	default:
		return false
	}
}

// preprocessorCheatCode lets the declaration and statement loops share one
// trick: a preprocessor instruction node (#Region, #If, ...) never ends
// with a semicolon in source, but every other decl/stmt does. Rather than
// special-case the terminator check at every call site, the parser inserts
// a synthetic Semicolon token right after building such a node — bumping
// the real current token into the peek slot (and the real peek into a
// one-token overflow queue) — so the shared "consume a trailing semicolon"
// step downstream is unconditional and no real token is lost.
func (p *Parser) preprocessorCheatCode(place token.Place) {
	p.pendingPeek = append(p.pendingPeek, p.peek)
	p.peek = p.cur
	p.cur = token.Token{Kind: token.SEMICOLON, Literal: ";", Place: place}
}
