package parser

import (
	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/scope"
	"github.com/go-bsl/bslint/internal/token"
)

func (p *Parser) parseDecl() ast.Decl {
	switch p.cur.Kind {
	case token.AT_CLIENT, token.AT_SERVER, token.AT_SERVER_NO_CONTEXT,
		token.AT_CLIENT_AT_SERVER_NO_CONTEXT, token.AT_CLIENT_AT_SERVER:
		p.pendingDirective = p.cur.Kind
		p.advance()
		return nil
	case token.VAR:
		return p.parseVarModListDecl()
	case token.PROCEDURE:
		return p.parseMethodDecl(false)
	case token.FUNCTION:
		return p.parseMethodDecl(true)
	case token.PREP_REGION:
		d := p.parsePrepRegion()
		p.expect(token.SEMICOLON)
		return d
	case token.PREP_ENDREGION:
		d := p.parsePrepEndRegion()
		p.expect(token.SEMICOLON)
		return d
	case token.PREP_IF:
		d := p.parsePrepIf()
		p.expect(token.SEMICOLON)
		return d
	case token.PREP_ELSIF:
		d := p.parsePrepElsIf()
		p.expect(token.SEMICOLON)
		return d
	case token.PREP_ELSE:
		d := p.parsePrepElse()
		p.expect(token.SEMICOLON)
		return d
	case token.PREP_ENDIF:
		d := p.parsePrepEndIf()
		p.expect(token.SEMICOLON)
		return d
	default:
		p.nonFatal("unexpected token %s in declarations", p.cur.Kind)
		p.advance()
		return nil
	}
}

func (p *Parser) parseVarModListDecl() *ast.VarModListDecl {
	beg := p.cur.Place
	directive := p.pendingDirective
	p.pendingDirective = 0
	p.advance() // Var

	decl := &ast.VarModListDecl{Directive: directive}
	for {
		namePlace := p.cur.Place
		name := p.cur.Literal
		p.expect(token.IDENT)

		export := false
		if p.at(token.EXPORT) {
			export = true
			p.advance()
		}

		v := &ast.VarModDecl{Name: name, Directive: directive, Export: export, Place_: namePlace}
		decl.List = append(decl.List, v)
		if !p.moduleScope.DeclareVar(&ast.Item{Name: name, Decl: v}) {
			p.fatal("variable %q is already declared", name)
		}

		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end := p.cur.Place
	p.expect(token.SEMICOLON)
	decl.Place_ = token.Join(beg, end)
	return decl
}

func (p *Parser) parseMethodDecl(isFunc bool) *ast.MethodDecl {
	beg := p.cur.Place
	directive := p.pendingDirective
	p.pendingDirective = 0
	p.advance() // Procedure / Function

	name := p.cur.Literal
	p.expect(token.IDENT)

	params := p.parseParamList()

	export := false
	if p.at(token.EXPORT) {
		export = true
		p.advance()
	}
	if p.at(token.SEMICOLON) {
		p.advance()
	}

	var sig ast.Signature
	if isFunc {
		sig = &ast.FuncSign{Name: name, Directive: directive, Params: params, Export: export, Place_: beg}
	} else {
		sig = &ast.ProcSign{Name: name, Directive: directive, Params: params, Export: export, Place_: beg}
	}

	methodScope := scope.Nested(p.moduleScope)
	outer := p.curScope
	p.curScope = methodScope
	outerAllow := p.allowVar
	p.allowVar = true

	md := &ast.MethodDecl{Signature: sig, IsFunc: isFunc}
	prevMethod := p.curMethod
	p.curMethod = md

	for _, prm := range params {
		if !methodScope.DeclareVar(&ast.Item{Name: prm.Name, Decl: prm}) {
			p.fatal("parameter %q is already declared", prm.Name)
		}
	}

	for p.at(token.VAR) && p.allowVar {
		p.parseVarLocDecls(md, methodScope)
	}
	p.allowVar = false

	for !p.atMethodEnd(isFunc) {
		if st := p.parseStmt(); st != nil {
			md.Body = append(md.Body, st)
		}
		if p.hasFatal() {
			break
		}
	}
	endPlace := p.cur.Place
	if isFunc {
		p.expect(token.ENDFUNCTION)
	} else {
		p.expect(token.ENDPROCEDURE)
	}
	md.Place_ = token.Join(beg, endPlace)
	md.Auto = methodScope.Auto()

	p.curScope = outer
	p.allowVar = outerAllow
	p.curMethod = prevMethod

	it := &ast.Item{Name: name, Decl: md}
	if existing, ok := p.unknown[token.Fold(name)]; ok {
		existing.Decl = md
		delete(p.unknown, token.Fold(name))
		p.moduleScope.ReplaceMethod(existing)
	} else if !p.moduleScope.DeclareMethod(it) {
		p.fatal("procedure or function %q is already declared", name)
	}

	if p.at(token.SEMICOLON) {
		p.advance()
	}
	return md
}

func (p *Parser) isFuncBody() bool { return p.curMethod != nil && p.curMethod.IsFunc }

func (p *Parser) atMethodEnd(isFunc bool) bool {
	if isFunc {
		return p.at(token.ENDFUNCTION) || p.at(token.EOF)
	}
	return p.at(token.ENDPROCEDURE) || p.at(token.EOF)
}

func (p *Parser) parseParamList() []*ast.ParamDecl {
	p.expect(token.LPAREN)
	var params []*ast.ParamDecl
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		beg := p.cur.Place
		byVal := false
		if p.at(token.VAL) {
			byVal = true
			p.advance()
		}
		name := p.cur.Literal
		p.expect(token.IDENT)

		var dflt ast.Expr
		if p.at(token.EQL) {
			p.advance()
			dflt = p.parseExpr()
		}
		params = append(params, &ast.ParamDecl{Name: name, ByVal: byVal, DefaultValue: dflt, Place_: beg})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseVarLocDecls(md *ast.MethodDecl, sc *scope.Scope) {
	p.advance() // Var
	for {
		beg := p.cur.Place
		name := p.cur.Literal
		p.expect(token.IDENT)
		v := &ast.VarLocDecl{Name: name, Place_: beg}
		md.Vars = append(md.Vars, v)
		if !sc.DeclareVar(&ast.Item{Name: name, Decl: v}) {
			p.fatal("variable %q is already declared", name)
		}
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.SEMICOLON)
}

func (p *Parser) parsePrepRegion() *ast.PrepRegionInst {
	beg := p.cur.Place
	p.advance() // #Region
	name := p.cur.Literal
	p.expect(token.IDENT)
	place := token.Join(beg, p.cur.Place)
	p.preprocessorCheatCode(place)
	return &ast.PrepRegionInst{Name: name, Place_: place}
}

func (p *Parser) parsePrepEndRegion() *ast.PrepEndRegionInst {
	place := p.cur.Place
	p.advance()
	p.preprocessorCheatCode(place)
	return &ast.PrepEndRegionInst{Place_: place}
}

func (p *Parser) parsePrepIf() *ast.PrepIfInst {
	beg := p.cur.Place
	p.advance() // #If
	cond := p.parsePrepExpr()
	p.expect(token.THEN)
	place := token.Join(beg, p.cur.Place)
	p.preprocessorCheatCode(place)
	return &ast.PrepIfInst{Cond: cond, Place_: place}
}

func (p *Parser) parsePrepElsIf() *ast.PrepElsIfInst {
	beg := p.cur.Place
	p.advance() // #ElsIf
	cond := p.parsePrepExpr()
	p.expect(token.THEN)
	place := token.Join(beg, p.cur.Place)
	p.preprocessorCheatCode(place)
	return &ast.PrepElsIfInst{Cond: cond, Place_: place}
}

func (p *Parser) parsePrepElse() *ast.PrepElseInst {
	place := p.cur.Place
	p.advance()
	p.preprocessorCheatCode(place)
	return &ast.PrepElseInst{Place_: place}
}

func (p *Parser) parsePrepEndIf() *ast.PrepEndIfInst {
	place := p.cur.Place
	p.advance()
	p.preprocessorCheatCode(place)
	return &ast.PrepEndIfInst{Place_: place}
}
