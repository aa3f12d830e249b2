package parser

import (
	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Kind {
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForOrForEachStmt()
	case token.TRY:
		return p.parseTryStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.BREAK:
		return p.parseBreakStmt()
	case token.CONTINUE:
		return p.parseContinueStmt()
	case token.RAISE:
		return p.parseRaiseStmt()
	case token.EXECUTE:
		return p.parseExecuteStmt()
	case token.GOTO:
		return p.parseGotoStmt()
	case token.LABEL:
		return p.parseLabelStmt()
	case token.SEMICOLON:
		p.advance() // empty statement
		return nil
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
	case token.IDENT:
		return p.parseIdentStmt()
	default:
		p.nonFatal("unexpected token %s in statement", p.cur.Kind)
		p.advance()
		return nil
	}
}

// parseBlock parses statements until one of the given terminator kinds, not
// consuming the terminator itself.
func (p *Parser) parseBlock(terminators ...token.Kind) []ast.Stmt {
	var body []ast.Stmt
	for !p.atAny(terminators...) && !p.at(token.EOF) {
		if st := p.parseStmt(); st != nil {
			body = append(body, st)
		}
		if p.hasFatal() {
			break
		}
	}
	return body
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// parseIdentStmt disambiguates an assignment (`ident ... = expr;`) from a
// bare call used as a statement (`ident(...);` or `ident.field(...);`).
func (p *Parser) parseIdentStmt() ast.Stmt {
	beg := p.cur.Place
	ident := p.parseIdentExpr()

	if p.at(token.EQL) {
		p.advance()
		right := p.parseExpr()
		p.declareAutoIfNeeded(ident)
		place := token.Join(beg, p.cur.Place)
		p.expect(token.SEMICOLON)
		return &ast.AssignStmt{Left: ident, Right: right, Place_: place}
	}

	place := token.Join(beg, p.cur.Place)
	p.expect(token.SEMICOLON)
	return &ast.CallStmt{Ident: ident, Place_: place}
}

// declareAutoIfNeeded implicitly declares a module-level or local variable
// the first time it is assigned without a prior Var declaration — the
// bare-word-assignment convention the source language allows.
func (p *Parser) declareAutoIfNeeded(ident *ast.IdentExpr) {
	if ident.Head == nil || len(ident.Tail) != 0 {
		return
	}
	if _, ok := p.curScope.LookupVar(ident.Head.Name); ok {
		return
	}
	auto := &ast.AutoDecl{Name: ident.Head.Name, Place_: ident.Place_}
	p.curScope.AppendAuto(auto)
	ident.Head.Decl = auto
	p.curScope.DeclareVar(ident.Head)
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	beg := p.cur.Place
	p.advance() // If
	cond := p.parseExpr()
	p.expect(token.THEN)
	then := p.parseBlock(token.ELSIF, token.ELSE, token.ENDIF)

	var elsifs []*ast.ElsIfStmt
	for p.at(token.ELSIF) {
		ebeg := p.cur.Place
		p.advance()
		econd := p.parseExpr()
		p.expect(token.THEN)
		ebody := p.parseBlock(token.ELSIF, token.ELSE, token.ENDIF)
		elsifs = append(elsifs, &ast.ElsIfStmt{Cond: econd, Then: ebody, Place_: token.Join(ebeg, p.cur.Place)})
	}

	var els *ast.ElseStmt
	if p.at(token.ELSE) {
		elbeg := p.cur.Place
		p.advance()
		ebody := p.parseBlock(token.ENDIF)
		els = &ast.ElseStmt{Body: ebody, Place_: token.Join(elbeg, p.cur.Place)}
	}

	end := p.cur.Place
	p.expect(token.ENDIF)
	place := token.Join(beg, end)
	p.expect(token.SEMICOLON)
	return &ast.IfStmt{Cond: cond, Then: then, ElsIfs: elsifs, Else: els, Place_: place}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	beg := p.cur.Place
	p.advance() // While
	cond := p.parseExpr()
	p.expect(token.DO)
	body := p.parseBlock(token.ENDDO)
	end := p.cur.Place
	p.expect(token.ENDDO)
	place := token.Join(beg, end)
	p.expect(token.SEMICOLON)
	return &ast.WhileStmt{Cond: cond, Body: body, Place_: place}
}

func (p *Parser) parseForOrForEachStmt() ast.Stmt {
	beg := p.cur.Place
	p.advance() // For

	if p.at(token.EACH) {
		p.advance()
		ident := p.parseIdentExpr()
		p.declareAutoIfNeeded(ident)
		p.expect(token.IN)
		in := p.parseExpr()
		p.expect(token.DO)
		body := p.parseBlock(token.ENDDO)
		end := p.cur.Place
		p.expect(token.ENDDO)
		place := token.Join(beg, end)
		p.expect(token.SEMICOLON)
		return &ast.ForEachStmt{Ident: ident, In: in, Body: body, Place_: place}
	}

	ident := p.parseIdentExpr()
	p.declareAutoIfNeeded(ident)
	p.expect(token.EQL)
	from := p.parseExpr()
	p.expect(token.TO)
	to := p.parseExpr()
	p.expect(token.DO)
	body := p.parseBlock(token.ENDDO)
	end := p.cur.Place
	p.expect(token.ENDDO)
	place := token.Join(beg, end)
	p.expect(token.SEMICOLON)
	return &ast.ForStmt{Ident: ident, From: from, To: to, Body: body, Place_: place}
}

func (p *Parser) parseTryStmt() *ast.TryStmt {
	beg := p.cur.Place
	p.advance() // Try
	try := p.parseBlock(token.EXCEPT, token.ENDTRY)

	var except *ast.ExceptStmt
	if p.at(token.EXCEPT) {
		ebeg := p.cur.Place
		p.advance()
		ebody := p.parseBlock(token.ENDTRY)
		except = &ast.ExceptStmt{Body: ebody, Place_: token.Join(ebeg, p.cur.Place)}
	}

	end := p.cur.Place
	p.expect(token.ENDTRY)
	place := token.Join(beg, end)
	p.expect(token.SEMICOLON)
	return &ast.TryStmt{Try: try, Except: except, Place_: place}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	beg := p.cur.Place
	p.advance() // Return
	var expr ast.Expr
	if p.isFuncBody() && !p.at(token.SEMICOLON) {
		expr = p.parseExpr()
	}
	place := token.Join(beg, p.cur.Place)
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Expr: expr, Place_: place}
}

func (p *Parser) parseBreakStmt() *ast.BreakStmt {
	place := p.cur.Place
	p.advance()
	p.expect(token.SEMICOLON)
	return &ast.BreakStmt{Place_: place}
}

func (p *Parser) parseContinueStmt() *ast.ContinueStmt {
	place := p.cur.Place
	p.advance()
	p.expect(token.SEMICOLON)
	return &ast.ContinueStmt{Place_: place}
}

func (p *Parser) parseRaiseStmt() *ast.RaiseStmt {
	beg := p.cur.Place
	p.advance() // Raise
	var expr ast.Expr
	if !p.at(token.SEMICOLON) {
		expr = p.parseExpr()
	}
	place := token.Join(beg, p.cur.Place)
	p.expect(token.SEMICOLON)
	return &ast.RaiseStmt{Expr: expr, Place_: place}
}

func (p *Parser) parseExecuteStmt() *ast.ExecuteStmt {
	beg := p.cur.Place
	p.advance() // Execute
	p.expect(token.LPAREN)
	expr := p.parseExpr()
	p.expect(token.RPAREN)
	place := token.Join(beg, p.cur.Place)
	p.expect(token.SEMICOLON)
	return &ast.ExecuteStmt{Expr: expr, Place_: place}
}

func (p *Parser) parseGotoStmt() *ast.GotoStmt {
	beg := p.cur.Place
	p.advance() // Goto
	label := p.cur.Literal
	p.expect(token.LABEL)
	place := token.Join(beg, p.cur.Place)
	p.expect(token.SEMICOLON)
	return &ast.GotoStmt{Label: label, Place_: place}
}

func (p *Parser) parseLabelStmt() *ast.LabelStmt {
	beg := p.cur.Place
	label := p.cur.Literal
	p.advance() // ~label
	place := token.Join(beg, p.cur.Place)
	p.expect(token.COLON)
	return &ast.LabelStmt{Label: label, Place_: place}
}
