package parser

import (
	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
)

func (p *Parser) parseExpr() ast.Expr { return p.parseOr() }

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.at(token.OR) {
		beg := left.Place()
		p.advance()
		right := p.parseAnd()
		left = &ast.BinaryExpr{Left: left, Right: right, Op: token.OR, Place_: token.Join(beg, right.Place())}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseNot()
	for p.at(token.AND) {
		beg := left.Place()
		p.advance()
		right := p.parseNot()
		left = &ast.BinaryExpr{Left: left, Right: right, Op: token.AND, Place_: token.Join(beg, right.Place())}
	}
	return left
}

func (p *Parser) parseNot() ast.Expr {
	if p.at(token.NOT) {
		beg := p.cur.Place
		p.advance()
		operand := p.parseNot()
		return &ast.NotExpr{Expr: operand, Place_: token.Join(beg, operand.Place())}
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdd()
	switch p.cur.Kind {
	case token.EQL, token.NEQ, token.LSS, token.GTR, token.LEQ, token.GEQ:
		op := p.cur.Kind
		p.advance()
		right := p.parseAdd()
		return &ast.BinaryExpr{Left: left, Right: right, Op: op, Place_: token.Join(left.Place(), right.Place())}
	}
	return left
}

func (p *Parser) parseAdd() ast.Expr {
	left := p.parseMul()
	for p.at(token.ADD) || p.at(token.SUB) {
		op := p.cur.Kind
		p.advance()
		right := p.parseMul()
		left = &ast.BinaryExpr{Left: left, Right: right, Op: op, Place_: token.Join(left.Place(), right.Place())}
	}
	return left
}

func (p *Parser) parseMul() ast.Expr {
	left := p.parseUnary()
	for p.at(token.MUL) || p.at(token.DIV) || p.at(token.MOD) {
		op := p.cur.Kind
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Left: left, Right: right, Op: op, Place_: token.Join(left.Place(), right.Place())}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.at(token.ADD) || p.at(token.SUB) {
		beg := p.cur.Place
		op := p.cur.Kind
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{Op: op, Operand: operand, Place_: token.Join(beg, operand.Place())}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Kind {
	case token.NUMBER, token.DATETIME, token.TRUE, token.FALSE, token.UNDEFINED, token.NULL:
		lit := p.cur
		p.advance()
		return &ast.BasicLitExpr{Kind: lit.Kind, Value: lit.Value, Place_: lit.Place}
	case token.STRING, token.STRING_BEG:
		return p.parseStringExpr()
	case token.LPAREN:
		beg := p.cur.Place
		p.advance()
		inner := p.parseExpr()
		end := p.cur.Place
		p.expect(token.RPAREN)
		return &ast.ParenExpr{Expr: inner, Place_: token.Join(beg, end)}
	case token.TERNARY:
		return p.parseTernaryExpr()
	case token.NEW:
		return p.parseNewExpr()
	case token.IDENT:
		return p.parseIdentExpr()
	default:
		p.nonFatal("unexpected token %s in expression", p.cur.Kind)
		place := p.cur.Place
		p.advance()
		return &ast.BasicLitExpr{Kind: token.ILLEGAL, Value: token.NoValue, Place_: place}
	}
}

// parseStringExpr consumes a run of adjacent string-literal tokens: either
// a single closed STRING, or a STRING_BEG ... STRING_MID* ... STRING_END
// chain produced by '|'-prefixed continuation lines, or two back-to-back
// closed string literals with nothing but whitespace between them.
func (p *Parser) parseStringExpr() ast.Expr {
	beg := p.cur.Place
	var frags []*ast.BasicLitExpr

loop:
	for {
		frags = append(frags, &ast.BasicLitExpr{Kind: p.cur.Kind, Value: p.cur.Value, Place_: p.cur.Place})
		switch p.cur.Kind {
		case token.STRING_BEG, token.STRING_MID:
			p.advance()
			continue loop
		case token.STRING, token.STRING_END:
			if p.peek.Kind == token.STRING || p.peek.Kind == token.STRING_BEG {
				p.advance()
				continue loop
			}
			p.advance()
			break loop
		default:
			break loop
		}
	}

	if len(frags) == 1 {
		return frags[0]
	}
	return &ast.StringExpr{List: frags, Place_: token.Join(beg, frags[len(frags)-1].Place_)}
}

func (p *Parser) parseTernaryExpr() ast.Expr {
	beg := p.cur.Place
	p.advance() // ?
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.COMMA)
	then := p.parseExpr()
	p.expect(token.COMMA)
	els := p.parseExpr()
	end := p.cur.Place
	p.expect(token.RPAREN)
	tail := p.parseTailChain()
	return &ast.TernaryExpr{Cond: cond, Then: then, Else: els, Tail: tail, Place_: token.Join(beg, end)}
}

func (p *Parser) parseNewExpr() ast.Expr {
	beg := p.cur.Place
	p.advance() // New
	name := ""
	if p.at(token.IDENT) {
		name = p.cur.Literal
		p.advance()
	}
	var args []ast.Expr
	if p.at(token.LPAREN) {
		args = p.parseArgList()
	}
	return &ast.NewExpr{Name: name, Args: args, Place_: token.Join(beg, p.cur.Place)}
}

// parseIdentExpr parses a bare identifier, resolving it against the current
// scope immediately: a name directly followed by '(' resolves against the
// methods namespace (creating a forward-call placeholder on a miss), every
// other bare name resolves against the vars namespace.
func (p *Parser) parseIdentExpr() *ast.IdentExpr {
	beg := p.cur.Place
	name := p.cur.Literal
	p.expect(token.IDENT)

	isCall := p.at(token.LPAREN)
	var head *ast.Item
	if isCall {
		if it, ok := p.curScope.LookupMethod(name); ok {
			head = it
		} else if it, ok := p.unknown[token.Fold(name)]; ok {
			head = it
		} else {
			head = &ast.Item{Name: name}
			p.unknown[token.Fold(name)] = head
		}
	} else {
		if it, ok := p.curScope.LookupVar(name); ok {
			head = it
		} else {
			p.nonFatal("undeclared identifier: %s", name)
			head = &ast.Item{Name: name}
		}
	}

	var args []ast.Expr
	if isCall {
		args = p.parseArgList()
	}
	tail := p.parseTailChain()

	return &ast.IdentExpr{Head: head, IsCall: isCall, Args: args, Tail: tail, Place_: token.Join(beg, p.cur.Place)}
}

func (p *Parser) parseArgList() []ast.Expr {
	p.expect(token.LPAREN)
	var args []ast.Expr
	if p.at(token.RPAREN) {
		p.advance()
		return args
	}
	for {
		if p.at(token.COMMA) || p.at(token.RPAREN) {
			args = append(args, nil)
		} else {
			args = append(args, p.parseExpr())
		}
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parseTailChain() []ast.TailExpr {
	var tail []ast.TailExpr
	for {
		switch p.cur.Kind {
		case token.PERIOD:
			beg := p.cur.Place
			p.advance()
			fieldName := p.cur.Literal
			p.expect(token.IDENT)
			isCall := p.at(token.LPAREN)
			var args []ast.Expr
			if isCall {
				args = p.parseArgList()
			}
			tail = append(tail, &ast.FieldExpr{Name: fieldName, Args: args, IsCall: isCall, Place_: token.Join(beg, p.cur.Place)})
		case token.LBRACK:
			beg := p.cur.Place
			p.advance()
			idx := p.parseExpr()
			end := p.cur.Place
			p.expect(token.RBRACK)
			tail = append(tail, &ast.IndexExpr{Expr: idx, Place_: token.Join(beg, end)})
		default:
			return tail
		}
	}
}
