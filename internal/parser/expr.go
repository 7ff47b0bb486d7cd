package parser

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// Приоритеты (от слабого к сильному):
//   logical:     and or xor nand nor xnor
//   relational:  = /= < <= > >= ?= ?/= ?< ?<= ?> ?>=
//   shift:       sll srl sla sra rol ror
//   adding:      + - &          (с необязательным знаком в начале)
//   multiplying: * / mod rem
//   factor:      ** abs not ?? и унарная редукция

func (p *Parser) parseExpr() ast.Expr {
	x := p.parseRelation()
	for p.atAny(token.KwAnd, token.KwOr, token.KwXor, token.KwNand, token.KwNor, token.KwXnor) {
		op := p.advance()
		x = &ast.BinaryExpr{Op: op.Kind, Text: op.Text, X: x, Y: p.parseRelation()}
	}
	return x
}

func (p *Parser) parseRelation() ast.Expr {
	x := p.parseShift()
	if p.atAny(token.Eq, token.NotEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.MatchEq, token.MatchNotEq, token.MatchLt, token.MatchLtEq, token.MatchGt, token.MatchGtEq) {
		op := p.advance()
		x = &ast.BinaryExpr{Op: op.Kind, Text: op.Text, X: x, Y: p.parseShift()}
	}
	return x
}

func (p *Parser) parseShift() ast.Expr {
	x := p.parseAdding()
	if p.atAny(token.KwSll, token.KwSrl, token.KwSla, token.KwSra, token.KwRol, token.KwRor) {
		op := p.advance()
		x = &ast.BinaryExpr{Op: op.Kind, Text: op.Text, X: x, Y: p.parseAdding()}
	}
	return x
}

func (p *Parser) parseAdding() ast.Expr {
	var x ast.Expr
	if p.atAny(token.Plus, token.Minus) {
		op := p.advance()
		x = &ast.UnaryExpr{Op: op.Kind, Text: op.Text, X: p.parseTerm()}
	} else {
		x = p.parseTerm()
	}
	for p.atAny(token.Plus, token.Minus, token.Amp) {
		op := p.advance()
		x = &ast.BinaryExpr{Op: op.Kind, Text: op.Text, X: x, Y: p.parseTerm()}
	}
	return x
}

func (p *Parser) parseTerm() ast.Expr {
	x := p.parseFactor()
	for p.atAny(token.Star, token.Slash, token.KwMod, token.KwRem) {
		op := p.advance()
		x = &ast.BinaryExpr{Op: op.Kind, Text: op.Text, X: x, Y: p.parseFactor()}
	}
	return x
}

func (p *Parser) parseFactor() ast.Expr {
	if p.atAny(token.KwAbs, token.KwNot, token.Cond,
		token.KwAnd, token.KwOr, token.KwXor, token.KwNand, token.KwNor, token.KwXnor) {
		op := p.advance()
		return &ast.UnaryExpr{Op: op.Kind, Text: op.Text, X: p.parsePrimary()}
	}
	x := p.parsePrimary()
	if op, ok := p.accept(token.StarStar); ok {
		x = &ast.BinaryExpr{Op: op.Kind, Text: op.Text, X: x, Y: p.parsePrimary()}
	}
	return x
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident, token.ExtIdent, token.StringLit:
		p.advance()
		return p.parseSuffixes(&ast.TokenExpr{Kind: tok.Kind, Text: tok.Text})
	case token.DecimalLit, token.BasedLit:
		lit := p.advance()
		// физический литерал: 10 ns
		if p.at(token.Ident) {
			unit := p.advance()
			return &ast.TokenExpr{Kind: lit.Kind, Text: lit.Text + " " + unit.Text}
		}
		return &ast.TokenExpr{Kind: lit.Kind, Text: lit.Text}
	case token.CharLit, token.BitStringLit:
		lit := p.advance()
		return &ast.TokenExpr{Kind: lit.Kind, Text: lit.Text}
	case token.LParen:
		return p.parseParenOrAggregate()
	case token.KwOthers, token.KwOpen, token.KwNull, token.KwAll, token.KwUnaffected:
		kw := p.advance()
		return &ast.TokenExpr{Kind: kw.Kind, Text: kw.Text}
	case token.KwNew:
		kw := p.advance()
		return &ast.UnaryExpr{Op: kw.Kind, Text: kw.Text, X: p.parsePrimary()}
	}
	p.err(diag.SynExpectExpression, "expected expression, got \""+tok.Text+"\"")
	return &ast.TokenExpr{Kind: token.Invalid}
}

// parseSuffixes: .sel, (args), 'attr, '(qualified)
func (p *Parser) parseSuffixes(x ast.Expr) ast.Expr {
	for {
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			sel := p.peek()
			if !sel.Is(token.Ident, token.ExtIdent, token.KwAll, token.CharLit, token.StringLit) {
				p.err(diag.SynExpectIdentifier, "expected suffix after '.', got \""+sel.Text+"\"")
				return x
			}
			p.advance()
			x = &ast.SelectedExpr{X: x, Sel: ast.TokenExpr{Kind: sel.Kind, Text: sel.Text}}
		case token.LParen:
			x = &ast.CallExpr{Fun: x, Args: p.parseArgs()}
		case token.Tick:
			if p.peekN(1).Kind == token.LParen {
				p.advance()
				x = &ast.QualifiedExpr{Type: x, X: p.parseParenOrAggregate()}
				continue
			}
			p.advance()
			x = &ast.AttributeExpr{X: x, Attr: p.attrName()}
		default:
			return x
		}
	}
}

// attrName: имя атрибута: идентификатор или ключевое слово (range, subtype).
func (p *Parser) attrName() ast.TokenExpr {
	tok := p.peek()
	if tok.IsIdent() || tok.IsKeyword() {
		p.advance()
		return ast.TokenExpr{Kind: tok.Kind, Text: tok.Text}
	}
	p.err(diag.SynExpectIdentifier, "expected attribute name, got \""+tok.Text+"\"")
	return ast.TokenExpr{Kind: token.Invalid}
}

// parseArgs: ( assoc {, assoc} )
func (p *Parser) parseArgs() []*ast.Association {
	var args []*ast.Association
	p.advance() // (
	for !p.atAny(token.RParen, token.EOF) {
		args = append(args, p.parseAssociation())
		if _, more := p.accept(token.Comma); !more {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	return args
}

// parseParenOrAggregate: одиночный позиционный элемент, это скобки, иначе агрегат.
func (p *Parser) parseParenOrAggregate() ast.Expr {
	elems := p.parseArgs()
	if len(elems) == 1 && len(elems[0].Choices) == 0 {
		return &ast.ParenExpr{X: elems[0].Actual}
	}
	return &ast.Aggregate{Elems: elems}
}

// parseAssociation: [choice {| choice} =>] actual
func (p *Parser) parseAssociation() *ast.Association {
	a := &ast.Association{}
	x := p.parseRangeOrExpr()
	if !p.atAny(token.Bar, token.Arrow) {
		a.Actual = x
		return a
	}
	a.Choices = []ast.Expr{x}
	for {
		if _, more := p.accept(token.Bar); !more {
			break
		}
		a.Choices = append(a.Choices, p.parseRangeOrExpr())
	}
	p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '=>'")
	a.Actual = p.parseRangeOrExpr()
	return a
}

// parseChoices: choice {| choice}
func (p *Parser) parseChoices() []ast.Expr {
	choices := []ast.Expr{p.parseRangeOrExpr()}
	for {
		if _, more := p.accept(token.Bar); !more {
			return choices
		}
		choices = append(choices, p.parseRangeOrExpr())
	}
}

// parseRangeOrExpr: x [to|downto y] | x range <> | x range r
func (p *Parser) parseRangeOrExpr() ast.Expr {
	x := p.parseExpr()
	switch {
	case p.atAny(token.KwTo, token.KwDownto):
		dir := p.advance()
		return &ast.BinaryExpr{Op: dir.Kind, Text: dir.Text, X: x, Y: p.parseExpr()}
	case p.at(token.KwRange):
		kw := p.advance()
		if box, ok := p.accept(token.Box); ok {
			return &ast.BinaryExpr{Op: kw.Kind, Text: kw.Text, X: x, Y: &ast.TokenExpr{Kind: box.Kind, Text: box.Text}}
		}
		return &ast.BinaryExpr{Op: kw.Kind, Text: kw.Text, X: x, Y: p.parseRangeOrExpr()}
	}
	return x
}

// parseSelectedName: a.b.c, a.all
func (p *Parser) parseSelectedName() ast.Expr {
	name, _ := p.ident()
	var x ast.Expr = ast.Ident(name)
	for p.at(token.Dot) {
		p.advance()
		sel := p.peek()
		if !sel.Is(token.Ident, token.ExtIdent, token.KwAll) {
			p.err(diag.SynExpectIdentifier, "expected name after '.', got \""+sel.Text+"\"")
			return x
		}
		p.advance()
		x = &ast.SelectedExpr{X: x, Sel: ast.TokenExpr{Kind: sel.Kind, Text: sel.Text}}
	}
	return x
}

// parseName разбирает цель присваивания или вызов процедуры, не трогая '<='.
func (p *Parser) parseName() ast.Expr {
	switch {
	case p.at(token.LParen):
		return p.parseParenOrAggregate()
	case p.atAny(token.Ident, token.ExtIdent, token.StringLit):
		tok := p.advance()
		return p.parseSuffixes(&ast.TokenExpr{Kind: tok.Kind, Text: tok.Text})
	}
	p.err(diag.SynExpectIdentifier, "expected name, got \""+p.peek().Text+"\"")
	return &ast.TokenExpr{Kind: token.Invalid}
}
