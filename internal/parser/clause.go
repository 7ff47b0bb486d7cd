package parser

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// generic ( param {; param} );
func (p *Parser) parseGenericClause() *ast.GenericClause {
	clause := &ast.GenericClause{}
	p.advance() // generic
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'generic'")
	parseRows(p, token.Semicolon, func(t ast.Trivia) *ast.GenericParam {
		g := p.parseGenericParam(t)
		clause.Params = append(clause.Params, g)
		return g
	})
	clause.Tail = p.tail()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close generic clause")
	p.expectSemi()
	return clause
}

// port ( port {; port} );
func (p *Parser) parsePortClause() *ast.PortClause {
	clause := &ast.PortClause{}
	p.advance() // port
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'port'")
	parseRows(p, token.Semicolon, func(t ast.Trivia) *ast.Port {
		port := p.parseInterfaceDecl(t)
		clause.Ports = append(clause.Ports, port)
		return port
	})
	clause.Tail = p.tail()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close port clause")
	p.expectSemi()
	return clause
}

// parseRows разбирает список строк через sep до ')'. Комментарий после
// разделителя (или перед ')' у последней строки) становится inline комментарием строки.
func parseRows[T ast.Row](p *Parser, sep token.Kind, row func(ast.Trivia) T) {
	for !p.atAny(token.RParen, token.EOF) {
		start := p.pos
		r := row(p.rowTrivia())
		_, more := p.accept(sep)
		r.Comments().Inline = p.inline()
		if !more {
			return
		}
		if p.pos == start {
			p.advance()
		}
	}
}

// [constant] names : subtype [:= default]
func (p *Parser) parseGenericParam(t ast.Trivia) *ast.GenericParam {
	g := &ast.GenericParam{Trivia: t}
	if tok, ok := p.accept(token.KwConstant); ok {
		g.Class = tok.Text
	}
	g.Names, _ = p.identList()
	p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after generic names")
	p.accept(token.KwIn) // допустим для generic constant, не печатается
	g.Subtype = p.parseSubtype()
	if _, ok := p.accept(token.VarAssign); ok {
		g.Default = p.parseExpr()
	}
	return g
}

// [class] names : [mode] subtype [bus] [:= default]
func (p *Parser) parseInterfaceDecl(t ast.Trivia) *ast.Port {
	port := &ast.Port{Trivia: t}
	if p.atAny(token.KwSignal, token.KwVariable, token.KwConstant, token.KwFile) {
		port.Class = p.advance().Text
	}
	port.Names, _ = p.identList()
	p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after port names")
	if p.atAny(token.KwIn, token.KwOut, token.KwInout, token.KwBuffer, token.KwLinkage) {
		port.Mode = p.advance().Text
	}
	port.Subtype = p.parseSubtype()
	p.accept(token.KwBus)
	if _, ok := p.accept(token.VarAssign); ok {
		port.Default = p.parseExpr()
	}
	return port
}

// [resolution] type_mark [constraint]
func (p *Parser) parseSubtype() ast.Subtype {
	var st ast.Subtype
	mark := p.parseTypeMark()
	if p.atAny(token.Ident, token.ExtIdent) {
		st.Resolution = mark
		mark = p.parseTypeMark()
	}
	st.TypeMark = mark
	switch {
	case p.at(token.LParen):
		st.Constraint = p.parseIndexConstraint()
	case p.at(token.KwRange):
		p.advance()
		st.Constraint = &ast.RangeConstraint{Range: p.parseRangeOrExpr()}
	}
	return st
}

// type_mark: selected name, optionally with 'subtype / 'base / 'element.
func (p *Parser) parseTypeMark() ast.Expr {
	x := p.parseSelectedName()
	for p.at(token.Tick) && p.peekN(1).Kind != token.LParen {
		p.advance()
		x = &ast.AttributeExpr{X: x, Attr: p.attrName()}
	}
	return x
}

// (range {, range})
func (p *Parser) parseIndexConstraint() *ast.IndexConstraint {
	c := &ast.IndexConstraint{}
	p.advance() // (
	for {
		c.Ranges = append(c.Ranges, p.parseRangeOrExpr())
		if _, more := p.accept(token.Comma); !more {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close constraint")
	return c
}
