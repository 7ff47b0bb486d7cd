package parser

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// parseDeclarativePart разбирает объявления до begin/end.
func (p *Parser) parseDeclarativePart() []ast.Declaration {
	var decls []ast.Declaration
	for !p.atAny(token.KwBegin, token.KwEnd, token.EOF) {
		start := p.pos
		if d := p.parseDecl(); d != nil {
			decls = append(decls, d)
		}
		if p.pos == start {
			p.advance()
		}
	}
	return decls
}

// atDeclStart: текущий токен начинает объявление.
func (p *Parser) atDeclStart() bool {
	return p.atAny(token.KwSignal, token.KwConstant, token.KwVariable, token.KwShared,
		token.KwFile, token.KwType, token.KwSubtype, token.KwAlias, token.KwComponent,
		token.KwAttribute, token.KwFunction, token.KwProcedure, token.KwPure, token.KwImpure,
		token.KwUse, token.KwGroup, token.KwDisconnect)
}

func (p *Parser) parseDecl() ast.Declaration {
	switch p.peek().Kind {
	case token.KwSignal, token.KwConstant, token.KwVariable, token.KwShared:
		return p.parseObjectDecl(p.rowTrivia())
	case token.KwType:
		switch p.peekN(3).Kind {
		case token.KwFile:
			return p.parseRawDecl(p.rowTrivia())
		case token.KwProtected:
			p.err(diag.SynExpectDeclaration, "protected types are not supported")
			p.skipProtected()
			return nil
		}
		return p.parseTypeDecl(p.rowTrivia())
	case token.KwSubtype:
		return p.parseSubtypeDecl(p.rowTrivia())
	case token.KwAlias:
		return p.parseAliasDecl(p.rowTrivia())
	case token.KwComponent:
		return p.parseComponentDecl(p.rowTrivia())
	case token.KwAttribute:
		if p.peekN(2).Kind == token.Colon {
			return p.parseAttributeDecl(p.rowTrivia())
		}
		return p.parseAttributeSpec(p.rowTrivia())
	case token.KwFunction, token.KwProcedure, token.KwPure, token.KwImpure:
		return p.parseSubprogram(p.rowTrivia())
	case token.KwUse:
		return p.parseUseClause()
	case token.KwFile, token.KwGroup, token.KwDisconnect, token.KwFor:
		return p.parseRawDecl(p.rowTrivia())
	}
	p.err(diag.SynExpectDeclaration, "expected a declaration, got \""+p.peek().Text+"\"")
	p.resyncTo(token.KwBegin, token.KwEnd)
	return nil
}

// signal|constant|variable|shared variable names : subtype [:= init];
func (p *Parser) parseObjectDecl(t ast.Trivia) *ast.ObjectDecl {
	d := &ast.ObjectDecl{Trivia: t}
	kw := p.advance()
	d.Keyword = kw.Text
	switch kw.Kind {
	case token.KwSignal:
		d.Class = ast.ObjSignal
	case token.KwConstant:
		d.Class = ast.ObjConstant
	case token.KwVariable:
		d.Class = ast.ObjVariable
	case token.KwShared:
		d.Class = ast.ObjSharedVariable
		if v, ok := p.expect(token.KwVariable, diag.SynExpectKeyword, "expected 'variable' after 'shared'"); ok {
			d.Keyword += " " + v.Text
		}
	}
	d.Names, _ = p.identList()
	p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after object names")
	d.Subtype = p.parseSubtype()
	if _, ok := p.accept(token.VarAssign); ok {
		d.Default = p.parseExpr()
	}
	p.expectSemi()
	d.Inline = p.inline()
	return d
}

func (p *Parser) parseTypeDecl(t ast.Trivia) *ast.TypeDecl {
	d := &ast.TypeDecl{Trivia: t}
	p.advance() // type
	d.Name, _ = p.ident()
	if _, ok := p.accept(token.KwIs); ok {
		d.Def = p.parseTypeDef()
	}
	p.expectSemi()
	d.Inline = p.inline()
	return d
}

func (p *Parser) parseTypeDef() ast.TypeDef {
	switch p.peek().Kind {
	case token.LParen:
		def := &ast.EnumTypeDef{}
		p.advance()
		for {
			if p.at(token.CharLit) {
				tok := p.advance()
				def.Literals = append(def.Literals, ast.Lit(tok.Kind, tok.Text))
			} else {
				name, ok := p.ident()
				if !ok {
					break
				}
				def.Literals = append(def.Literals, ast.Ident(name))
			}
			if _, more := p.accept(token.Comma); !more {
				break
			}
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close enumeration")
		return def

	case token.KwRange:
		p.advance()
		def := &ast.RangeTypeDef{Range: p.parseRangeOrExpr()}
		if _, ok := p.accept(token.KwUnits); ok {
			for !p.atAny(token.KwEnd, token.EOF) {
				start := p.pos
				u := &ast.PhysicalUnit{Trivia: p.rowTrivia()}
				u.Name, _ = p.ident()
				if _, ok := p.accept(token.Eq); ok {
					u.Value = p.parseExpr()
				}
				p.expectSemi()
				u.Inline = p.inline()
				def.Units = append(def.Units, u)
				if p.pos == start {
					p.advance()
				}
			}
			p.expectKeyword(token.KwEnd)
			p.expectKeyword(token.KwUnits)
			p.optLabel()
		}
		return def

	case token.KwArray:
		p.advance()
		def := &ast.ArrayTypeDef{}
		p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'array'")
		for {
			def.Indexes = append(def.Indexes, p.parseRangeOrExpr())
			if _, more := p.accept(token.Comma); !more {
				break
			}
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close index list")
		p.expectKeyword(token.KwOf)
		def.Element = p.parseSubtype()
		return def

	case token.KwRecord:
		p.advance()
		def := &ast.RecordTypeDef{}
		for !p.atAny(token.KwEnd, token.EOF) {
			start := p.pos
			f := &ast.RecordField{Trivia: p.rowTrivia()}
			f.Names, _ = p.identList()
			p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after field names")
			f.Subtype = p.parseSubtype()
			p.expectSemi()
			f.Inline = p.inline()
			def.Fields = append(def.Fields, f)
			if p.pos == start {
				p.advance()
			}
		}
		def.Tail = p.tail()
		p.expectKeyword(token.KwEnd)
		p.expectKeyword(token.KwRecord)
		def.EndLabel = p.optLabel()
		return def

	case token.KwAccess:
		p.advance()
		return &ast.AccessTypeDef{Subtype: p.parseSubtype()}
	}
	p.err(diag.SynUnexpectedToken, "expected a type definition, got \""+p.peek().Text+"\"")
	return nil
}

// skipProtected проматывает protected type ... end protected [name];
func (p *Parser) skipProtected() {
	for !p.at(token.EOF) {
		if p.at(token.KwEnd) && p.peekN(1).Kind == token.KwProtected {
			p.resyncTo()
			return
		}
		p.advance()
	}
}

// subtype name is indication;
func (p *Parser) parseSubtypeDecl(t ast.Trivia) *ast.SubtypeDecl {
	d := &ast.SubtypeDecl{Trivia: t}
	p.advance() // subtype
	d.Name, _ = p.ident()
	p.expectKeyword(token.KwIs)
	d.Subtype = p.parseSubtype()
	p.expectSemi()
	d.Inline = p.inline()
	return d
}

// alias name [: subtype] is target;
func (p *Parser) parseAliasDecl(t ast.Trivia) *ast.AliasDecl {
	d := &ast.AliasDecl{Trivia: t}
	p.advance() // alias
	d.Name, _ = p.ident()
	if _, ok := p.accept(token.Colon); ok {
		st := p.parseSubtype()
		d.Subtype = &st
	}
	p.expectKeyword(token.KwIs)
	d.Target = p.parseName()
	p.expectSemi()
	d.Inline = p.inline()
	return d
}

// component name [is] [generic (...);] [port (...);] end component [name];
func (p *Parser) parseComponentDecl(t ast.Trivia) *ast.ComponentDecl {
	d := &ast.ComponentDecl{Trivia: t}
	p.advance() // component
	d.Name, _ = p.ident()
	p.accept(token.KwIs)
	if p.at(token.KwGeneric) {
		d.Generics = p.parseGenericClause()
	}
	if p.at(token.KwPort) {
		d.Ports = p.parsePortClause()
	}
	d.Tail = p.tail()
	d.EndLabel = p.parseEnd(d.Name, token.KwComponent)
	d.Inline = p.inline()
	return d
}

// attribute name : type_mark;
func (p *Parser) parseAttributeDecl(t ast.Trivia) *ast.AttributeDecl {
	d := &ast.AttributeDecl{Trivia: t}
	p.advance() // attribute
	d.Name, _ = p.ident()
	p.advance() // :
	d.TypeMark = p.parseTypeMark()
	p.expectSemi()
	d.Inline = p.inline()
	return d
}

// attribute name of entity_list : class is value;
func (p *Parser) parseAttributeSpec(t ast.Trivia) *ast.AttributeSpec {
	d := &ast.AttributeSpec{Trivia: t}
	p.advance() // attribute
	d.Name, _ = p.ident()
	p.expectKeyword(token.KwOf)
	for {
		if p.atAny(token.KwAll, token.KwOthers) {
			tok := p.advance()
			d.Entities = append(d.Entities, &ast.TokenExpr{Kind: tok.Kind, Text: tok.Text})
		} else {
			d.Entities = append(d.Entities, p.parseSelectedName())
		}
		if _, more := p.accept(token.Comma); !more {
			break
		}
	}
	p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after entity list")
	if p.peek().IsKeyword() {
		d.Class = p.advance().Text
	} else {
		p.err(diag.SynExpectKeyword, "expected an entity class, got \""+p.peek().Text+"\"")
	}
	p.expectKeyword(token.KwIs)
	d.Value = p.parseExpr()
	p.expectSemi()
	d.Inline = p.inline()
	return d
}

// parseSubprogram разбирает объявление или тело функции/процедуры.
func (p *Parser) parseSubprogram(t ast.Trivia) ast.Declaration {
	spec := p.parseSubprogramSpec()
	if _, ok := p.accept(token.KwIs); !ok {
		p.expectSemi()
		d := &ast.SubprogramDecl{Trivia: t, Spec: spec}
		d.Inline = p.inline()
		return d
	}

	body := &ast.SubprogramBody{Trivia: t, Spec: spec}
	body.Decls = p.parseDeclarativePart()
	body.DeclTail = p.tail()
	p.expectKeyword(token.KwBegin)
	body.Stmts = p.parseSequentialStmts()
	body.Tail = p.tail()
	p.expectKeyword(token.KwEnd)
	if p.atAny(token.KwFunction, token.KwProcedure) {
		p.advance()
	}
	if p.atAny(token.Ident, token.ExtIdent, token.StringLit) {
		body.EndLabel = p.advance().Text
	}
	p.checkEndLabel(body.EndLabel, spec.Name)
	p.expectSemi()
	body.Inline = p.inline()
	return body
}

// [pure|impure] function|procedure designator [(params)] [return type_mark]
func (p *Parser) parseSubprogramSpec() ast.SubprogramSpec {
	var spec ast.SubprogramSpec
	if p.atAny(token.KwPure, token.KwImpure) {
		spec.Purity = p.advance().Text
	}
	if p.atAny(token.KwFunction, token.KwProcedure) {
		spec.Kind = p.advance().Text
	} else {
		p.err(diag.SynExpectKeyword, "expected 'function' or 'procedure'")
	}
	if p.at(token.StringLit) {
		spec.Name = p.advance().Text
	} else {
		spec.Name, _ = p.ident()
	}
	p.accept(token.KwParameter)
	if _, ok := p.accept(token.LParen); ok {
		parseRows(p, token.Semicolon, func(t ast.Trivia) *ast.Port {
			port := p.parseInterfaceDecl(t)
			spec.Params = append(spec.Params, port)
			return port
		})
		spec.Tail = p.tail()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list")
	}
	if _, ok := p.accept(token.KwReturn); ok {
		spec.Return = p.parseTypeMark()
	}
	return spec
}

// parseRawDecl сохраняет немоделируемое объявление как последовательность токенов до ';'.
func (p *Parser) parseRawDecl(t ast.Trivia) *ast.RawDecl {
	d := &ast.RawDecl{Trivia: t}
	depth := 0
	for !p.at(token.EOF) {
		if depth == 0 && p.at(token.Semicolon) {
			break
		}
		switch p.peek().Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
		tok := p.advance()
		d.Tokens = append(d.Tokens, ast.RawToken{
			Text:      tok.Text,
			IsKeyword: tok.IsKeyword(),
			IsIdent:   tok.IsIdent(),
		})
	}
	p.expectSemi()
	d.Inline = p.inline()
	return d
}
