package parser

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/token"
)

func (p *Parser) parseLibraryClause() *ast.LibraryClause {
	lib := &ast.LibraryClause{Trivia: p.rowTrivia()}
	p.advance() // library
	lib.Names, _ = p.identList()
	p.expectSemi()
	lib.Inline = p.inline()
	return lib
}

func (p *Parser) parseUseClause() *ast.UseClause {
	use := &ast.UseClause{Trivia: p.rowTrivia()}
	p.advance() // use
	for {
		use.Names = append(use.Names, p.parseSelectedName())
		if _, more := p.accept(token.Comma); !more {
			break
		}
	}
	p.expectSemi()
	use.Inline = p.inline()
	return use
}

// entity name is [generic (...);] [port (...);] decls [begin stmts] end [entity] [name];
func (p *Parser) parseEntity(context []ast.ContextItem) *ast.Entity {
	ent := &ast.Entity{Trivia: p.rowTrivia(), Context: context}
	p.advance() // entity
	ent.Name, _ = p.ident()
	p.expectKeyword(token.KwIs)

	if p.at(token.KwGeneric) {
		ent.Generics = p.parseGenericClause()
	}
	if p.at(token.KwPort) {
		ent.Ports = p.parsePortClause()
	}
	ent.Decls = p.parseDeclarativePart()
	if _, ok := p.accept(token.KwBegin); ok {
		ent.HasBegin = true
		ent.Stmts = p.parseConcurrentStmts()
	}
	ent.Tail = p.tail()
	ent.EndLabel = p.parseEnd(ent.Name, token.KwEntity)
	ent.Inline = p.inline()
	return ent
}

// architecture name of entity is decls begin stmts end [architecture] [name];
func (p *Parser) parseArchitecture(context []ast.ContextItem) *ast.Architecture {
	arch := &ast.Architecture{Trivia: p.rowTrivia(), Context: context}
	p.advance() // architecture
	arch.Name, _ = p.ident()
	p.expectKeyword(token.KwOf)
	arch.EntityName, _ = p.ident()
	p.expectKeyword(token.KwIs)

	arch.Decls = p.parseDeclarativePart()
	arch.DeclTail = p.tail()
	p.expectKeyword(token.KwBegin)
	arch.Stmts = p.parseConcurrentStmts()
	arch.Tail = p.tail()
	arch.EndLabel = p.parseEnd(arch.Name, token.KwArchitecture)
	arch.Inline = p.inline()
	return arch
}

// package name is [generic (...);] decls end [package] [name];
func (p *Parser) parsePackage(context []ast.ContextItem) *ast.Package {
	pkg := &ast.Package{Trivia: p.rowTrivia(), Context: context}
	p.advance() // package
	pkg.Name, _ = p.ident()
	p.expectKeyword(token.KwIs)

	if p.at(token.KwGeneric) {
		pkg.Generics = p.parseGenericClause()
	}
	pkg.Decls = p.parseDeclarativePart()
	pkg.Tail = p.tail()
	pkg.EndLabel = p.parseEnd(pkg.Name, token.KwPackage)
	pkg.Inline = p.inline()
	return pkg
}

// package body name is decls end [package body] [name];
func (p *Parser) parsePackageBody(context []ast.ContextItem) *ast.PackageBody {
	body := &ast.PackageBody{Trivia: p.rowTrivia(), Context: context}
	p.advance() // package
	p.advance() // body
	body.Name, _ = p.ident()
	p.expectKeyword(token.KwIs)

	body.Decls = p.parseDeclarativePart()
	body.Tail = p.tail()
	body.EndLabel = p.parseEnd(body.Name, token.KwPackage, token.KwBody)
	body.Inline = p.inline()
	return body
}

// parseEnd: end [kinds...] [label];, kinds необязательны, но если первый есть,
// остальные обязательны (end package body).
func (p *Parser) parseEnd(name string, kinds ...token.Kind) string {
	p.expectKeyword(token.KwEnd)
	if len(kinds) > 0 && p.at(kinds[0]) {
		p.advance()
		for _, k := range kinds[1:] {
			p.expectKeyword(k)
		}
	}
	label := p.optLabel()
	p.checkEndLabel(label, name)
	p.expectSemi()
	return label
}
