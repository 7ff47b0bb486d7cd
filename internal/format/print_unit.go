package format

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/doc"
)

// unit: context items, leading trivia, then the unit itself.
func (p *printer) unit(u ast.DesignUnit) doc.Doc {
	var b block
	for _, item := range ast.UnitContext(u) {
		b.row(item.Comments(), p.contextItem(item))
	}
	b.row(u.Comments(), p.unitBody(u))
	return b.doc()
}

func (p *printer) contextItem(item ast.ContextItem) doc.Doc {
	switch item := item.(type) {
	case *ast.LibraryClause:
		names := make([]doc.Doc, len(item.Names))
		for i, n := range item.Names {
			names[i] = p.name(n)
		}
		return doc.Concat{p.kw("library"), doc.Space, doc.Join(doc.Text(", "), names...), doc.Text(";")}
	case *ast.UseClause:
		return p.useClause(item)
	}
	return doc.Empty
}

func (p *printer) useClause(u *ast.UseClause) doc.Doc {
	names := make([]doc.Doc, len(u.Names))
	for i, n := range u.Names {
		names[i] = p.expr(n)
	}
	return doc.Concat{p.kw("use"), doc.Space, doc.Join(doc.Text(", "), names...), doc.Text(";")}
}

func (p *printer) unitBody(u ast.DesignUnit) doc.Doc {
	switch u := u.(type) {
	case *ast.Entity:
		return p.entity(u)
	case *ast.Architecture:
		return p.architecture(u)
	case *ast.Package:
		return p.pkg(u)
	case *ast.PackageBody:
		return p.pkgBody(u)
	}
	return doc.Empty
}

// entity name is
//   generic (...);
//   port (...);
//   decls
// [begin
//   stmts]
// end entity name;
func (p *printer) entity(e *ast.Entity) doc.Doc {
	out := doc.Concat{p.kw("entity"), doc.Space, p.name(e.Name), doc.Space, p.kw("is")}

	var decls block
	if e.Generics != nil {
		decls.add(p.genericClause(e.Generics))
	}
	if e.Ports != nil {
		decls.add(p.portClause(e.Ports))
	}
	p.decls(&decls, e.Decls)

	if e.HasBegin {
		var stmts block
		p.concurrent(&stmts, e.Stmts)
		stmts.comments(e.Tail)
		out = append(out, decls.nest(), doc.HardLine{}, p.kw("begin"), stmts.nest())
	} else {
		decls.comments(e.Tail)
		out = append(out, decls.nest())
	}
	return append(out, doc.HardLine{}, p.end("entity", e.EndLabel, e.Name))
}

func (p *printer) architecture(a *ast.Architecture) doc.Doc {
	out := doc.Concat{
		p.kw("architecture"), doc.Space, p.name(a.Name), doc.Space,
		p.kw("of"), doc.Space, p.name(a.EntityName), doc.Space, p.kw("is"),
	}
	var decls block
	p.decls(&decls, a.Decls)
	decls.comments(a.DeclTail)

	var stmts block
	p.concurrent(&stmts, a.Stmts)
	stmts.comments(a.Tail)

	return append(out,
		decls.nest(),
		doc.HardLine{}, p.kw("begin"),
		stmts.nest(),
		doc.HardLine{}, p.end("architecture", a.EndLabel, a.Name),
	)
}

func (p *printer) pkg(pk *ast.Package) doc.Doc {
	out := doc.Concat{p.kw("package"), doc.Space, p.name(pk.Name), doc.Space, p.kw("is")}
	var decls block
	if pk.Generics != nil {
		decls.add(p.genericClause(pk.Generics))
	}
	p.decls(&decls, pk.Decls)
	decls.comments(pk.Tail)
	return append(out, decls.nest(), doc.HardLine{}, p.end("package", pk.EndLabel, pk.Name))
}

func (p *printer) pkgBody(pb *ast.PackageBody) doc.Doc {
	out := doc.Concat{p.kw("package body"), doc.Space, p.name(pb.Name), doc.Space, p.kw("is")}
	var decls block
	p.decls(&decls, pb.Decls)
	decls.comments(pb.Tail)
	return append(out, decls.nest(), doc.HardLine{}, p.end("package body", pb.EndLabel, pb.Name))
}

// end: "end <kind> <label or name>;"
func (p *printer) end(kind, label, name string) doc.Doc {
	return doc.Concat{
		p.kw("end"), doc.Space, p.kw(kind), doc.Space,
		p.name(ast.EndName(label, name)), doc.Text(";"),
	}
}

func (p *printer) kw(s string) doc.Doc {
	return doc.Text(p.tr.Keyword(s))
}

func (p *printer) name(s string) doc.Doc {
	return doc.Text(p.tr.Name(s))
}
