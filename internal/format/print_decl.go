package format

import (
	"strings"

	"vhdlfmt/internal/align"
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/doc"
)

// decls выводит декларативную часть; подряд идущие объявления объектов без
// пустых строк между ними выравниваются одной таблицей.
func (p *printer) decls(b *block, decls []ast.Declaration) {
	runs := align.Runs(decls, func(i int, d ast.Declaration) bool {
		obj, ok := d.(*ast.ObjectDecl)
		if !ok || i == 0 {
			return true
		}
		_, prevObj := decls[i-1].(*ast.ObjectDecl)
		return !prevObj || hasBlank(&obj.Trivia)
	})
	for _, run := range runs {
		if _, ok := run[0].(*ast.ObjectDecl); ok {
			p.objectRun(b, run)
			continue
		}
		for _, d := range run {
			b.row(d.Comments(), p.decl(d))
		}
	}
}

// objectRun: columns [keyword, names, ":", subtype, default].
func (p *printer) objectRun(b *block, run []ast.Declaration) {
	rows := make([]doc.Row, len(run))
	for i, d := range run {
		obj := d.(*ast.ObjectDecl)
		if i == 0 {
			b.leading(&obj.Trivia)
		} else {
			rows[i].Leading = leadDocs(&obj.Trivia, false)
		}
		rows[i].Cells = []doc.Doc{
			p.kw(obj.Keyword),
			p.names(obj.Names),
			doc.Text(":"),
			p.subtype(obj.Subtype),
			p.initializer(obj.Default),
		}
		rows[i].Tail = doc.Concat{doc.Text(";"), inline(obj.Inline)}
	}
	d := p.cfg.Declarations
	b.add(align.Table(rows, doc.HardLine{}, true, d.AlignColons, d.AlignColons, true, d.AlignInitialization, false))
}

func (p *printer) decl(d ast.Declaration) doc.Doc {
	switch d := d.(type) {
	case *ast.ObjectDecl:
		return doc.Concat{
			doc.Words(p.kw(d.Keyword), p.names(d.Names), doc.Text(":"), p.subtype(d.Subtype), p.initializer(d.Default)),
			doc.Text(";"),
		}
	case *ast.TypeDecl:
		return p.typeDecl(d)
	case *ast.SubtypeDecl:
		return doc.Concat{
			doc.Words(p.kw("subtype"), p.name(d.Name), p.kw("is"), p.subtype(d.Subtype)),
			doc.Text(";"),
		}
	case *ast.AliasDecl:
		out := doc.Concat{p.kw("alias"), doc.Space, p.name(d.Name)}
		if d.Subtype != nil {
			out = append(out, doc.Text(" : "), p.subtype(*d.Subtype))
		}
		return append(out, doc.Space, p.kw("is"), doc.Space, p.expr(d.Target), doc.Text(";"))
	case *ast.ComponentDecl:
		return p.component(d)
	case *ast.AttributeDecl:
		return doc.Concat{
			doc.Words(p.kw("attribute"), p.name(d.Name), doc.Text(":"), p.expr(d.TypeMark)),
			doc.Text(";"),
		}
	case *ast.AttributeSpec:
		return doc.Concat{
			doc.Words(p.kw("attribute"), p.name(d.Name), p.kw("of"), p.exprList(d.Entities),
				doc.Text(":"), p.kw(d.Class), p.kw("is"), p.value(d.Value)),
			doc.Text(";"),
		}
	case *ast.SubprogramDecl:
		return doc.Concat{p.subprogramSpec(&d.Spec), doc.Text(";")}
	case *ast.SubprogramBody:
		return p.subprogramBody(d)
	case *ast.UseClause:
		return p.useClause(d)
	case *ast.RawDecl:
		return p.raw(d)
	}
	return doc.Empty
}

func (p *printer) typeDecl(d *ast.TypeDecl) doc.Doc {
	head := doc.Concat{p.kw("type"), doc.Space, p.name(d.Name)}
	if d.Def == nil {
		return append(head, doc.Text(";"))
	}
	head = append(head, doc.Space, p.kw("is"), doc.Space)

	switch def := d.Def.(type) {
	case *ast.EnumTypeDef:
		return append(head, p.enumLiterals(def.Literals), doc.Text(";"))
	case *ast.RangeTypeDef:
		head = append(head, p.kw("range"), doc.Space, p.expr(def.Range))
		if len(def.Units) == 0 {
			return append(head, doc.Text(";"))
		}
		var units block
		for _, u := range def.Units {
			line := doc.Concat{p.name(u.Name)}
			if u.Value != nil {
				line = append(line, doc.Text(" = "), p.expr(u.Value))
			}
			units.row(&u.Trivia, append(line, doc.Text(";")))
		}
		var inner block
		inner.add(doc.Concat{p.kw("units"), units.nest()})
		inner.add(doc.Concat{p.kw("end"), doc.Space, p.kw("units")})
		return append(head, inner.nest(), doc.Text(";"))
	case *ast.ArrayTypeDef:
		return append(head,
			p.kw("array"), doc.Space,
			doc.Text("("), p.exprList(def.Indexes), doc.Text(")"), doc.Space,
			p.kw("of"), doc.Space, p.subtype(def.Element), doc.Text(";"),
		)
	case *ast.RecordTypeDef:
		return append(head, p.record(d.Name, def))
	case *ast.AccessTypeDef:
		return append(head, p.kw("access"), doc.Space, p.subtype(def.Subtype), doc.Text(";"))
	}
	return head
}

func (p *printer) enumLiterals(lits []ast.Expr) doc.Doc {
	parts := make([]doc.Doc, len(lits))
	for i, l := range lits {
		parts[i] = p.expr(l)
	}
	return doc.Wrap("(", doc.Join(doc.Concat{doc.Text(","), doc.Line{}}, parts...), ")")
}

// record: поля выравниваются по ':'.
func (p *printer) record(name string, def *ast.RecordTypeDef) doc.Doc {
	rows := make([]doc.Row, len(def.Fields))
	for i, f := range def.Fields {
		rows[i] = doc.Row{
			Leading: leadDocs(&f.Trivia, i > 0),
			Cells:   []doc.Doc{p.names(f.Names), doc.Text(":"), p.subtype(f.Subtype)},
			Tail:    doc.Concat{doc.Text(";"), inline(f.Inline)},
		}
	}
	var fields block
	if len(rows) > 0 {
		fields.add(align.Table(rows, doc.HardLine{}, true, p.cfg.Declarations.AlignColons, true, false))
	}
	fields.comments(def.Tail)
	return doc.Concat{
		p.kw("record"), fields.nest(), doc.HardLine{},
		p.kw("end"), doc.Space, p.kw("record"), doc.Space, p.name(ast.EndName(def.EndLabel, name)), doc.Text(";"),
	}
}

func (p *printer) component(c *ast.ComponentDecl) doc.Doc {
	var body block
	if c.Generics != nil {
		body.add(p.genericClause(c.Generics))
	}
	if c.Ports != nil {
		body.add(p.portClause(c.Ports))
	}
	body.comments(c.Tail)
	return doc.Concat{
		p.kw("component"), doc.Space, p.name(c.Name), doc.Space, p.kw("is"),
		body.nest(), doc.HardLine{},
		p.end("component", c.EndLabel, c.Name),
	}
}

// subprogramSpec: [pure|impure] function name(params) return type
func (p *printer) subprogramSpec(s *ast.SubprogramSpec) doc.Doc {
	out := doc.Concat{doc.Words(p.kw(s.Purity), p.kw(s.Kind), p.name(s.Name))}
	if len(s.Params) > 0 || len(s.Tail) > 0 {
		body := doc.Concat{align.Table(p.portRows(s.Params), doc.Line{}, true, p.interfacePad()...)}
		if len(s.Tail) > 0 {
			body = append(body, doc.HardLine{}, commentLines(s.Tail))
		}
		out = append(out, doc.Wrap("(", body, ")"))
	}
	if s.Return != nil {
		out = append(out, doc.Space, p.kw("return"), doc.Space, p.expr(s.Return))
	}
	return out
}

func (p *printer) subprogramBody(s *ast.SubprogramBody) doc.Doc {
	var decls block
	p.decls(&decls, s.Decls)
	decls.comments(s.DeclTail)

	var stmts block
	p.sequential(&stmts, s.Stmts)
	stmts.comments(s.Tail)

	return doc.Concat{
		p.subprogramSpec(&s.Spec), doc.Space, p.kw("is"),
		decls.nest(),
		doc.HardLine{}, p.kw("begin"),
		stmts.nest(),
		doc.HardLine{}, p.end(s.Spec.Kind, s.EndLabel, s.Spec.Name),
	}
}

// raw печатает немоделируемое объявление токен за токеном.
func (p *printer) raw(d *ast.RawDecl) doc.Doc {
	var sb strings.Builder
	var prev ast.RawToken
	for i, tok := range d.Tokens {
		text := tok.Text
		switch {
		case tok.IsKeyword:
			text = p.tr.Keyword(text)
		case tok.IsIdent:
			text = p.tr.Name(text)
		}
		if i > 0 && rawSpace(prev, tok) {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
		prev = tok
	}
	return doc.Text(sb.String() + ";")
}

func rawSpace(prev, tok ast.RawToken) bool {
	switch tok.Text {
	case ",", ";", ")", ".", "'":
		return false
	case "(":
		return !prev.IsIdent
	}
	switch prev.Text {
	case "(", ".", "'":
		return false
	}
	return true
}
