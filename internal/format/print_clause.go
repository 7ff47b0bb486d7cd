package format

import (
	"vhdlfmt/internal/align"
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/doc"
)

func (p *printer) genericClause(c *ast.GenericClause) doc.Doc {
	rows := make([]doc.Row, len(c.Params))
	for i, g := range c.Params {
		rows[i] = doc.Row{
			Leading: leadDocs(&g.Trivia, i > 0),
			Cells:   p.interfaceCells(g.Class, g.Names, "", g.Subtype, g.Default),
			Tail:    rowTail(&g.Trivia, i < len(c.Params)-1, ";"),
		}
	}
	return p.clause("generic", rows, c.Tail)
}

func (p *printer) portClause(c *ast.PortClause) doc.Doc {
	return p.clause("port", p.portRows(c.Ports), c.Tail)
}

func (p *printer) portRows(ports []*ast.Port) []doc.Row {
	rows := make([]doc.Row, len(ports))
	for i, port := range ports {
		rows[i] = doc.Row{
			Leading: leadDocs(&port.Trivia, i > 0),
			Cells:   p.interfaceCells(port.Class, port.Names, port.Mode, port.Subtype, port.Default),
			Tail:    rowTail(&port.Trivia, i < len(ports)-1, ";"),
		}
	}
	return rows
}

// clause: "generic (" rows ");", flat на одной строке или по строке на элемент.
func (p *printer) clause(keyword string, rows []doc.Row, tail []ast.Comment) doc.Doc {
	body := doc.Concat{align.Table(rows, doc.Line{}, true, p.interfacePad()...)}
	if len(tail) > 0 {
		body = append(body, doc.HardLine{}, commentLines(tail))
	}
	return doc.Bracket(p.tr.Keyword(keyword)+" (", body, ");")
}

// interfacePad: columns [names, ":", mode, subtype, default].
func (p *printer) interfacePad() []bool {
	d := p.cfg.Declarations
	return []bool{d.AlignColons, true, d.AlignTypes, d.AlignInitialization, false}
}

func (p *printer) interfaceCells(class string, names []string, mode string, st ast.Subtype, def ast.Expr) []doc.Doc {
	return []doc.Doc{
		doc.Words(p.kw(class), p.names(names)),
		doc.Text(":"),
		p.kw(mode),
		p.subtype(st),
		p.initializer(def),
	}
}

// initializer: ":= value" или пусто.
func (p *printer) initializer(x ast.Expr) doc.Doc {
	if x == nil {
		return doc.Empty
	}
	return doc.Concat{doc.Text(":= "), p.value(x)}
}

func (p *printer) names(names []string) doc.Doc {
	parts := make([]doc.Doc, len(names))
	for i, n := range names {
		parts[i] = p.name(n)
	}
	return doc.Join(doc.Text(", "), parts...)
}

// rowTail: разделитель строки (если не последняя) и inline комментарий.
func rowTail(t *ast.Trivia, sep bool, text string) doc.Doc {
	out := doc.Concat{}
	if sep {
		out = append(out, doc.Text(text))
	}
	return append(out, inline(t.Inline))
}

// subtype: [resolution] type_mark[constraint]
func (p *printer) subtype(st ast.Subtype) doc.Doc {
	out := doc.Concat{}
	if st.Resolution != nil {
		out = append(out, p.expr(st.Resolution), doc.Space)
	}
	out = append(out, p.expr(st.TypeMark))
	switch c := st.Constraint.(type) {
	case *ast.IndexConstraint:
		ranges := make([]doc.Doc, len(c.Ranges))
		for i, r := range c.Ranges {
			ranges[i] = p.expr(r)
		}
		out = append(out, doc.Text("("), doc.Join(doc.Text(", "), ranges...), doc.Text(")"))
	case *ast.RangeConstraint:
		out = append(out, doc.Space, p.kw("range"), doc.Space, p.expr(c.Range))
	}
	return out
}
