package format

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/doc"
	"vhdlfmt/internal/token"
)

// value wraps an expression in its own group, so its breaks are decided
// independently of the surrounding statement.
func (p *printer) value(x ast.Expr) doc.Doc {
	return doc.Group{Body: doc.Indent{Levels: 1, Body: p.expr(x)}}
}

func (p *printer) expr(x ast.Expr) doc.Doc {
	switch x := x.(type) {
	case nil:
		return doc.Empty
	case *ast.TokenExpr:
		return p.token(*x)
	case *ast.UnaryExpr:
		if x.Op == token.Plus || x.Op == token.Minus {
			return doc.Concat{doc.Text(x.Text), p.expr(x.X)}
		}
		return doc.Concat{p.op(x.Op, x.Text), doc.Space, p.expr(x.X)}
	case *ast.BinaryExpr:
		sep := doc.Space
		if breaksAfter(x.Op) {
			sep = doc.Line{}
		}
		return doc.Concat{p.expr(x.X), doc.Space, p.op(x.Op, x.Text), sep, p.expr(x.Y)}
	case *ast.ParenExpr:
		return doc.Concat{doc.Text("("), p.expr(x.X), doc.Text(")")}
	case *ast.CallExpr:
		return doc.Concat{p.expr(x.Fun), p.args(x.Args)}
	case *ast.SelectedExpr:
		return doc.Concat{p.expr(x.X), doc.Text("."), p.token(x.Sel)}
	case *ast.AttributeExpr:
		return doc.Concat{p.expr(x.X), doc.Text("'"), p.token(x.Attr)}
	case *ast.QualifiedExpr:
		return doc.Concat{p.expr(x.Type), doc.Text("'"), p.expr(x.X)}
	case *ast.Aggregate:
		return p.args(x.Elems)
	}
	return doc.Empty
}

// breaksAfter: операторы, после которых допускается перенос строки.
func breaksAfter(op token.Kind) bool {
	switch op {
	case token.KwAnd, token.KwOr, token.KwXor, token.KwNand, token.KwNor, token.KwXnor, token.Amp, token.Plus, token.Minus:
		return true
	}
	return false
}

func (p *printer) token(t ast.TokenExpr) doc.Doc {
	switch {
	case t.Kind == token.Ident || t.Kind == token.ExtIdent:
		return p.name(t.Text)
	case t.Kind.IsKeyword():
		return p.kw(t.Text)
	}
	return doc.Text(t.Text)
}

func (p *printer) op(kind token.Kind, text string) doc.Doc {
	if kind.IsKeyword() {
		return p.kw(text)
	}
	return doc.Text(text)
}

// args: (a, b => c) для вызовов, индексов и агрегатов.
func (p *printer) args(items []*ast.Association) doc.Doc {
	parts := make([]doc.Doc, len(items))
	for i, a := range items {
		parts[i] = p.association(a)
	}
	return doc.Wrap("(", doc.Join(doc.Concat{doc.Text(","), doc.Line{}}, parts...), ")")
}

func (p *printer) association(a *ast.Association) doc.Doc {
	if len(a.Choices) == 0 {
		return p.expr(a.Actual)
	}
	return doc.Concat{p.choices(a.Choices), doc.Text(" => "), p.expr(a.Actual)}
}

func (p *printer) choices(choices []ast.Expr) doc.Doc {
	parts := make([]doc.Doc, len(choices))
	for i, c := range choices {
		parts[i] = p.expr(c)
	}
	return doc.Join(doc.Text(" | "), parts...)
}

func (p *printer) exprList(xs []ast.Expr) doc.Doc {
	parts := make([]doc.Doc, len(xs))
	for i, x := range xs {
		parts[i] = p.expr(x)
	}
	return doc.Join(doc.Text(", "), parts...)
}
