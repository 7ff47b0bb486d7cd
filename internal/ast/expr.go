package ast

import "vhdlfmt/internal/token"

// Expr is one of the expression node types below.
type Expr interface {
	exprNode()
}

// TokenExpr is a leaf: identifier, literal or keyword (others, open, all, null).
type TokenExpr struct {
	Kind token.Kind
	Text string
}

// UnaryExpr: sign, not, abs, ?? and the unary reduction operators.
type UnaryExpr struct {
	Op   token.Kind
	Text string // operator spelling
	X    Expr
}

// BinaryExpr covers arithmetic, logical and relational operators plus the
// range directions (to, downto), "range" in index subtypes and "after" in waveforms.
type BinaryExpr struct {
	Op   token.Kind
	Text string
	X, Y Expr
}

// ParenExpr: (x)
type ParenExpr struct {
	X Expr
}

// CallExpr: name(args). Function calls, indexed names and slices share it.
type CallExpr struct {
	Fun  Expr
	Args []*Association
}

// SelectedExpr: prefix.suffix, suffix may be "all".
type SelectedExpr struct {
	X   Expr
	Sel TokenExpr
}

// AttributeExpr: prefix'attr
type AttributeExpr struct {
	X    Expr
	Attr TokenExpr
}

// QualifiedExpr: type_mark'(x) or type_mark'(aggregate)
type QualifiedExpr struct {
	Type Expr
	X    Expr
}

// Aggregate: (a, b, others => c)
type Aggregate struct {
	Elems []*Association
}

func (*TokenExpr) exprNode()     {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*ParenExpr) exprNode()     {}
func (*CallExpr) exprNode()      {}
func (*SelectedExpr) exprNode()  {}
func (*AttributeExpr) exprNode() {}
func (*QualifiedExpr) exprNode() {}
func (*Aggregate) exprNode()     {}

// Ident builds an identifier leaf.
func Ident(name string) *TokenExpr {
	return &TokenExpr{Kind: token.Ident, Text: name}
}

// Lit builds a literal leaf of the given kind.
func Lit(kind token.Kind, text string) *TokenExpr {
	return &TokenExpr{Kind: kind, Text: text}
}

// Range builds "x to y" or "x downto y".
func Range(x Expr, dir token.Kind, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: dir, Text: token.KeywordText(dir), X: x, Y: y}
}
