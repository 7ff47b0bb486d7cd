package token

import (
	"vhdlfmt/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, character, string or bit string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case DecimalLit, BasedLit, CharLit, StringLit, BitStringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is a basic or extended identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == ExtIdent }

// Is reports whether the token kind is one of ks.
func (t Token) Is(ks ...Kind) bool {
	for _, k := range ks {
		if t.Kind == k {
			return true
		}
	}
	return false
}
