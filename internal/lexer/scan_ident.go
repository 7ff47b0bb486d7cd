package lexer

import (
	"strings"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// scanIdentOrKeyword сканирует basic_identifier и проверяет через LookupKeyword.
// Ключевые слова регистронезависимые. Token.Text, ровно исходный срез.
// Префикс базы перед кавычкой (X"FF", ub"01") превращает токен в bit string.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.EatWhile(isIdentContinue)
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if lx.cursor.Peek() == '"' && isBitStringBase(text) {
		return lx.scanBitStringBody(start)
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanExtendedIdent: \any graphic chars\ with \\ as an escaped backslash.
func (lx *Lexer) scanExtendedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		if b == '\\' {
			if lx.cursor.Peek() == '\\' {
				lx.cursor.Bump()
				continue
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.ExtIdent, Span: sp, Text: lx.text(sp)}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedExtIdent, sp, "unterminated extended identifier")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

func isBitStringBase(s string) bool {
	switch strings.ToLower(s) {
	case "b", "o", "x", "d", "ub", "uo", "ux", "sb", "so", "sx":
		return true
	}
	return false
}
