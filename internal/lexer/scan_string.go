package lexer

import (
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// scanString: "..." где "" внутри, экранированная кавычка.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	if lx.scanQuoted(start, diag.LexUnterminatedString, "string literal") {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanBitStringBody дочитывает "..." после префикса (длины и/или базы).
func (lx *Lexer) scanBitStringBody(start Mark) token.Token {
	if lx.scanQuoted(start, diag.LexBadBitString, "bit string literal") {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.BitStringLit, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanQuoted consumes a double-quoted body starting at the cursor.
func (lx *Lexer) scanQuoted(start Mark, code diag.Code, what string) bool {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '"':
			lx.cursor.Bump()
			if lx.cursor.Peek() == '"' {
				lx.cursor.Bump()
				continue
			}
			return true
		case '\n':
			lx.errLex(code, lx.cursor.SpanFrom(start), "newline in "+what)
			return false
		}
		lx.cursor.Bump()
	}
	lx.errLex(code, lx.cursor.SpanFrom(start), "unterminated "+what)
	return false
}

// scanChar: 'x'; isCharLiteral уже проверил закрывающую кавычку.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Skip(3)
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp)}
}
