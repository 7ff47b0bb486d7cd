package lexer

import (
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\f', одиночный '\r' коалесцируются в один TriviaSpace
//   - последовательные '\n' коалесцируются в один TriviaNewline
//   - --... до \n -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (без вложенности, как в VHDL-2008)
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case isBlank(b):
			for isBlank(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)

		case b == '-' && lx.cursor.PeekAt(1) == '-':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaLineComment, start)

		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.cursor.Skip(2)
			closed := false
			for !lx.cursor.EOF() {
				if lx.cursor.EatString("*/") {
					closed = true
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			if !closed {
				lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
			}
			lx.pushTrivia(token.TriviaBlockComment, start)

		default:
			return
		}
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f' || b == '\r' || b == '\v'
}
