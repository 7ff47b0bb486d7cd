package lexer

import (
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.cursor.EatString("?/="):
		return emit(token.MatchNotEq)
	case lx.cursor.EatString("?<="):
		return emit(token.MatchLtEq)
	case lx.cursor.EatString("?>="):
		return emit(token.MatchGtEq)
	case lx.cursor.EatString("=>"):
		return emit(token.Arrow)
	case lx.cursor.EatString("**"):
		return emit(token.StarStar)
	case lx.cursor.EatString(":="):
		return emit(token.VarAssign)
	case lx.cursor.EatString("/="):
		return emit(token.NotEq)
	case lx.cursor.EatString(">="):
		return emit(token.GtEq)
	case lx.cursor.EatString("<="):
		return emit(token.LtEq)
	case lx.cursor.EatString("<>"):
		return emit(token.Box)
	case lx.cursor.EatString("??"):
		return emit(token.Cond)
	case lx.cursor.EatString("?="):
		return emit(token.MatchEq)
	case lx.cursor.EatString("?<"):
		return emit(token.MatchLt)
	case lx.cursor.EatString("?>"):
		return emit(token.MatchGt)
	case lx.cursor.EatString("<<"):
		return emit(token.DoubleLt)
	case lx.cursor.EatString(">>"):
		return emit(token.DoubleGt)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '&':
		return emit(token.Amp)
	case '\'':
		return emit(token.Tick)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '*':
		return emit(token.Star)
	case '+':
		return emit(token.Plus)
	case ',':
		return emit(token.Comma)
	case '-':
		return emit(token.Minus)
	case '.':
		return emit(token.Dot)
	case '/':
		return emit(token.Slash)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '<':
		return emit(token.Lt)
	case '=':
		return emit(token.Eq)
	case '>':
		return emit(token.Gt)
	case '|', '!':
		return emit(token.Bar)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '?':
		return emit(token.Question)
	case '@':
		return emit(token.At)
	case '^':
		return emit(token.Caret)
	}

	// неизвестный байт: съедаем всю UTF-8 последовательность разом
	for lx.cursor.Peek() >= 0x80 && lx.cursor.Peek() < 0xC0 {
		lx.cursor.Bump()
	}
	tok := emit(token.Invalid)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+quoteText(tok.Text))
	return tok
}

func quoteText(s string) string {
	return "'" + s + "'"
}
