package lexer

import "vhdlfmt/internal/token"

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isLetter(b) || isDec(b) || b == '_'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isExtended(b byte) bool {
	return isDec(b) || isLetter(b) || b == '_'
}

// isCharLiteral решает, что значит текущий ': начало 'x' или атрибутный tick.
// После имени, закрывающей скобки или all это всегда tick (a'high, f(x)'length).
func (lx *Lexer) isCharLiteral() bool {
	switch lx.prev {
	case token.Ident, token.ExtIdent, token.RParen, token.RBracket, token.KwAll, token.StringLit:
		return false
	}
	return lx.cursor.PeekAt(2) == '\''
}
