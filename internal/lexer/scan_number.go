package lexer

import (
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// scanNumber разбирает:
//   - decimal: 12, 1_000, 3.14, 1.0e-3, 2E6
//   - based:   16#FF#, 2#1010_0101#, 16#F.F#E+2
//   - bit string с длиной: 8X"FF", 12UB"0101"
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.eatDigits(isDec)

	kind := token.DecimalLit
	switch {
	case lx.cursor.Peek() == '#':
		kind = token.BasedLit
		lx.cursor.Bump()
		lx.eatDigits(isBasedDigit)
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			lx.eatDigits(isBasedDigit)
		}
		if !lx.cursor.Eat('#') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "based literal is missing closing '#'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
	case lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)):
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	case isLetter(lx.cursor.Peek()):
		if tok, ok := lx.tryLengthBitString(start); ok {
			return tok
		}
	}

	lx.scanExponent()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) eatDigits(ok func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if !ok(b) && b != '_' {
			return
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanExponent() {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return
	}
	next := lx.cursor.PeekAt(1)
	switch {
	case isDec(next):
		lx.cursor.Bump()
	case (next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2)):
		lx.cursor.Bump()
		lx.cursor.Bump()
	default:
		return
	}
	lx.eatDigits(isDec)
}

// tryLengthBitString пробует 8X"..": буквы базы сразу за длиной и затем кавычка.
func (lx *Lexer) tryLengthBitString(start Mark) (token.Token, bool) {
	mark := lx.cursor.Mark()
	baseStart := lx.cursor.Off
	for isLetter(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	base := string(lx.cursor.File.Content[baseStart:lx.cursor.Off])
	if lx.cursor.Peek() != '"' || !isBitStringBase(base) {
		lx.cursor.Reset(mark)
		return token.Token{}, false
	}
	return lx.scanBitStringBody(start), true
}

func isBasedDigit(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
