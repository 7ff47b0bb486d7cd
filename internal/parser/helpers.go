package parser

import (
	"slices"
	"strings"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

func (p *Parser) peek() *token.Token {
	return &p.toks[p.pos]
}

// peekN смотрит на n токенов вперёд, упираясь в EOF.
func (p *Parser) peekN(n int) *token.Token {
	i := min(p.pos+n, len(p.toks)-1)
	return &p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// atLineStart: текущий токен первый в своей строке.
func (p *Parser) atLineStart() bool {
	if p.pos == 0 {
		return true
	}
	for _, tr := range p.peek().Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}

// advance: съедает текущий токен; его комментарии уходят в pending.
func (p *Parser) advance() token.Token {
	tok := *p.peek()
	if tok.Kind == token.EOF {
		return tok
	}
	if comments, _ := convertTrivia(tok.Leading); len(comments) > 0 {
		p.pending = append(p.pending, comments...)
	}
	p.lastSpan = tok.Span
	p.pos++
	return tok
}

// accept съедает токен, если он нужного вида.
func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// diagSpan: лучший span для диагностики: на EOF, позиция после последнего токена.
func (p *Parser) diagSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect: ожидаем конкретный токен. Если нет, репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, diag.SevError, sp, msg+", got \""+p.peek().Text+"\"")
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) expectKeyword(k token.Kind) bool {
	_, ok := p.expect(k, diag.SynExpectKeyword, "expected '"+token.KeywordText(k)+"'")
	return ok
}

func (p *Parser) expectSemi() bool {
	_, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	return ok
}

// ident ожидает basic или extended identifier и возвращает его текст.
func (p *Parser) ident() (string, bool) {
	if p.atAny(token.Ident, token.ExtIdent) {
		return p.advance().Text, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.peek().Text+"\"")
	return "", false
}

// identList: a, b, c
func (p *Parser) identList() ([]string, bool) {
	var names []string
	for {
		name, ok := p.ident()
		if !ok {
			return names, false
		}
		names = append(names, name)
		if _, more := p.accept(token.Comma); !more {
			return names, true
		}
	}
}

// optLabel съедает необязательную метку после end.
func (p *Parser) optLabel() string {
	if p.atAny(token.Ident, token.ExtIdent) {
		return p.advance().Text
	}
	return ""
}

func (p *Parser) checkEndLabel(label, name string) {
	if label != "" && name != "" && !strings.EqualFold(label, name) {
		p.report(diag.SynEndLabelMismatch, diag.SevWarning, p.lastSpan,
			"end label \""+label+"\" does not match \""+name+"\"")
	}
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	muted := false
	if sev == diag.SevError {
		muted = p.opts.Enough()
		p.opts.CurrentErrors++
	}
	if muted || p.opts.Reporter == nil {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// resyncTo прокручивает до ';' (съедая его) или до одного из стоп-токенов.
func (p *Parser) resyncTo(stops ...token.Kind) {
	depth := 0
	for !p.at(token.EOF) {
		switch {
		case p.at(token.LParen):
			depth++
		case p.at(token.RParen) && depth > 0:
			depth--
		case depth == 0 && p.at(token.Semicolon):
			p.advance()
			return
		case depth == 0 && p.atAny(stops...):
			return
		}
		p.advance()
	}
}

// ===== trivia =====

// convertTrivia превращает leading trivia токена в комментарии; второй
// результат: была ли пустая строка после последнего комментария.
func convertTrivia(trivia []token.Trivia) ([]ast.Comment, bool) {
	var out []ast.Comment
	newlines := 0
	for _, tr := range trivia {
		switch {
		case tr.Kind == token.TriviaNewline:
			newlines += tr.Newlines()
		case tr.IsComment():
			out = append(out, ast.Comment{
				Text:        strings.TrimRight(tr.Text, " \t\r"),
				BlankBefore: newlines >= 2,
			})
			newlines = 0
		}
	}
	return out, newlines >= 2
}

// rowTrivia забирает pending и leading trivia текущего токена для узла,
// который начинается с этого токена.
func (p *Parser) rowTrivia() ast.Trivia {
	comments, blank := convertTrivia(p.peek().Leading)
	p.peek().Leading = nil

	t := ast.Trivia{BlankBefore: blank}
	if len(p.pending) > 0 {
		t.Leading = append(t.Leading, p.pending...)
		p.pending = nil
	}
	t.Leading = append(t.Leading, comments...)
	return t
}

// inline забирает комментарий, стоящий на той же строке сразу после
// только что съеденного токена.
func (p *Parser) inline() string {
	lead := p.peek().Leading
	for i, tr := range lead {
		switch tr.Kind {
		case token.TriviaSpace:
			continue
		case token.TriviaLineComment:
			p.peek().Leading = lead[i+1:]
			return strings.TrimRight(tr.Text, " \t\r")
		}
		return ""
	}
	return ""
}

// tail забирает комментарии перед закрывающей конструкцией (end, ")", elsif).
func (p *Parser) tail() []ast.Comment {
	comments, _ := convertTrivia(p.peek().Leading)
	p.peek().Leading = nil
	out := p.pending
	p.pending = nil
	return append(out, comments...)
}
