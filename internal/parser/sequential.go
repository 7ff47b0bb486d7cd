package parser

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// parseSequentialStmts разбирает операторы до end/elsif/else/when.
func (p *Parser) parseSequentialStmts() []ast.SequentialStmt {
	var stmts []ast.SequentialStmt
	for !p.atAny(token.KwEnd, token.KwElsif, token.KwElse, token.KwWhen, token.EOF) {
		start := p.pos
		if s := p.parseSequentialStmt(); s != nil {
			stmts = append(stmts, s)
		}
		if p.pos == start {
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) parseSequentialStmt() ast.SequentialStmt {
	t := p.rowTrivia()
	label := p.parseLabel()

	switch p.peek().Kind {
	case token.KwIf:
		return p.parseIf(t, label)
	case token.KwCase:
		return p.parseCase(t, label)
	case token.KwFor, token.KwWhile, token.KwLoop:
		return p.parseLoop(t, label)
	case token.KwNext, token.KwExit:
		s := &ast.LoopControl{Trivia: t, Label: label}
		s.Keyword = p.advance().Text
		s.LoopLabel = p.optLabel()
		if _, ok := p.accept(token.KwWhen); ok {
			s.Cond = p.parseExpr()
		}
		return finishStmt(p, s)
	case token.KwReturn:
		s := &ast.ReturnStmt{Trivia: t, Label: label}
		p.advance()
		if !p.at(token.Semicolon) {
			s.Value = p.parseExpr()
		}
		return finishStmt(p, s)
	case token.KwNull:
		p.advance()
		return finishStmt(p, &ast.NullStmt{Trivia: t, Label: label})
	case token.KwWait:
		return p.parseWait(t, label)
	case token.KwReport:
		s := &ast.ReportStmt{Trivia: t, Label: label}
		p.advance()
		s.Message = p.parseExpr()
		if _, ok := p.accept(token.KwSeverity); ok {
			s.Severity = p.parseExpr()
		}
		return finishStmt(p, s)
	case token.KwAssert:
		return p.parseAssert(t, label)
	}

	if !p.atAny(token.Ident, token.ExtIdent, token.LParen) {
		p.err(diag.SynExpectStatement, "expected a sequential statement, got \""+p.peek().Text+"\"")
		p.resyncTo(token.KwEnd, token.KwElsif, token.KwElse, token.KwWhen)
		return nil
	}
	target := p.parseName()
	switch {
	case p.at(token.LtEq):
		p.advance()
		s := &ast.SignalAssign{Trivia: t, Label: label, Target: target}
		s.Waveforms = p.parseCondWaveforms()
		return finishStmt(p, s)
	case p.at(token.VarAssign):
		p.advance()
		return finishStmt(p, &ast.VarAssign{Trivia: t, Label: label, Target: target, Value: p.parseExpr()})
	}
	return finishStmt(p, &ast.ProcedureCall{Trivia: t, Label: label, Call: target})
}

// finishStmt съедает ';' и inline комментарий простого оператора.
func finishStmt[S ast.SequentialStmt](p *Parser, s S) S {
	p.expectSemi()
	s.Comments().Inline = p.inline()
	return s
}

// if c then ... {elsif c then ...} [else ...] end if [label];
func (p *Parser) parseIf(t ast.Trivia, label string) *ast.IfStmt {
	s := &ast.IfStmt{Trivia: t, Label: label}
	p.advance() // if
	cond := p.parseExpr()
	p.expectKeyword(token.KwThen)
	s.Branches = append(s.Branches, p.parseIfBranch(cond))
	for p.at(token.KwElsif) {
		p.advance()
		cond := p.parseExpr()
		p.expectKeyword(token.KwThen)
		s.Branches = append(s.Branches, p.parseIfBranch(cond))
	}
	if _, ok := p.accept(token.KwElse); ok {
		s.Branches = append(s.Branches, p.parseIfBranch(nil))
	}
	s.EndLabel = p.parseEnd(label, token.KwIf)
	s.Inline = p.inline()
	return s
}

func (p *Parser) parseIfBranch(cond ast.Expr) ast.IfBranch {
	b := ast.IfBranch{Cond: cond}
	b.Stmts = p.parseSequentialStmts()
	b.Tail = p.tail()
	return b
}

// case [?] sel is {when choices => stmts} end case [?] [label];
func (p *Parser) parseCase(t ast.Trivia, label string) *ast.CaseStmt {
	s := &ast.CaseStmt{Trivia: t, Label: label}
	p.advance() // case
	_, s.Matching = p.accept(token.Question)
	s.Selector = p.parseExpr()
	p.expectKeyword(token.KwIs)
	for p.at(token.KwWhen) {
		alt := &ast.CaseAlt{Trivia: p.rowTrivia()}
		p.advance() // when
		alt.Choices = p.parseChoices()
		p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '=>' after case choices")
		alt.Inline = p.inline()
		alt.Stmts = p.parseSequentialStmts()
		s.Alts = append(s.Alts, alt)
	}
	s.Tail = p.tail()
	p.expectKeyword(token.KwEnd)
	p.expectKeyword(token.KwCase)
	if s.Matching {
		p.expect(token.Question, diag.SynUnexpectedToken, "expected '?' after 'end case'")
	}
	s.EndLabel = p.optLabel()
	p.checkEndLabel(s.EndLabel, label)
	p.expectSemi()
	s.Inline = p.inline()
	return s
}

// [for i in r | while c] loop stmts end loop [label];
func (p *Parser) parseLoop(t ast.Trivia, label string) ast.SequentialStmt {
	var (
		param string
		rng   ast.Expr
		cond  ast.Expr
		kind  = p.peek().Kind
	)
	switch kind {
	case token.KwFor:
		p.advance()
		param, _ = p.ident()
		p.expectKeyword(token.KwIn)
		rng = p.parseRangeOrExpr()
	case token.KwWhile:
		p.advance()
		cond = p.parseExpr()
	}
	p.expectKeyword(token.KwLoop)
	stmts := p.parseSequentialStmts()
	tail := p.tail()
	end := p.parseEnd(label, token.KwLoop)
	inline := p.inline()

	switch kind {
	case token.KwFor:
		s := &ast.ForLoop{Trivia: t, Label: label, Param: param, Range: rng, Stmts: stmts, EndLabel: end, Tail: tail}
		s.Inline = inline
		return s
	case token.KwWhile:
		s := &ast.WhileLoop{Trivia: t, Label: label, Cond: cond, Stmts: stmts, EndLabel: end, Tail: tail}
		s.Inline = inline
		return s
	}
	s := &ast.Loop{Trivia: t, Label: label, Stmts: stmts, EndLabel: end, Tail: tail}
	s.Inline = inline
	return s
}

// wait [on sigs] [until cond] [for time];
func (p *Parser) parseWait(t ast.Trivia, label string) *ast.WaitStmt {
	s := &ast.WaitStmt{Trivia: t, Label: label}
	p.advance() // wait
	if _, ok := p.accept(token.KwOn); ok {
		for {
			s.On = append(s.On, p.parseName())
			if _, more := p.accept(token.Comma); !more {
				break
			}
		}
	}
	if _, ok := p.accept(token.KwUntil); ok {
		s.Until = p.parseExpr()
	}
	if _, ok := p.accept(token.KwFor); ok {
		s.For = p.parseExpr()
	}
	return finishStmt(p, s)
}
