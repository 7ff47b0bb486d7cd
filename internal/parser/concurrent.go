package parser

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// parseConcurrentStmts разбирает операторы архитектуры до end/elsif/else.
func (p *Parser) parseConcurrentStmts() []ast.ConcurrentStmt {
	var stmts []ast.ConcurrentStmt
	for !p.atAny(token.KwEnd, token.KwElsif, token.KwElse, token.EOF) {
		start := p.pos
		if s := p.parseConcurrentStmt(); s != nil {
			stmts = append(stmts, s)
		}
		if p.pos == start {
			p.advance()
		}
	}
	return stmts
}

// parseLabel съедает "label :" если он есть.
func (p *Parser) parseLabel() string {
	if p.atAny(token.Ident, token.ExtIdent) && p.peekN(1).Kind == token.Colon {
		label := p.advance().Text
		p.advance()
		return label
	}
	return ""
}

func (p *Parser) parseConcurrentStmt() ast.ConcurrentStmt {
	t := p.rowTrivia()
	label := p.parseLabel()
	_, postponed := p.accept(token.KwPostponed)

	switch p.peek().Kind {
	case token.KwProcess:
		return p.parseProcess(t, label, postponed)
	case token.KwAssert:
		s := p.parseAssert(t, label)
		s.Postponed = postponed
		return s
	case token.KwWith:
		return p.parseSelectedAssign(t, label)
	case token.KwFor:
		return p.parseForGenerate(t, label)
	case token.KwIf:
		return p.parseIfGenerate(t, label)
	case token.KwEntity, token.KwComponent, token.KwConfiguration:
		inst := &ast.Instance{Trivia: t, Label: label}
		inst.UnitKind = p.advance().Text
		inst.Unit = p.parseSelectedName()
		if _, ok := p.accept(token.LParen); ok {
			inst.Arch, _ = p.ident()
			p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after architecture name")
		}
		return p.parseInstanceMaps(inst)
	case token.KwBlock:
		p.err(diag.SynExpectStatement, "block statements are not supported")
		p.skipBlock()
		return nil
	}

	if !p.atAny(token.Ident, token.ExtIdent, token.LParen) {
		p.err(diag.SynExpectStatement, "expected a concurrent statement, got \""+p.peek().Text+"\"")
		p.resyncTo(token.KwEnd)
		return nil
	}
	target := p.parseName()
	switch {
	case p.atAny(token.KwGeneric, token.KwPort):
		return p.parseInstanceMaps(&ast.Instance{Trivia: t, Label: label, Unit: target})
	case p.at(token.LtEq):
		p.advance()
		s := &ast.ConcurrentAssign{Trivia: t, Label: label, Target: target}
		s.Waveforms = p.parseCondWaveforms()
		p.expectSemi()
		s.Inline = p.inline()
		return s
	}
	s := &ast.ProcedureCall{Trivia: t, Label: label, Call: target}
	p.expectSemi()
	s.Inline = p.inline()
	return s
}

// skipBlock проматывает block ... end block [label];
func (p *Parser) skipBlock() {
	depth := 0
	afterEnd := false
	for !p.at(token.EOF) {
		switch {
		case p.at(token.KwBlock) && !afterEnd:
			depth++
		case p.at(token.KwEnd) && p.peekN(1).Kind == token.KwBlock:
			depth--
			if depth == 0 {
				p.resyncTo()
				return
			}
		}
		afterEnd = p.at(token.KwEnd)
		p.advance()
	}
}

func (p *Parser) parseProcess(t ast.Trivia, label string, postponed bool) *ast.Process {
	s := &ast.Process{Trivia: t, Label: label, Postponed: postponed}
	p.advance() // process
	if _, ok := p.accept(token.LParen); ok {
		if kw, all := p.accept(token.KwAll); all {
			s.Sensitivity = []ast.Expr{&ast.TokenExpr{Kind: kw.Kind, Text: kw.Text}}
		} else {
			for {
				s.Sensitivity = append(s.Sensitivity, p.parseName())
				if _, more := p.accept(token.Comma); !more {
					break
				}
			}
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close sensitivity list")
	}
	_, s.HasIs = p.accept(token.KwIs)
	s.Decls = p.parseDeclarativePart()
	s.DeclTail = p.tail()
	p.expectKeyword(token.KwBegin)
	s.Stmts = p.parseSequentialStmts()
	s.Tail = p.tail()
	p.expectKeyword(token.KwEnd)
	p.accept(token.KwPostponed)
	p.expectKeyword(token.KwProcess)
	s.EndLabel = p.optLabel()
	p.checkEndLabel(s.EndLabel, label)
	p.expectSemi()
	s.Inline = p.inline()
	return s
}

// parseInstanceMaps: [generic map (...)] [port map (...)];
func (p *Parser) parseInstanceMaps(inst *ast.Instance) *ast.Instance {
	if inst.Label == "" {
		p.err(diag.SynExpectIdentifier, "component instantiation requires a label")
	}
	if p.at(token.KwGeneric) {
		inst.GenericMap = p.parseAssocList()
	}
	if p.at(token.KwPort) {
		inst.PortMap = p.parseAssocList()
	}
	p.expectSemi()
	inst.Inline = p.inline()
	return inst
}

// generic map ( assoc, ... ) | port map ( assoc, ... )
func (p *Parser) parseAssocList() *ast.AssocList {
	list := &ast.AssocList{}
	p.advance() // generic|port
	p.expectKeyword(token.KwMap)
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'map'")
	parseRows(p, token.Comma, func(t ast.Trivia) *ast.Association {
		a := p.parseAssociation()
		a.Trivia = t
		list.Items = append(list.Items, a)
		return a
	})
	list.Tail = p.tail()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close association list")
	return list
}

// with selector select target <= waveform when choices, ...;
func (p *Parser) parseSelectedAssign(t ast.Trivia, label string) *ast.SelectedAssign {
	s := &ast.SelectedAssign{Trivia: t, Label: label}
	p.advance() // with
	s.Selector = p.parseExpr()
	p.expectKeyword(token.KwSelect)
	s.Target = p.parseName()
	p.expect(token.LtEq, diag.SynUnexpectedToken, "expected '<='")
	for {
		arm := ast.SelectedWaveform{Waveform: p.parseWaveform()}
		p.expectKeyword(token.KwWhen)
		arm.Choices = p.parseChoices()
		s.Arms = append(s.Arms, arm)
		if _, more := p.accept(token.Comma); !more {
			break
		}
	}
	p.expectSemi()
	s.Inline = p.inline()
	return s
}

// waveform [when cond else waveform ...]
func (p *Parser) parseCondWaveforms() []ast.CondWaveform {
	var arms []ast.CondWaveform
	for {
		arm := ast.CondWaveform{Waveform: p.parseWaveform()}
		if _, ok := p.accept(token.KwWhen); ok {
			arm.Cond = p.parseExpr()
		}
		arms = append(arms, arm)
		if arm.Cond == nil {
			return arms
		}
		if _, more := p.accept(token.KwElse); !more {
			return arms
		}
	}
}

// waveform: unaffected | elem [after t] {, elem [after t]}
func (p *Parser) parseWaveform() ast.Waveform {
	if kw, ok := p.accept(token.KwUnaffected); ok {
		return ast.Waveform{&ast.TokenExpr{Kind: kw.Kind, Text: kw.Text}}
	}
	var wf ast.Waveform
	for {
		x := p.parseExpr()
		if after, ok := p.accept(token.KwAfter); ok {
			x = &ast.BinaryExpr{Op: after.Kind, Text: after.Text, X: x, Y: p.parseExpr()}
		}
		wf = append(wf, x)
		if _, more := p.accept(token.Comma); !more {
			return wf
		}
	}
}

func (p *Parser) parseForGenerate(t ast.Trivia, label string) *ast.ForGenerate {
	s := &ast.ForGenerate{Trivia: t, Label: label}
	if label == "" {
		p.err(diag.SynExpectIdentifier, "generate statement requires a label")
	}
	p.advance() // for
	s.Param, _ = p.ident()
	p.expectKeyword(token.KwIn)
	s.Range = p.parseRangeOrExpr()
	p.expectKeyword(token.KwGenerate)
	s.Body = p.parseGenerateBody()
	s.EndLabel = p.parseEnd(label, token.KwGenerate)
	s.Inline = p.inline()
	return s
}

func (p *Parser) parseIfGenerate(t ast.Trivia, label string) *ast.IfGenerate {
	s := &ast.IfGenerate{Trivia: t, Label: label}
	if label == "" {
		p.err(diag.SynExpectIdentifier, "generate statement requires a label")
	}
	p.advance() // if
	cond := p.parseExpr()
	p.expectKeyword(token.KwGenerate)
	s.Branches = append(s.Branches, ast.GenerateBranch{Cond: cond, Body: p.parseGenerateBody()})
	for p.at(token.KwElsif) {
		p.advance()
		cond := p.parseExpr()
		p.expectKeyword(token.KwGenerate)
		s.Branches = append(s.Branches, ast.GenerateBranch{Cond: cond, Body: p.parseGenerateBody()})
	}
	if _, ok := p.accept(token.KwElse); ok {
		p.expectKeyword(token.KwGenerate)
		s.Branches = append(s.Branches, ast.GenerateBranch{Body: p.parseGenerateBody()})
	}
	s.EndLabel = p.parseEnd(label, token.KwGenerate)
	s.Inline = p.inline()
	return s
}

// parseGenerateBody: [decls begin] stmts
func (p *Parser) parseGenerateBody() ast.GenerateBody {
	var body ast.GenerateBody
	if p.atDeclStart() {
		body.Decls = p.parseDeclarativePart()
		p.expectKeyword(token.KwBegin)
		body.HasBegin = true
	} else if _, ok := p.accept(token.KwBegin); ok {
		body.HasBegin = true
	}
	body.Stmts = p.parseConcurrentStmts()
	body.Tail = p.tail()
	return body
}

// assert cond [report msg] [severity level];
func (p *Parser) parseAssert(t ast.Trivia, label string) *ast.AssertStmt {
	s := &ast.AssertStmt{Trivia: t, Label: label}
	p.advance() // assert
	s.Cond = p.parseExpr()
	if _, ok := p.accept(token.KwReport); ok {
		s.Report = p.parseExpr()
	}
	if _, ok := p.accept(token.KwSeverity); ok {
		s.Severity = p.parseExpr()
	}
	p.expectSemi()
	s.Inline = p.inline()
	return s
}
