package format

import (
	"vhdlfmt/internal/align"
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/doc"
)

func (p *printer) concurrent(b *block, stmts []ast.ConcurrentStmt) {
	for _, s := range stmts {
		b.row(s.Comments(), p.concurrentStmt(s))
	}
}

func (p *printer) sequential(b *block, stmts []ast.SequentialStmt) {
	for _, s := range stmts {
		b.row(s.Comments(), p.sequentialStmt(s))
	}
}

func (p *printer) concurrentStmt(s ast.ConcurrentStmt) doc.Doc {
	switch s := s.(type) {
	case *ast.ConcurrentAssign:
		return p.labeled(s.Label, p.signalAssign(s.Target, s.Waveforms))
	case *ast.SelectedAssign:
		return p.labeled(s.Label, p.selectedAssign(s))
	case *ast.Process:
		return p.labeled(s.Label, p.process(s))
	case *ast.Instance:
		return p.labeled(s.Label, p.instance(s))
	case *ast.ForGenerate:
		return p.labeled(s.Label, p.forGenerate(s))
	case *ast.IfGenerate:
		return p.labeled(s.Label, p.ifGenerate(s))
	case *ast.AssertStmt:
		return p.labeled(s.Label, p.assert(s))
	case *ast.ProcedureCall:
		return p.labeled(s.Label, doc.Concat{p.value(s.Call), doc.Text(";")})
	}
	return doc.Empty
}

func (p *printer) sequentialStmt(s ast.SequentialStmt) doc.Doc {
	switch s := s.(type) {
	case *ast.SignalAssign:
		return p.labeled(s.Label, p.signalAssign(s.Target, s.Waveforms))
	case *ast.VarAssign:
		return p.labeled(s.Label, doc.Concat{p.expr(s.Target), doc.Text(" := "), p.value(s.Value), doc.Text(";")})
	case *ast.IfStmt:
		return p.labeled(s.Label, p.ifStmt(s))
	case *ast.CaseStmt:
		return p.labeled(s.Label, p.caseStmt(s))
	case *ast.ForLoop:
		head := doc.Concat{p.kw("for"), doc.Space, p.name(s.Param), doc.Space, p.kw("in"), doc.Space, p.value(s.Range), doc.Space}
		return p.labeled(s.Label, p.loop(head, s.Stmts, s.Tail, s.EndLabel, s.Label))
	case *ast.WhileLoop:
		head := doc.Concat{p.kw("while"), doc.Space, p.value(s.Cond), doc.Space}
		return p.labeled(s.Label, p.loop(head, s.Stmts, s.Tail, s.EndLabel, s.Label))
	case *ast.Loop:
		return p.labeled(s.Label, p.loop(doc.Empty, s.Stmts, s.Tail, s.EndLabel, s.Label))
	case *ast.LoopControl:
		out := doc.Concat{p.kw(s.Keyword)}
		if s.LoopLabel != "" {
			out = append(out, doc.Space, p.name(s.LoopLabel))
		}
		if s.Cond != nil {
			out = append(out, doc.Space, p.kw("when"), doc.Space, p.value(s.Cond))
		}
		return p.labeled(s.Label, append(out, doc.Text(";")))
	case *ast.ReturnStmt:
		out := doc.Concat{p.kw("return")}
		if s.Value != nil {
			out = append(out, doc.Space, p.value(s.Value))
		}
		return p.labeled(s.Label, append(out, doc.Text(";")))
	case *ast.NullStmt:
		return p.labeled(s.Label, doc.Concat{p.kw("null"), doc.Text(";")})
	case *ast.WaitStmt:
		return p.labeled(s.Label, p.wait(s))
	case *ast.ReportStmt:
		out := doc.Concat{p.kw("report"), doc.Space, p.value(s.Message)}
		if s.Severity != nil {
			out = append(out, doc.Space, p.kw("severity"), doc.Space, p.expr(s.Severity))
		}
		return p.labeled(s.Label, append(out, doc.Text(";")))
	case *ast.AssertStmt:
		return p.labeled(s.Label, p.assert(s))
	case *ast.ProcedureCall:
		return p.labeled(s.Label, doc.Concat{p.value(s.Call), doc.Text(";")})
	}
	return doc.Empty
}

// labeled: "label : stmt".
func (p *printer) labeled(label string, body doc.Doc) doc.Doc {
	if label == "" {
		return body
	}
	return doc.Concat{p.name(label), doc.Text(" : "), body}
}

// stmtEnd: "end <kind>[ label];", метка печатается только у помеченных операторов.
func (p *printer) stmtEnd(kind, endLabel, label string) doc.Doc {
	out := doc.Concat{p.kw("end"), doc.Space, p.kw(kind)}
	if label != "" {
		out = append(out, doc.Space, p.name(ast.EndName(endLabel, label)))
	}
	return append(out, doc.Text(";"))
}

func (p *printer) waveform(wf ast.Waveform) doc.Doc {
	return p.exprList(wf)
}

// signalAssign: t <= a when c else
//                    b;
func (p *printer) signalAssign(target ast.Expr, arms []ast.CondWaveform) doc.Doc {
	parts := make([]doc.Doc, len(arms))
	for i, arm := range arms {
		part := doc.Concat{p.waveform(arm.Waveform)}
		if arm.Cond != nil {
			part = append(part, doc.Space, p.kw("when"), doc.Space, p.expr(arm.Cond))
		}
		parts[i] = part
	}
	body := doc.Join(doc.Concat{doc.Line{}, p.kw("else"), doc.Space}, parts...)
	return doc.Concat{
		doc.Group{Body: doc.Indent{Levels: 1, Body: doc.Concat{p.expr(target), doc.Text(" <= "), body}}},
		doc.Text(";"),
	}
}

// with sel select t <=
//   a when "00",
//   b when others;
func (p *printer) selectedAssign(s *ast.SelectedAssign) doc.Doc {
	arms := make([]doc.Doc, len(s.Arms))
	for i, arm := range s.Arms {
		arms[i] = doc.Concat{p.waveform(arm.Waveform), doc.Space, p.kw("when"), doc.Space, p.choices(arm.Choices)}
	}
	return doc.Group{Body: doc.Concat{
		p.kw("with"), doc.Space, p.expr(s.Selector), doc.Space, p.kw("select"), doc.Space,
		p.expr(s.Target), doc.Text(" <="),
		doc.Indent{Levels: 1, Body: doc.Concat{doc.Line{}, doc.Join(doc.Concat{doc.Text(","), doc.Line{}}, arms...)}},
		doc.Text(";"),
	}}
}

func (p *printer) process(s *ast.Process) doc.Doc {
	head := doc.Concat{}
	if s.Postponed {
		head = append(head, p.kw("postponed"), doc.Space)
	}
	head = append(head, p.kw("process"))
	if len(s.Sensitivity) > 0 {
		head = append(head, doc.Space, doc.Wrap("(", doc.Join(doc.Concat{doc.Text(","), doc.Line{}}, p.exprDocs(s.Sensitivity)...), ")"))
	}
	if s.HasIs {
		head = append(head, doc.Space, p.kw("is"))
	}

	var decls block
	p.decls(&decls, s.Decls)
	decls.comments(s.DeclTail)

	var stmts block
	p.sequential(&stmts, s.Stmts)
	stmts.comments(s.Tail)

	kind := "process"
	if s.Postponed {
		kind = "postponed process"
	}
	return append(head,
		decls.nest(),
		doc.HardLine{}, p.kw("begin"),
		stmts.nest(),
		doc.HardLine{}, p.stmtEnd(kind, s.EndLabel, s.Label),
	)
}

func (p *printer) exprDocs(xs []ast.Expr) []doc.Doc {
	out := make([]doc.Doc, len(xs))
	for i, x := range xs {
		out[i] = p.expr(x)
	}
	return out
}

// instance: unit, затем generic map и port map на отдельных строках.
func (p *printer) instance(s *ast.Instance) doc.Doc {
	head := doc.Concat{}
	if s.UnitKind != "" {
		head = append(head, p.kw(s.UnitKind), doc.Space)
	}
	head = append(head, p.expr(s.Unit))
	if s.Arch != "" {
		head = append(head, doc.Text("("), p.name(s.Arch), doc.Text(")"))
	}
	maps := doc.Concat{}
	if s.GenericMap != nil {
		maps = append(maps, doc.Line{}, p.assocList("generic map", s.GenericMap))
	}
	if s.PortMap != nil {
		maps = append(maps, doc.Line{}, p.assocList("port map", s.PortMap))
	}
	return doc.Concat{
		doc.Group{Body: doc.Concat{head, doc.Indent{Levels: 1, Body: maps}}},
		doc.Text(";"),
	}
}

// assocList: "port map (a => b, c => d)"; по строке на связь при переносе,
// с выравниванием "=>" если включено port_map.align_signals.
func (p *printer) assocList(keyword string, l *ast.AssocList) doc.Doc {
	rows := make([]doc.Row, len(l.Items))
	for i, a := range l.Items {
		cells := []doc.Doc{p.expr(a.Actual)}
		if len(a.Choices) > 0 {
			cells = []doc.Doc{p.choices(a.Choices), doc.Text("=>"), p.value(a.Actual)}
		}
		rows[i] = doc.Row{
			Leading: leadDocs(&a.Trivia, i > 0),
			Cells:   cells,
			Tail:    rowTail(&a.Trivia, i < len(l.Items)-1, ","),
		}
	}
	body := doc.Concat{align.Table(rows, doc.Line{}, p.cfg.PortMap.AlignSignals, true, true)}
	if len(l.Tail) > 0 {
		body = append(body, doc.HardLine{}, commentLines(l.Tail))
	}
	return doc.Wrap(p.tr.Keyword(keyword)+" (", body, ")")
}

func (p *printer) generateBody(b *block, body ast.GenerateBody) doc.Doc {
	out := doc.Concat{}
	if body.HasBegin {
		var decls block
		p.decls(&decls, body.Decls)
		out = append(out, decls.nest(), doc.HardLine{}, p.kw("begin"))
	}
	p.concurrent(b, body.Stmts)
	b.comments(body.Tail)
	return append(out, b.nest())
}

func (p *printer) forGenerate(s *ast.ForGenerate) doc.Doc {
	var stmts block
	return doc.Concat{
		p.kw("for"), doc.Space, p.name(s.Param), doc.Space, p.kw("in"), doc.Space,
		p.value(s.Range), doc.Space, p.kw("generate"),
		p.generateBody(&stmts, s.Body),
		doc.HardLine{}, p.stmtEnd("generate", s.EndLabel, s.Label),
	}
}

func (p *printer) ifGenerate(s *ast.IfGenerate) doc.Doc {
	out := doc.Concat{}
	for i, br := range s.Branches {
		if i > 0 {
			out = append(out, doc.HardLine{})
		}
		switch {
		case i == 0:
			out = append(out, p.kw("if"), doc.Space, p.value(br.Cond), doc.Space)
		case br.Cond != nil:
			out = append(out, p.kw("elsif"), doc.Space, p.value(br.Cond), doc.Space)
		default:
			out = append(out, p.kw("else"), doc.Space)
		}
		var stmts block
		out = append(out, p.kw("generate"), p.generateBody(&stmts, br.Body))
	}
	return append(out, doc.HardLine{}, p.stmtEnd("generate", s.EndLabel, s.Label))
}

// assert cond
//   report msg
//   severity level;
func (p *printer) assert(s *ast.AssertStmt) doc.Doc {
	head := doc.Concat{}
	if s.Postponed {
		head = append(head, p.kw("postponed"), doc.Space)
	}
	head = append(head, p.kw("assert"), doc.Space, p.expr(s.Cond))
	rest := doc.Concat{}
	if s.Report != nil {
		rest = append(rest, doc.Line{}, p.kw("report"), doc.Space, p.expr(s.Report))
	}
	if s.Severity != nil {
		rest = append(rest, doc.Line{}, p.kw("severity"), doc.Space, p.expr(s.Severity))
	}
	return doc.Concat{
		doc.Group{Body: doc.Indent{Levels: 1, Body: doc.Concat{head, rest}}},
		doc.Text(";"),
	}
}

func (p *printer) ifStmt(s *ast.IfStmt) doc.Doc {
	out := doc.Concat{}
	for i, br := range s.Branches {
		if i > 0 {
			out = append(out, doc.HardLine{})
		}
		switch {
		case i == 0:
			out = append(out, p.kw("if"), doc.Space, p.value(br.Cond), doc.Space, p.kw("then"))
		case br.Cond != nil:
			out = append(out, p.kw("elsif"), doc.Space, p.value(br.Cond), doc.Space, p.kw("then"))
		default:
			out = append(out, p.kw("else"))
		}
		var stmts block
		p.sequential(&stmts, br.Stmts)
		stmts.comments(br.Tail)
		out = append(out, stmts.nest())
	}
	return append(out, doc.HardLine{}, p.stmtEnd("if", s.EndLabel, s.Label))
}

func (p *printer) caseStmt(s *ast.CaseStmt) doc.Doc {
	kw := p.kw("case")
	if s.Matching {
		kw = doc.Concat{kw, doc.Text("?")}
	}
	var alts block
	for _, alt := range s.Alts {
		var stmts block
		p.sequential(&stmts, alt.Stmts)
		alts.leading(&alt.Trivia)
		alts.add(doc.Concat{
			p.kw("when"), doc.Space, p.choices(alt.Choices), doc.Text(" =>"), inline(alt.Inline),
			stmts.nest(),
		})
	}
	alts.comments(s.Tail)

	end := doc.Concat{p.kw("end"), doc.Space, kw}
	if s.Label != "" {
		end = append(end, doc.Space, p.name(ast.EndName(s.EndLabel, s.Label)))
	}
	return doc.Concat{
		kw, doc.Space, p.value(s.Selector), doc.Space, p.kw("is"),
		alts.nest(),
		doc.HardLine{}, end, doc.Text(";"),
	}
}

// loop: [for i in r | while c] loop ... end loop;
func (p *printer) loop(head doc.Doc, body []ast.SequentialStmt, tail []ast.Comment, endLabel, label string) doc.Doc {
	var stmts block
	p.sequential(&stmts, body)
	stmts.comments(tail)
	return doc.Concat{
		head, p.kw("loop"),
		stmts.nest(),
		doc.HardLine{}, p.stmtEnd("loop", endLabel, label),
	}
}

// wait [on a, b] [until c] [for t];
func (p *printer) wait(s *ast.WaitStmt) doc.Doc {
	out := doc.Concat{p.kw("wait")}
	if len(s.On) > 0 {
		out = append(out, doc.Space, p.kw("on"), doc.Space, p.exprList(s.On))
	}
	if s.Until != nil {
		out = append(out, doc.Space, p.kw("until"), doc.Space, p.value(s.Until))
	}
	if s.For != nil {
		out = append(out, doc.Space, p.kw("for"), doc.Space, p.expr(s.For))
	}
	return append(out, doc.Text(";"))
}
