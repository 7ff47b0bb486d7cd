// Package layout turns a doc.Doc into text: groups are laid out flat when
// they fit in the remaining width and broken otherwise.
package layout

import (
	"vhdlfmt/internal/doc"
)

// Render lays out d. The engine is total: content that cannot be broken is
// emitted as is, even past the width limit.
func Render(d doc.Doc, opt Options) string {
	e := engine{opt: opt.withDefaults()}
	e.w = newWriter(e.opt)
	e.render(d, 0, false, 0)
	return e.w.String()
}

type engine struct {
	opt Options
	w   *writer
}

// render lays out d. trail is the width of the text that follows d on the
// same line, up to the next break point; a group fits only together with it.
func (e *engine) render(d doc.Doc, indent int, flat bool, trail int) {
	switch d := d.(type) {
	case nil:
	case doc.Text:
		e.w.text(string(d))
	case doc.Concat:
		for i, part := range d {
			e.render(part, indent, flat, trailAfter(d[i+1:], trail))
		}
	case doc.Line:
		if flat {
			e.w.text(" ")
		} else {
			e.w.newline(indent)
		}
	case doc.SoftLine:
		if !flat {
			e.w.newline(indent)
		}
	case doc.HardLine:
		e.w.newline(indent)
	case doc.BreakParent:
	case doc.Indent:
		e.render(d.Body, indent+d.Levels, flat, trail)
	case doc.Group:
		if !flat {
			width, forced := FlatWidth(d.Body)
			flat = !forced && e.w.column()+width+trail <= e.opt.Width
		}
		e.render(d.Body, indent, flat, trail)
	case doc.Table:
		e.table(d, indent, flat)
	}
}

func (e *engine) table(t doc.Table, indent int, flat bool) {
	for i, row := range t.Rows {
		if i > 0 {
			e.render(t.Sep, indent, flat, 0)
		}
		for _, lead := range row.Leading {
			e.render(lead, indent, flat, 0)
			e.w.newline(indent)
		}
		if flat {
			e.flatRow(row, indent)
		} else {
			e.paddedRow(row, t.Widths, indent)
		}
		e.render(row.Tail, indent, flat, 0)
	}
}

func (e *engine) flatRow(row doc.Row, indent int) {
	first := true
	for _, cell := range row.Cells {
		if doc.IsEmpty(cell) {
			continue
		}
		if !first {
			e.w.text(" ")
		}
		e.render(cell, indent, true, 0)
		first = false
	}
}

// paddedRow: каждая непоследняя ячейка дополняется до ширины своей колонки;
// пустые колонки нулевой ширины пропускаются.
func (e *engine) paddedRow(row doc.Row, widths []int, indent int) {
	last := -1
	for c, cell := range row.Cells {
		if !doc.IsEmpty(cell) {
			last = c
		}
	}
	emitted := false
	for c := 0; c <= last; c++ {
		cell := row.Cells[c]
		width := 0
		if c < len(widths) {
			width = widths[c]
		}
		empty := doc.IsEmpty(cell)
		if empty && width == 0 {
			continue
		}
		if emitted {
			e.w.text(" ")
		}
		emitted = true
		if c == last {
			tail, _ := leadWidth(row.Tail)
			e.render(cell, indent, false, tail)
			break
		}
		cw, _ := FlatWidth(cell)
		e.render(cell, indent, true, 0)
		e.w.spaces(width - cw)
	}
}

// trailAfter is the width of rest up to its first break point, plus outer
// when rest has none.
func trailAfter(rest []doc.Doc, outer int) int {
	total := 0
	for _, d := range rest {
		w, stop := leadWidth(d)
		total += w
		if stop {
			return total
		}
	}
	return total + outer
}
