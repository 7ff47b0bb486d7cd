package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"vhdlfmt/internal/doc"
)

// FlatWidth returns the width of d rendered on a single line and whether d
// contains a forced break (HardLine, BreakParent, multi-line text or table
// leading lines), in which case it can never be flat.
func FlatWidth(d doc.Doc) (int, bool) {
	switch d := d.(type) {
	case nil:
		return 0, false
	case doc.Text:
		if strings.Contains(string(d), "\n") {
			return 0, true
		}
		return runewidth.StringWidth(string(d)), false
	case doc.Line:
		return 1, false
	case doc.SoftLine:
		return 0, false
	case doc.HardLine, doc.BreakParent:
		return 0, true
	case doc.Indent:
		return FlatWidth(d.Body)
	case doc.Group:
		return FlatWidth(d.Body)
	case doc.Concat:
		total, forced := 0, false
		for _, part := range d {
			w, f := FlatWidth(part)
			total += w
			forced = forced || f
		}
		return total, forced
	case doc.Table:
		return tableFlatWidth(d)
	}
	return 0, false
}

func tableFlatWidth(t doc.Table) (int, bool) {
	total, forced := 0, false
	for i, row := range t.Rows {
		if len(row.Leading) > 0 {
			forced = true
		}
		if i > 0 {
			w, f := FlatWidth(t.Sep)
			total += w
			forced = forced || f
		}
		w, f := rowFlatWidth(row)
		total += w
		forced = forced || f
	}
	return total, forced
}

func rowFlatWidth(row doc.Row) (int, bool) {
	total, forced, cells := 0, false, 0
	for _, cell := range row.Cells {
		if doc.IsEmpty(cell) {
			continue
		}
		if cells > 0 {
			total++
		}
		w, f := FlatWidth(cell)
		total += w
		forced = forced || f
		cells++
	}
	w, f := FlatWidth(row.Tail)
	return total + w, forced || f
}

// leadWidth returns the flat width of d up to its first break point (any
// line, a forced break or a table) and whether such a point was reached.
// Inline comments sit behind a BreakParent and are not counted.
func leadWidth(d doc.Doc) (int, bool) {
	switch d := d.(type) {
	case nil:
		return 0, false
	case doc.Text:
		first, _, multi := strings.Cut(string(d), "\n")
		return runewidth.StringWidth(first), multi
	case doc.Line, doc.SoftLine, doc.HardLine, doc.BreakParent, doc.Table:
		return 0, true
	case doc.Indent:
		return leadWidth(d.Body)
	case doc.Group:
		return leadWidth(d.Body)
	case doc.Concat:
		total := 0
		for _, part := range d {
			w, stop := leadWidth(part)
			total += w
			if stop {
				return total, true
			}
		}
		return total, false
	}
	return 0, false
}
