// Package align computes column widths for runs of rows that are printed as
// aligned blocks (port and generic clauses, object declarations, maps).
//
// Alignment is two-pass: Measure sees every row of a run before Build turns
// the rows into a doc.Table.
package align

import (
	"vhdlfmt/internal/doc"
	"vhdlfmt/internal/layout"
)

// Measure returns the maximum flat width of every column. Missing and empty
// cells contribute zero.
func Measure(rows [][]doc.Doc) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, make([]int, c+1-len(widths))...)
			}
			if doc.IsEmpty(cell) {
				continue
			}
			w, _ := layout.FlatWidth(cell)
			widths[c] = max(widths[c], w)
		}
	}
	return widths
}

// Mask keeps the width of column c only when pad[c] is true; columns past
// len(pad) keep their width.
func Mask(widths []int, pad ...bool) []int {
	out := make([]int, len(widths))
	for c, w := range widths {
		if c < len(pad) && !pad[c] {
			continue
		}
		out[c] = w
	}
	return out
}

// Build assembles a table from rows whose Cells were measured into widths.
// A nil widths slice gives an unpadded table.
func Build(rows []doc.Row, widths []int, sep doc.Doc) doc.Table {
	return doc.Table{Rows: rows, Widths: widths, Sep: sep}
}

// Cells extracts the cell matrix of rows for Measure.
func Cells(rows []doc.Row) [][]doc.Doc {
	out := make([][]doc.Doc, len(rows))
	for i, r := range rows {
		out[i] = r.Cells
	}
	return out
}

// Table measures rows and builds the table in one call; when enabled is
// false the rows are left unpadded.
func Table(rows []doc.Row, sep doc.Doc, enabled bool, pad ...bool) doc.Table {
	if !enabled {
		return Build(rows, nil, sep)
	}
	return Build(rows, Mask(Measure(Cells(rows)), pad...), sep)
}

// Runs splits items into maximal runs; a new run starts at every item for
// which startsRun returns true.
func Runs[T any](items []T, startsRun func(i int, item T) bool) [][]T {
	var runs [][]T
	for i, item := range items {
		if len(runs) == 0 || startsRun(i, item) {
			runs = append(runs, nil)
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], item)
	}
	return runs
}
