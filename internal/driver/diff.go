package driver

import (
	"fmt"
	"strings"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 3

type editKind uint8

const (
	editKeep editKind = iota
	editDelete
	editInsert
)

type edit struct {
	kind editKind
	a, b int // indexes into the old and new line slices
}

// hunk is a run of edits with surrounding context.
type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	lines              []string
}

// UnifiedDiff renders the change from original to formatted as a unified
// diff. It returns "" when the texts are equal.
func UnifiedDiff(path, original, formatted string) string {
	if original == formatted {
		return ""
	}
	a := splitLines(original)
	b := splitLines(formatted)
	hunks := buildHunks(a, b, myers(a, b))
	if len(hunks) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\t(original)\n", path)
	fmt.Fprintf(&sb, "+++ %s\t(formatted)\n", path)
	for _, h := range hunks {
		fmt.Fprintf(&sb, "@@ -%s +%s @@\n", hunkRange(h.oldStart, h.oldCount), hunkRange(h.newStart, h.newCount))
		for _, l := range h.lines {
			sb.WriteString(l)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func hunkRange(start, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d", start)
	}
	if count == 0 {
		// пустой диапазон указывает на строку перед вставкой
		return fmt.Sprintf("%d,0", start-1)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

// splitLines drops line terminators, "\r\n" included.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// myers computes a shortest edit script (Myers 1986, greedy forward pass
// with a saved trace for backtracking).
func myers(a, b []string) []edit {
	n, m := len(a), len(b)
	maxD := n + m
	offset := maxD
	v := make([]int, 2*maxD+2)
	var trace [][]int

	for d := 0; d <= maxD; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				return backtrack(trace, a, b, offset)
			}
		}
	}
	return nil
}

func backtrack(trace [][]int, a, b []string, offset int) []edit {
	x, y := len(a), len(b)
	var edits []edit
	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y
		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[offset+prevK]
		prevY := prevX - prevK
		for x > prevX && y > prevY {
			x--
			y--
			edits = append(edits, edit{kind: editKeep, a: x, b: y})
		}
		if d > 0 {
			if x == prevX {
				edits = append(edits, edit{kind: editInsert, a: x, b: prevY})
			} else {
				edits = append(edits, edit{kind: editDelete, a: prevX, b: y})
			}
		}
		x, y = prevX, prevY
	}
	for i, j := 0, len(edits)-1; i < j; i, j = i+1, j-1 {
		edits[i], edits[j] = edits[j], edits[i]
	}
	return edits
}

func buildHunks(a, b []string, edits []edit) []hunk {
	var hunks []hunk
	i := 0
	for i < len(edits) {
		for i < len(edits) && edits[i].kind == editKeep {
			i++
		}
		if i == len(edits) {
			break
		}
		start := max(0, i-diffContext)
		end := i
		// растягиваем, пока между изменениями не больше 2*context общих строк
		for end < len(edits) {
			if edits[end].kind != editKeep {
				end++
				continue
			}
			run := end
			for run < len(edits) && edits[run].kind == editKeep {
				run++
			}
			if run == len(edits) || run-end > 2*diffContext {
				end = min(run, end+diffContext)
				break
			}
			end = run
		}

		h := hunk{oldStart: edits[start].a + 1, newStart: edits[start].b + 1}
		for _, e := range edits[start:end] {
			switch e.kind {
			case editKeep:
				h.lines = append(h.lines, " "+a[e.a])
				h.oldCount++
				h.newCount++
			case editDelete:
				h.lines = append(h.lines, "-"+a[e.a])
				h.oldCount++
			case editInsert:
				h.lines = append(h.lines, "+"+b[e.b])
				h.newCount++
			}
		}
		hunks = append(hunks, h)
		i = end
	}
	return hunks
}
