package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// writer accumulates output. A break records the indentation in effect at
// that point; it is written lazily, at the first text of the next line, so
// blank lines stay empty.
type writer struct {
	opt         Options
	buf         []byte
	col         int
	pending     int
	atLineStart bool
}

func newWriter(opt Options) *writer {
	return &writer{opt: opt, atLineStart: true}
}

// column returns the column the next text would start at.
func (w *writer) column() int {
	if w.atLineStart {
		return w.pending * w.opt.IndentSize
	}
	return w.col
}

func (w *writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	indent := w.pending
	if w.opt.UseTabs {
		for range indent {
			w.buf = append(w.buf, '\t')
		}
	} else {
		for range indent * w.opt.IndentSize {
			w.buf = append(w.buf, ' ')
		}
	}
	w.col = indent * w.opt.IndentSize
	w.atLineStart = false
}

// text пишет строку; строки после '\n' внутри текста идут как есть, без отступа.
func (w *writer) text(s string) {
	if s == "" {
		return
	}
	first, rest, multi := strings.Cut(s, "\n")
	if first != "" {
		w.writeIndent()
		w.buf = append(w.buf, first...)
		w.col += runewidth.StringWidth(first)
	}
	for multi {
		w.newline(0)
		first, rest, multi = strings.Cut(rest, "\n")
		w.buf = append(w.buf, first...)
		w.col = runewidth.StringWidth(first)
		w.atLineStart = false
	}
}

// spaces пишет n пробелов (выравнивание колонок).
func (w *writer) spaces(n int) {
	if n <= 0 {
		return
	}
	w.writeIndent()
	for range n {
		w.buf = append(w.buf, ' ')
	}
	w.col += n
}

// newline trims trailing blanks and ends the line; the next line starts at
// the given indentation level.
func (w *writer) newline(indent int) {
	end := len(w.buf)
	for end > 0 && (w.buf[end-1] == ' ' || w.buf[end-1] == '\t') {
		end--
	}
	w.buf = append(w.buf[:end], w.opt.Newline...)
	w.col = 0
	w.pending = indent
	w.atLineStart = true
}

func (w *writer) String() string {
	end := len(w.buf)
	for end > 0 && (w.buf[end-1] == ' ' || w.buf[end-1] == '\t') {
		end--
	}
	return string(w.buf[:end])
}
