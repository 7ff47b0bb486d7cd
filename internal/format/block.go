package format

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/doc"
)

// block: последовательность строк, разделённых HardLine. Пустая строка
// в начале блока и две подряд не выводятся.
type block struct {
	lines []doc.Doc
}

func (b *block) add(d doc.Doc) {
	b.lines = append(b.lines, d)
}

func (b *block) blank() {
	if len(b.lines) == 0 || b.lines[len(b.lines)-1] == nil {
		return
	}
	b.lines = append(b.lines, nil)
}

func (b *block) empty() bool {
	return len(b.lines) == 0
}

// leading выводит комментарии и пустые строки над узлом.
func (b *block) leading(t *ast.Trivia) {
	for _, c := range t.Leading {
		if c.BlankBefore {
			b.blank()
		}
		b.add(doc.Text(c.Text))
	}
	if t.BlankBefore {
		b.blank()
	}
}

// row adds a node with its trivia: leading lines, body, inline comment.
func (b *block) row(t *ast.Trivia, body doc.Doc) {
	b.leading(t)
	b.add(doc.Concat{body, inline(t.Inline)})
}

// comments adds free-standing comments (before end, after the last unit).
func (b *block) comments(cs []ast.Comment) {
	for _, c := range cs {
		if c.BlankBefore {
			b.blank()
		}
		b.add(doc.Text(c.Text))
	}
}

func (b *block) doc() doc.Doc {
	end := len(b.lines)
	for end > 0 && b.lines[end-1] == nil {
		end--
	}
	out := make(doc.Concat, 0, 2*end)
	for i, line := range b.lines[:end] {
		if i > 0 {
			out = append(out, doc.HardLine{})
		}
		if line != nil {
			out = append(out, line)
		}
	}
	return out
}

// nest: блок на уровень глубже, начиная с новой строки.
func (b *block) nest() doc.Doc {
	if b.empty() {
		return doc.Empty
	}
	return doc.Indent{Levels: 1, Body: doc.Concat{doc.HardLine{}, b.doc()}}
}

// inline: комментарий в конце строки; после него строка обязана закончиться.
func inline(text string) doc.Doc {
	if text == "" {
		return doc.Empty
	}
	return doc.Concat{doc.BreakParent{}, doc.Space, doc.Text(text)}
}

// leadDocs: строки над строкой таблицы; top: учитывать пустую строку сверху.
func leadDocs(t *ast.Trivia, top bool) []doc.Doc {
	var out []doc.Doc
	for i, c := range t.Leading {
		if c.BlankBefore && (top || i > 0) {
			out = append(out, doc.Empty)
		}
		out = append(out, doc.Text(c.Text))
	}
	if t.BlankBefore && (top || len(t.Leading) > 0) {
		out = append(out, doc.Empty)
	}
	return out
}

// hasBlank reports whether the trivia carries any blank line.
func hasBlank(t *ast.Trivia) bool {
	if t.BlankBefore {
		return true
	}
	for _, c := range t.Leading {
		if c.BlankBefore {
			return true
		}
	}
	return false
}

// commentLines turns free-standing comments into table-independent lines.
func commentLines(cs []ast.Comment) doc.Doc {
	var b block
	b.comments(cs)
	return b.doc()
}
