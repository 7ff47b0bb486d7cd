package ast

// Comment is a source comment kept verbatim ("-- ..." or "/* ... */").
type Comment struct {
	Text        string
	BlankBefore bool // blank line between this comment and whatever precedes it
}

// Trivia is the comment and blank-line structure bound to a row-level node.
type Trivia struct {
	Leading     []Comment
	BlankBefore bool   // blank line directly above the node (after Leading)
	Inline      string // comment on the same line, after the node's terminator
}

// Comments exposes the trivia of any row-level node.
func (t *Trivia) Comments() *Trivia { return t }

// HasComments reports whether the trivia carries any comment text.
func (t Trivia) HasComments() bool {
	return len(t.Leading) > 0 || t.Inline != ""
}

// Row is implemented by every node that occupies its own line(s).
type Row interface {
	Comments() *Trivia
}
