// Package doc defines the document algebra produced by the printer and
// consumed by the layout engine: text, breaks, indentation, groups and
// aligned tables.
package doc

// Doc is one of Text, Line, SoftLine, HardLine, BreakParent, Indent, Group,
// Concat or Table. Nodes are values and never mutated after construction.
type Doc interface {
	docNode()
}

// Text is literal content. A newline inside Text is written verbatim
// (block comments) and forces the enclosing groups to break.
type Text string

// Line is a space in flat mode and a newline plus indentation when broken.
type Line struct{}

// SoftLine renders as nothing in flat mode.
type SoftLine struct{}

// HardLine always breaks and forces every enclosing group to break.
type HardLine struct{}

// BreakParent renders nothing but forces every enclosing group to break.
type BreakParent struct{}

// Indent adds Levels indentation levels to breaks inside Body.
type Indent struct {
	Levels int
	Body   Doc
}

// Group is rendered flat when it fits on the current line, broken otherwise.
type Group struct {
	Body Doc
}

// Concat is an ordered composition.
type Concat []Doc

// Table is a block of aligned rows. Widths[c] is the pad width of column c;
// a zero width (or a nil Widths) leaves the column unpadded.
type Table struct {
	Rows   []Row
	Widths []int
	Sep    Doc // between rows
}

// Row is one table line. Leading docs are rendered on their own lines above
// the row; Tail follows the last cell without a separator.
type Row struct {
	Leading []Doc
	Cells   []Doc
	Tail    Doc
}

func (Text) docNode()        {}
func (Line) docNode()        {}
func (SoftLine) docNode()    {}
func (HardLine) docNode()    {}
func (BreakParent) docNode() {}
func (Indent) docNode()      {}
func (Group) docNode()       {}
func (Concat) docNode()      {}
func (Table) docNode()       {}
