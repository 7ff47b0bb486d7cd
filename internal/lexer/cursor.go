package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"vhdlfmt/internal/source"
)

// Cursor is a byte position in a source file. VHDL lexing is ASCII-driven:
// non-ASCII bytes only appear inside comments, strings and extended
// identifiers, where they are copied through.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32 // exclusive bound for Off
}

func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source %s is too large: %w", f.Path, err))
	}
	return Cursor{File: f, Limit: limit}
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte, or 0 at the end of the file.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt returns the byte n positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Bump consumes one byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Skip advances by n bytes, stopping at the end of the file.
func (c *Cursor) Skip(n uint32) {
	c.Off = min(c.Off+n, c.Limit)
}

// Eat consumes b if it is the current byte.
func (c *Cursor) Eat(b byte) bool {
	if c.Peek() == b && !c.EOF() {
		c.Off++
		return true
	}
	return false
}

// Match reports whether the input continues with lit.
func (c *Cursor) Match(lit string) bool {
	n := uint32(len(lit)) // #nosec G115 -- operator literals are a few bytes
	if c.Off+n > c.Limit {
		return false
	}
	return string(c.File.Content[c.Off:c.Off+n]) == lit
}

// EatString consumes lit if the input continues with it (delimiters such as
// "<=", "?/=", "*/").
func (c *Cursor) EatString(lit string) bool {
	if !c.Match(lit) {
		return false
	}
	c.Off += uint32(len(lit)) // #nosec G115 -- bounded by Match
	return true
}

// EatWhile consumes bytes while pred holds and returns how many it took.
func (c *Cursor) EatWhile(pred func(byte) bool) int {
	start := c.Off
	for !c.EOF() && pred(c.File.Content[c.Off]) {
		c.Off++
	}
	return int(c.Off - start)
}

// Mark is a saved offset for SpanFrom and Reset.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span between m and the current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset rewinds to m (backtracking over a speculative scan).
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
