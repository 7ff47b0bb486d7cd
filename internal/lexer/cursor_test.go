package lexer

import (
	"testing"

	"vhdlfmt/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.vhd", []byte(content)))
}

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(createFile("a\nb"))
	for i, want := range []byte("a\nb") {
		if c.EOF() {
			t.Fatalf("unexpected EOF at %d", i)
		}
		if got := c.Bump(); got != want {
			t.Fatalf("byte %d: want %q, got %q", i, want, got)
		}
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("expected EOF behaviour at the end")
	}
}

func TestCursorMarkAndReset(t *testing.T) {
	c := NewCursor(createFile("entity"))
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom: %v", sp)
	}
	c.Reset(m)
	if c.Peek() != 'e' {
		t.Fatalf("Reset: got %q", c.Peek())
	}
	if !c.Eat('e') || c.Eat('x') {
		t.Fatal("Eat mismatch")
	}
	if c.PeekAt(1) != 't' || c.PeekAt(10) != 0 {
		t.Fatal("PeekAt mismatch")
	}
}

func TestCursorDelimiters(t *testing.T) {
	c := NewCursor(createFile("?/= <= */"))
	if c.Match("?/x") || !c.Match("?/=") {
		t.Fatal("Match mismatch")
	}
	if !c.EatString("?/=") || c.Off != 3 {
		t.Fatalf("EatString(?/=): off %d", c.Off)
	}
	if n := c.EatWhile(func(b byte) bool { return b == ' ' }); n != 1 {
		t.Fatalf("EatWhile took %d bytes", n)
	}
	if c.EatString("<>") || !c.EatString("<=") {
		t.Fatal("EatString(<=) mismatch")
	}
	c.Skip(100)
	if !c.EOF() || c.Off != c.Limit {
		t.Fatalf("Skip past the end: off %d, limit %d", c.Off, c.Limit)
	}
	if c.Match("*/") {
		t.Fatal("Match past the end")
	}
}
