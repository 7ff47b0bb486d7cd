package layout

import (
	"strings"
	"testing"

	"vhdlfmt/internal/doc"
)

func opts(width int) Options {
	return Options{Width: width, IndentSize: 2, Newline: "\n"}
}

// portClause: "port (" rows ");" как у принтера.
func portClause(rows ...doc.Row) doc.Doc {
	return doc.Bracket("port (", doc.Table{Rows: rows, Sep: doc.Line{}}, ");")
}

func TestGroupFitsExactly(t *testing.T) {
	d := doc.Group{Body: doc.Concat{doc.Text("abc"), doc.Line{}, doc.Text("def")}}
	if got := Render(d, opts(7)); got != "abc def" {
		t.Errorf("exact fit: got %q", got)
	}
	if got := Render(d, opts(6)); got != "abc\ndef" {
		t.Errorf("one column short: got %q", got)
	}
}

func TestHardLineForcesBreak(t *testing.T) {
	d := doc.Group{Body: doc.Concat{doc.Text("a"), doc.Line{}, doc.Text("b"), doc.HardLine{}, doc.Text("c")}}
	if got := Render(d, opts(100)); got != "a\nb\nc" {
		t.Errorf("got %q", got)
	}
	bp := doc.Group{Body: doc.Concat{doc.Text("x -- c"), doc.BreakParent{}, doc.Line{}, doc.Text("y")}}
	if got := Render(bp, opts(100)); got != "x -- c\ny" {
		t.Errorf("break parent: got %q", got)
	}
}

func TestNestedGroupsAreIndependent(t *testing.T) {
	inner := doc.Group{Body: doc.Concat{doc.Text("f("), doc.SoftLine{}, doc.Text("x"), doc.SoftLine{}, doc.Text(")")}}
	outer := doc.Group{Body: doc.Concat{
		doc.Text("long_prefix"),
		doc.Indent{Levels: 1, Body: doc.Concat{doc.Line{}, inner}},
	}}
	got := Render(outer, opts(12))
	if got != "long_prefix\n  f(x)" {
		t.Errorf("got %q", got)
	}
}

func TestIndentSumsAndTabs(t *testing.T) {
	d := doc.Concat{
		doc.Text("a"),
		doc.Indent{Levels: 1, Body: doc.Concat{
			doc.HardLine{}, doc.Text("b"),
			doc.Indent{Levels: 1, Body: doc.Concat{doc.HardLine{}, doc.Text("c")}},
		}},
	}
	if got := Render(d, Options{Width: 80, IndentSize: 4, Newline: "\n"}); got != "a\n    b\n        c" {
		t.Errorf("spaces: got %q", got)
	}
	if got := Render(d, Options{Width: 80, IndentSize: 4, UseTabs: true, Newline: "\n"}); got != "a\n\tb\n\t\tc" {
		t.Errorf("tabs: got %q", got)
	}
}

// Отступ строки задаётся переносом, а не первым текстом строки.
func TestIndentComesFromTheBreak(t *testing.T) {
	stmt := doc.Group{Body: doc.Indent{Levels: 1, Body: doc.Concat{
		doc.Text("y <= alpha and"), doc.Line{}, doc.Text("beta"),
	}}}
	d := doc.Concat{
		doc.Text("begin"),
		doc.Indent{Levels: 1, Body: doc.Concat{doc.HardLine{}, stmt, doc.Text(";")}},
		doc.HardLine{}, doc.Text("end;"),
	}
	tests := []struct {
		width int
		want  string
	}{
		{80, "begin\n  y <= alpha and beta;\nend;"},
		{20, "begin\n  y <= alpha and\n    beta;\nend;"},
	}
	for _, tt := range tests {
		if got := Render(d, opts(tt.width)); got != tt.want {
			t.Errorf("width %d: got %q, want %q", tt.width, got, tt.want)
		}
	}
}

func TestGroupFitCountsTrailingText(t *testing.T) {
	// "vv := alpha and beta;" is 21 columns; the ';' follows the group.
	d := doc.Concat{
		doc.Text("vv := "),
		doc.Group{Body: doc.Indent{Levels: 1, Body: doc.Concat{doc.Text("alpha and"), doc.Line{}, doc.Text("beta")}}},
		doc.Text(";"),
	}
	if got := Render(d, opts(21)); got != "vv := alpha and beta;" {
		t.Errorf("exact fit: got %q", got)
	}
	if got := Render(d, opts(20)); got != "vv := alpha and\n  beta;" {
		t.Errorf("one column short: got %q", got)
	}
}

func TestTrailingInlineCommentDoesNotForceBreak(t *testing.T) {
	d := doc.Concat{
		doc.Group{Body: doc.Concat{doc.Text("a"), doc.Line{}, doc.Text("b")}},
		doc.Text(";"),
		doc.BreakParent{}, doc.Text(" -- a long trailing comment"),
	}
	if got := Render(d, opts(10)); got != "a b; -- a long trailing comment" {
		t.Errorf("got %q", got)
	}
}

func TestTabsCountAsIndentSizeColumns(t *testing.T) {
	g := doc.Group{Body: doc.Concat{doc.Text("12345"), doc.Line{}, doc.Text("6")}}
	d := doc.Indent{Levels: 1, Body: doc.Concat{doc.HardLine{}, g}}
	// 4 колонки отступа + 7 = 11 > 10
	if got := Render(d, Options{Width: 10, IndentSize: 4, UseTabs: true, Newline: "\n"}); got != "\n\t12345\n\t6" {
		t.Errorf("got %q", got)
	}
}

func TestNoTrailingWhitespaceAndEmptyBlankLines(t *testing.T) {
	d := doc.Concat{doc.Text("x"), doc.Indent{Levels: 2, Body: doc.Concat{
		doc.HardLine{}, doc.Text("a "), doc.HardLine{}, doc.HardLine{}, doc.Text("b"),
	}}}
	got := Render(d, opts(80))
	if got != "x\n    a\n\n    b" {
		t.Errorf("got %q", got)
	}
}

func TestCRLFNewline(t *testing.T) {
	d := doc.Lines(doc.Text("a"), doc.Text("b"))
	if got := Render(d, Options{Width: 80, IndentSize: 2, Newline: "\r\n"}); got != "a\r\nb" {
		t.Errorf("got %q", got)
	}
}

func TestWideRunesCountDouble(t *testing.T) {
	g := doc.Group{Body: doc.Concat{doc.Text("日本"), doc.Line{}, doc.Text("x")}}
	// "日本 x" занимает 6 колонок
	if got := Render(g, opts(6)); got != "日本 x" {
		t.Errorf("fits: got %q", got)
	}
	if got := Render(g, opts(5)); got != "日本\nx" {
		t.Errorf("breaks: got %q", got)
	}
}

func TestTableFlatAndPadded(t *testing.T) {
	rows := []doc.Row{
		{Cells: []doc.Doc{doc.Text("clk"), doc.Text(":"), doc.Text("in"), doc.Text("std_logic")}, Tail: doc.Text(";")},
		{Cells: []doc.Doc{doc.Text("count"), doc.Text(":"), doc.Text("out"), doc.Text("natural")}},
	}
	flat := portClause(rows...)
	if got := Render(flat, opts(100)); got != "port ( clk : in std_logic; count : out natural );" {
		t.Errorf("flat: got %q", got)
	}

	padded := doc.Bracket("port (", doc.Table{Rows: rows, Widths: []int{5, 1, 3, 9}, Sep: doc.Line{}}, ");")
	want := strings.Join([]string{
		"port (",
		"  clk   : in  std_logic;",
		"  count : out natural",
		");",
	}, "\n")
	if got := Render(padded, opts(30)); got != want {
		t.Errorf("padded:\n%s\nwant:\n%s", got, want)
	}
}

func TestTableEmptyColumnsAndLeading(t *testing.T) {
	rows := []doc.Row{
		{
			Leading: []doc.Doc{doc.Text("-- first")},
			Cells:   []doc.Doc{doc.Text("A"), doc.Text(":"), doc.Empty, doc.Text("natural"), doc.Text(":= 1")},
			Tail:    doc.Text(";"),
		},
		{
			Leading: []doc.Doc{doc.Empty},
			Cells:   []doc.Doc{doc.Text("LONG"), doc.Text(":"), doc.Empty, doc.Text("bit")},
		},
	}
	d := doc.Table{Rows: rows, Widths: []int{4, 1, 0, 7, 4}, Sep: doc.Line{}}
	want := strings.Join([]string{
		"-- first",
		"A    : natural := 1;",
		"",
		"LONG : bit",
	}, "\n")
	if got := Render(d, opts(80)); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFlatWidth(t *testing.T) {
	cases := []struct {
		name   string
		d      doc.Doc
		width  int
		forced bool
	}{
		{"text", doc.Text("abc"), 3, false},
		{"line", doc.Concat{doc.Text("a"), doc.Line{}, doc.Text("b")}, 3, false},
		{"softline", doc.Concat{doc.Text("a"), doc.SoftLine{}, doc.Text("b")}, 2, false},
		{"hardline", doc.Concat{doc.Text("a"), doc.HardLine{}}, 1, true},
		{"multiline text", doc.Text("/* a\n b */"), 0, true},
		{"table", doc.Table{Rows: []doc.Row{
			{Cells: []doc.Doc{doc.Text("a"), doc.Empty, doc.Text("b")}, Tail: doc.Text(";")},
			{Cells: []doc.Doc{doc.Text("c")}},
		}, Sep: doc.Line{}}, 6, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, f := FlatWidth(tc.d)
			if w != tc.width || f != tc.forced {
				t.Errorf("FlatWidth = (%d, %v), want (%d, %v)", w, f, tc.width, tc.forced)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	d := portClause(doc.Row{Cells: []doc.Doc{doc.Text("a"), doc.Text(":"), doc.Text("in"), doc.Text("bit")}})
	if Render(d, opts(10)) != Render(d, opts(10)) {
		t.Errorf("two renders differ")
	}
}
