package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"vhdlfmt/internal/ast"
)

func TestTriviaAttachesToRows(t *testing.T) {
	input := `-- file header

-- counter entity
entity counter is
  port (
    -- clock input
    clk : in std_logic; -- rising edge

    count : out natural  -- current value
    -- trailing port comment
  );
end entity;
-- the end
`
	f := parseOK(t, input)
	ent := f.Units[0].(*ast.Entity)
	wantLead := []ast.Comment{
		{Text: "-- file header"},
		{Text: "-- counter entity", BlankBefore: true},
	}
	if diff := cmp.Diff(wantLead, ent.Leading); diff != "" {
		t.Errorf("entity leading mismatch (-want +got):\n%s", diff)
	}

	clk := ent.Ports.Ports[0]
	if diff := cmp.Diff([]ast.Comment{{Text: "-- clock input"}}, clk.Leading); diff != "" {
		t.Errorf("clk leading mismatch (-want +got):\n%s", diff)
	}
	if clk.Inline != "-- rising edge" {
		t.Errorf("clk inline = %q", clk.Inline)
	}

	count := ent.Ports.Ports[1]
	if !count.BlankBefore {
		t.Errorf("count should keep the blank line above it")
	}
	if count.Inline != "-- current value" {
		t.Errorf("count inline = %q", count.Inline)
	}
	if diff := cmp.Diff([]ast.Comment{{Text: "-- trailing port comment"}}, ent.Ports.Tail); diff != "" {
		t.Errorf("port tail mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ast.Comment{{Text: "-- the end"}}, f.Trailing); diff != "" {
		t.Errorf("trailing mismatch (-want +got):\n%s", diff)
	}
}

func TestTriviaStatementComments(t *testing.T) {
	stmts := processStmts(t, `
    a := 1; -- first

    -- before b
    b := 2;
    -- dangling
`)
	if len(stmts) != 2 {
		t.Fatalf("stmts = %d", len(stmts))
	}
	if stmts[0].Comments().Inline != "-- first" {
		t.Errorf("inline = %q", stmts[0].Comments().Inline)
	}
	b := stmts[1].Comments()
	if !b.BlankBefore && !(len(b.Leading) == 1 && b.Leading[0].BlankBefore) {
		t.Errorf("blank line above the comment was lost: %+v", b)
	}
	if len(b.Leading) != 1 || b.Leading[0].Text != "-- before b" {
		t.Errorf("leading = %+v", b.Leading)
	}
}
