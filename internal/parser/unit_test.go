package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
)

func TestParseEntityWithPorts(t *testing.T) {
	input := `library ieee;
use ieee.std_logic_1164.all;

entity counter is
  generic (WIDTH : natural := 8);
  port (clk, rst : in std_logic;
        count : out std_logic_vector(WIDTH - 1 downto 0));
end entity counter;
`
	f := parseOK(t, input)
	if len(f.Units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(f.Units))
	}
	ent, ok := f.Units[0].(*ast.Entity)
	if !ok {
		t.Fatalf("expected *ast.Entity, got %T", f.Units[0])
	}
	if ent.Name != "counter" || ent.EndLabel != "counter" {
		t.Errorf("name/end label = %q/%q", ent.Name, ent.EndLabel)
	}
	if len(ent.Context) != 2 {
		t.Fatalf("expected 2 context items, got %d", len(ent.Context))
	}
	if _, ok := ent.Context[0].(*ast.LibraryClause); !ok {
		t.Errorf("context[0] = %T, want *ast.LibraryClause", ent.Context[0])
	}
	use := ent.Context[1].(*ast.UseClause)
	if _, ok := use.Names[0].(*ast.SelectedExpr); !ok {
		t.Errorf("use name = %T, want *ast.SelectedExpr", use.Names[0])
	}

	if ent.Generics == nil || len(ent.Generics.Params) != 1 {
		t.Fatalf("expected one generic")
	}
	g := ent.Generics.Params[0]
	if diff := cmp.Diff([]string{"WIDTH"}, g.Names); diff != "" {
		t.Errorf("generic names mismatch (-want +got):\n%s", diff)
	}
	if g.Default == nil {
		t.Errorf("generic default missing")
	}

	ports := ent.Ports.Ports
	if len(ports) != 2 {
		t.Fatalf("expected 2 port rows, got %d", len(ports))
	}
	if diff := cmp.Diff([]string{"clk", "rst"}, ports[0].Names); diff != "" {
		t.Errorf("port names mismatch (-want +got):\n%s", diff)
	}
	if ports[0].Mode != "in" || ports[1].Mode != "out" {
		t.Errorf("modes = %q, %q", ports[0].Mode, ports[1].Mode)
	}
	ic, ok := ports[1].Subtype.Constraint.(*ast.IndexConstraint)
	if !ok {
		t.Fatalf("expected index constraint, got %T", ports[1].Subtype.Constraint)
	}
	rng, ok := ic.Ranges[0].(*ast.BinaryExpr)
	if !ok || rng.Text != "downto" {
		t.Errorf("constraint range = %#v", ic.Ranges[0])
	}
}

func TestParseArchitectureAndPackages(t *testing.T) {
	input := `package p is
  constant C : integer := 4;
  function f(x : integer) return integer;
end package p;

package body p is
  function f(x : integer) return integer is
  begin
    return x + C;
  end function f;
end package body p;

architecture rtl of counter is
  signal s : std_logic;
begin
  s <= '1';
end rtl;
`
	f := parseOK(t, input)
	if len(f.Units) != 3 {
		t.Fatalf("expected 3 units, got %d\n%s", len(f.Units), dump(f))
	}
	pkg := f.Units[0].(*ast.Package)
	if len(pkg.Decls) != 2 {
		t.Fatalf("package decls = %d", len(pkg.Decls))
	}
	if _, ok := pkg.Decls[1].(*ast.SubprogramDecl); !ok {
		t.Errorf("decl[1] = %T, want *ast.SubprogramDecl", pkg.Decls[1])
	}
	body := f.Units[1].(*ast.PackageBody)
	fn := body.Decls[0].(*ast.SubprogramBody)
	if fn.EndLabel != "f" || len(fn.Stmts) != 1 {
		t.Errorf("function body = %+v", fn)
	}
	arch := f.Units[2].(*ast.Architecture)
	if arch.EntityName != "counter" || arch.EndLabel != "rtl" {
		t.Errorf("arch = %q of %q", arch.Name, arch.EntityName)
	}
	if len(arch.Decls) != 1 || len(arch.Stmts) != 1 {
		t.Errorf("arch decls/stmts = %d/%d", len(arch.Decls), len(arch.Stmts))
	}
}

func TestParseEndLabelMismatchWarns(t *testing.T) {
	f, bag := parseSource(t, "entity a is\nend entity b;\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	if len(f.Units) != 1 {
		t.Fatalf("expected the unit to be kept")
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynEndLabelMismatch || items[0].Severity != diag.SevWarning {
		t.Errorf("diagnostics = %s", diagnosticsSummary(bag))
	}
}

func TestParseSyntaxErrorsReported(t *testing.T) {
	cases := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing semicolon", "entity a is\nend entity a\n", diag.SynExpectSemicolon},
		{"garbage at top level", "foo bar;\n", diag.SynUnexpectedTopLevel},
		{"unclosed port clause", "entity a is\n port (x : in bit;\nend a;\n", diag.SynExpectIdentifier},
		{"bad statement", "architecture r of e is\nbegin\n  => x;\nend r;\n", diag.SynExpectStatement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, bag := parseSource(t, tc.input)
			if !bag.HasErrors() {
				t.Fatalf("expected errors")
			}
			found := false
			for _, d := range bag.Items() {
				if d.Code == tc.code {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %s, got %s", tc.code.ID(), diagnosticsSummary(bag))
			}
		})
	}
}

func TestParseEmptyFile(t *testing.T) {
	f := parseOK(t, "")
	if len(f.Units) != 0 || len(f.Trailing) != 0 {
		t.Errorf("expected empty design file, got %s", dump(f))
	}
}
