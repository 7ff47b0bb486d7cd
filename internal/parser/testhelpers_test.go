package parser

import (
	"fmt"
	"strings"
	"testing"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.DesignFile, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.vhd", []byte(input)))
	bag := diag.NewBag(100)
	return Parse(file, bag), bag
}

// parseOK разбирает вход и падает при любой ошибке.
func parseOK(t *testing.T, input string) *ast.DesignFile {
	t.Helper()
	f, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	return f
}

// archStmts оборачивает операторы в архитектуру и возвращает их.
func archStmts(t *testing.T, body string) []ast.ConcurrentStmt {
	t.Helper()
	f := parseOK(t, "architecture rtl of e is\nbegin\n"+body+"\nend architecture;\n")
	return f.Units[0].(*ast.Architecture).Stmts
}

// processStmts оборачивает операторы в процесс и возвращает их.
func processStmts(t *testing.T, body string) []ast.SequentialStmt {
	t.Helper()
	stmts := archStmts(t, "process\nbegin\n"+body+"\nend process;")
	return stmts[0].(*ast.Process).Stmts
}

func dump(f *ast.DesignFile) string {
	var sb strings.Builder
	ast.Dump(&sb, f)
	return sb.String()
}
