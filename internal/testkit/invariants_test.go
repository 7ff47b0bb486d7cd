package testkit

import (
	"strings"
	"testing"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

func lex(t *testing.T, src string) (*source.File, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.vhd", []byte(src)))
	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return file, lx.All()
}

func TestCheckTokenInvariants(t *testing.T) {
	for _, src := range []string{
		"",
		"entity e is end;",
		"-- only a comment\n",
		"signal s : std_logic_vector(7 downto 0) := X\"FF\"; /* block\ncomment */\n",
		"a <= b when c = '1' else \\ext id\\;",
	} {
		file, toks := lex(t, src)
		if err := CheckTokenInvariants(file, toks); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestCheckTokenInvariantsDetectsBrokenText(t *testing.T) {
	file, toks := lex(t, "entity e is end;")
	toks[1].Text = "x"
	err := CheckTokenInvariants(file, toks)
	if err == nil || !strings.Contains(err.Error(), "differs from source") {
		t.Fatalf("want text mismatch, got %v", err)
	}
}
