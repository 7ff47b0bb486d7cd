package format

import (
	"bytes"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/config"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
)

// CheckRoundTrip formats src, parses the output and formats it again. It
// reports whether the unit outline and the text are both fixed points; on
// failure reason names the first broken step.
func CheckRoundTrip(src []byte, cfg config.Config) (ok bool, reason string) {
	first, outline1, err := formatOnce("input.vhd", src, cfg)
	if err != nil {
		return false, "input: " + err.Error()
	}
	second, outline2, err := formatOnce("formatted.vhd", []byte(first), cfg)
	if err != nil {
		return false, "formatted output does not parse: " + err.Error()
	}
	if outline1 != outline2 {
		return false, "unit structure changed after formatting"
	}
	if first != second {
		return false, "formatting is not idempotent"
	}
	return true, ""
}

func formatOnce(name string, src []byte, cfg config.Config) (out, outline string, err error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, src))
	bag := diag.NewBag(100)
	f := parser.Parse(file, bag)
	if bag.HasErrors() {
		return "", "", ErrSyntax
	}
	var buf bytes.Buffer
	ast.Dump(&buf, f)
	return Render(f, cfg, cfg.Newline(false)), buf.String(), nil
}
