package format

import (
	"errors"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/casing"
	"vhdlfmt/internal/config"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/doc"
	"vhdlfmt/internal/layout"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
)

// ErrSyntax is returned when the source has parse errors; such files are
// never formatted.
var ErrSyntax = errors.New("source has syntax errors")

type printer struct {
	cfg config.Config
	tr  *casing.Transform
}

func newPrinter(f *ast.DesignFile, cfg config.Config) *printer {
	p := &printer{cfg: cfg, tr: cfg.Transform()}
	collectConstants(f, p.tr)
	return p
}

// Document builds the document for f. The result ends without a newline.
func Document(f *ast.DesignFile, cfg config.Config) doc.Doc {
	return newPrinter(f, cfg).file(f)
}

// LayoutOptions maps the config to layout options with the given newline.
func LayoutOptions(cfg config.Config, newline string) layout.Options {
	return layout.Options{
		Width:      cfg.LineLength,
		IndentSize: cfg.IndentSize,
		UseTabs:    cfg.UseTabs(),
		Newline:    newline,
	}
}

// Render formats f with an explicit newline sequence. Non-empty output ends
// with exactly one newline; an empty file renders as "".
func Render(f *ast.DesignFile, cfg config.Config, newline string) string {
	return RenderDocument(Document(f, cfg), cfg, newline)
}

// RenderDocument lays out a document built by Document.
func RenderDocument(d doc.Doc, cfg config.Config, newline string) string {
	out := layout.Render(d, LayoutOptions(cfg, newline))
	if out == "" {
		return ""
	}
	return out + newline
}

// FormatFile formats f; eol "auto" resolves to LF.
func FormatFile(f *ast.DesignFile, cfg config.Config) string {
	return Render(f, cfg, cfg.Newline(false))
}

// FormatSource parses and formats a source file. Diagnostics go to bag; eol
// "auto" follows the line endings the file was read with.
func FormatSource(file *source.File, cfg config.Config, bag *diag.Bag) (string, error) {
	f := parser.Parse(file, bag)
	if bag.HasErrors() {
		return "", ErrSyntax
	}
	crlf := file.Flags&source.FileNormalizedCRLF != 0
	return Render(f, cfg, cfg.Newline(crlf)), nil
}

// file: units separated by one blank line, then trailing comments.
func (p *printer) file(f *ast.DesignFile) doc.Doc {
	var b block
	for _, u := range f.Units {
		b.blank()
		b.add(p.unit(u))
	}
	b.comments(f.Trailing)
	return b.doc()
}
