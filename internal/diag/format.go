package diag

import (
	"fmt"
	"io"

	"vhdlfmt/internal/source"
)

// Render writes one line per diagnostic in the form
// <path>:<line>:<col>: <SEV> <CODE>: <message>, followed by indented notes.
func Render(w io.Writer, bag *Bag, fs *source.FileSet, useColor bool) {
	for _, d := range bag.Items() {
		sev := d.Severity.paint(useColor)
		fmt.Fprintf(w, "%s: %s %s: %s\n", position(fs, d.Primary), sev, d.Code.ID(), d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s: %s\n", position(fs, n.Span), n.Msg)
		}
	}
}

func position(fs *source.FileSet, sp source.Span) string {
	if fs == nil {
		return sp.String()
	}
	f := fs.Get(sp.File)
	if f == nil {
		return sp.String()
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
}
