package layout

// Options control how a document is laid out.
type Options struct {
	Width      int    // target line width in columns
	IndentSize int    // columns per indentation level
	UseTabs    bool   // one tab per level instead of IndentSize spaces
	Newline    string // "\n" or "\r\n"
}

// DefaultOptions matches the formatter defaults.
func DefaultOptions() Options {
	return Options{Width: 100, IndentSize: 2, Newline: "\n"}
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 100
	}
	if o.IndentSize <= 0 {
		o.IndentSize = 2
	}
	if o.Newline == "" {
		o.Newline = "\n"
	}
	return o
}
