package doc

// Empty renders nothing.
var Empty Doc = Concat(nil)

// Space is a single literal space.
var Space Doc = Text(" ")

// IsEmpty reports whether d renders as nothing in every mode.
func IsEmpty(d Doc) bool {
	switch d := d.(type) {
	case nil:
		return true
	case Text:
		return d == ""
	case Concat:
		for _, part := range d {
			if !IsEmpty(part) {
				return false
			}
		}
		return true
	case Indent:
		return IsEmpty(d.Body)
	case Group:
		return IsEmpty(d.Body)
	}
	return false
}

// Join puts sep between the non-empty parts.
func Join(sep Doc, parts ...Doc) Doc {
	out := make(Concat, 0, 2*len(parts))
	for _, part := range parts {
		if IsEmpty(part) {
			continue
		}
		if len(out) > 0 {
			out = append(out, sep)
		}
		out = append(out, part)
	}
	return out
}

// Words joins the non-empty parts with single spaces.
func Words(parts ...Doc) Doc {
	return Join(Space, parts...)
}

// Lines joins the non-empty parts with hard lines.
func Lines(parts ...Doc) Doc {
	return Join(HardLine{}, parts...)
}

// Texts joins strings with single spaces, skipping empty ones.
func Texts(words ...string) Doc {
	parts := make([]Doc, len(words))
	for i, w := range words {
		parts[i] = Text(w)
	}
	return Words(parts...)
}

// Bracket: "open body close" on one line, or body on its own indented
// lines with close on a line of its own.
func Bracket(open string, body Doc, close string) Doc {
	return Group{Body: Concat{
		Text(open),
		Indent{Levels: 1, Body: Concat{Line{}, body}},
		Line{},
		Text(close),
	}}
}

// Wrap is Bracket without the inner spaces in flat mode: "(a, b)".
func Wrap(open string, body Doc, close string) Doc {
	return Group{Body: Concat{
		Text(open),
		Indent{Levels: 1, Body: Concat{SoftLine{}, body}},
		SoftLine{},
		Text(close),
	}}
}

// Nest indents body by one level.
func Nest(body Doc) Doc {
	return Indent{Levels: 1, Body: body}
}
