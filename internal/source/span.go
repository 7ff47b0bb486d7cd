package source

import (
	"fmt"
)

// Span is the half-open byte range [Start, End) of one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Slice returns the text under s; ok is false when s does not fit content.
func (s Span) Slice(content []byte) (text string, ok bool) {
	if s.Start > s.End || int(s.End) > len(content) {
		return "", false
	}
	return string(content[s.Start:s.End]), true
}

// Cover returns the smallest span containing both s and other. Spans of
// different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}
