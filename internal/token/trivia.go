package token

import (
	"strings"

	"vhdlfmt/internal/source"
)

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment  // -- ...
	TriviaBlockComment // /* ... */
)

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is a line or block comment.
func (tr Trivia) IsComment() bool {
	return tr.Kind == TriviaLineComment || tr.Kind == TriviaBlockComment
}

// Newlines counts line breaks carried by the trivia.
func (tr Trivia) Newlines() int {
	switch tr.Kind {
	case TriviaNewline:
		return len(tr.Text)
	case TriviaBlockComment:
		return strings.Count(tr.Text, "\n")
	}
	return 0
}
