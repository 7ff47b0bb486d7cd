// Package testkit holds invariant checks shared by the lexer, parser and
// fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

// CheckTokenInvariants runs a minimal set of invariants on a token stream:
// 1) the stream ends with exactly one EOF
// 2) every token and trivia span lies in sf and points at sf
// 3) spans never go backwards
// 4) Text is exactly the source slice under the span
func CheckTokenInvariants(sf *source.File, toks []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		return fmt.Errorf("token stream does not end with EOF")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	check := func(what string, sp source.Span, text string) error {
		if sp.File != sf.ID {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, sf.ID)
		}
		got, ok := sp.Slice(sf.Content)
		if !ok {
			return fmt.Errorf("%s span %v out of bounds (len %d)", what, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("%s span %v starts before previous end %d", what, sp, prevEnd)
		}
		if got != text {
			return fmt.Errorf("%s text %q differs from source %q at %v", what, text, got, sp)
		}
		prevEnd = sp.End
		return nil
	}

	for i, tok := range toks {
		if tok.Kind == token.EOF && i != len(toks)-1 {
			return fmt.Errorf("EOF at position %d of %d", i, len(toks))
		}
		for _, tr := range tok.Leading {
			if err := check("trivia", tr.Span, tr.Text); err != nil {
				return err
			}
		}
		if err := check(tok.Kind.String(), tok.Span, tok.Text); err != nil {
			return err
		}
	}
	if last := toks[len(toks)-1].Span; last.End != lenContent {
		return fmt.Errorf("EOF at %d, content ends at %d", last.End, lenContent)
	}
	return nil
}
