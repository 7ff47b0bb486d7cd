package driver

import (
	"fmt"
	"io"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.All(),
		Bag:     bag,
	}, nil
}

// DumpTokens writes one token per line: position, kind, text and the
// number of leading trivia pieces.
func DumpTokens(w io.Writer, res *TokenizeResult) error {
	for _, tok := range res.Tokens {
		start, _ := res.FileSet.Resolve(tok.Span)
		line := fmt.Sprintf("%d:%d\t%s\t%q", start.Line, start.Col, tok.Kind, tok.Text)
		if n := len(tok.Leading); n > 0 {
			line += fmt.Sprintf("\ttrivia=%d", n)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
