package driver

import (
	"context"
	"os"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
)

type ParseResult struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	AST     *ast.DesignFile
	Bag     *diag.Bag
	Err     error // I/O error; syntax errors are in Bag
}

func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddRaw(filePath, data, 0))
	bag := diag.NewBag(maxDiagnostics)
	return &ParseResult{
		Path:    filePath,
		FileSet: fs,
		File:    file,
		AST:     parser.Parse(file, bag),
		Bag:     bag,
	}, nil
}

// ParsePaths parses every VHDL file under paths in parallel. Results keep
// the sorted file order.
func ParsePaths(ctx context.Context, paths []string, maxDiagnostics, jobs int) ([]ParseResult, error) {
	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]ParseResult, len(files))
	err = runParallel(ctx, files, jobs, func(_ context.Context, i int, path string) error {
		res, err := Parse(path, maxDiagnostics)
		if err != nil {
			results[i] = ParseResult{Path: path, Err: err}
			return nil
		}
		results[i] = *res
		return nil
	})
	return results, err
}
