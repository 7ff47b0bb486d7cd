package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"vhdlfmt/internal/config"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/format"
	"vhdlfmt/internal/observ"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/trace"
)

// Mode selects what happens to formatted output.
type Mode uint8

const (
	// ModeStdout returns the output in the result.
	ModeStdout Mode = iota
	// ModeWrite rewrites changed files in place.
	ModeWrite
	// ModeCheck only reports whether files would change.
	ModeCheck
)

// ErrNoSourceFiles is returned when the given paths hold no VHDL files.
var ErrNoSourceFiles = errors.New("no VHDL source files found")

// FormatOptions configures a formatting run.
type FormatOptions struct {
	Config         config.Config
	Mode           Mode
	Diff           bool // fill Result.Diff for changed files
	Verify         bool // re-parse the output and check the round trip
	Jobs           int
	MaxDiagnostics int
	Cache          *DiskCache
	Timer          *observ.Timer

	// OnResult is called once per file as soon as it is done. Calls are
	// serialized.
	OnResult func(Result)

	cfgDigest Digest
	hasDigest bool
}

// Result captures the outcome for a single file.
type Result struct {
	Path    string
	Changed bool
	Cached  bool
	Err     error
	Output  []byte
	Diff    string
	FileSet *source.FileSet
	Bag     *diag.Bag
}

// Failed reports whether the file could not be formatted.
func (r Result) Failed() bool { return r.Err != nil }

// FormatPaths formats the given files and directories (recursively
// collecting *.vhd and *.vhdl files).
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}
	return FormatFiles(ctx, files, opts)
}

// FormatFiles formats files in parallel. Per-file failures are reported in
// the results; the returned error is for cancellation and cache setup.
func FormatFiles(ctx context.Context, files []string, opts FormatOptions) ([]Result, error) {
	if err := opts.prepare(); err != nil {
		return nil, err
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "format", trace.ParentSpan(ctx))
	span.With("files", strconv.Itoa(len(files)))
	ctx = trace.WithSpan(ctx, span)

	results := make([]Result, len(files))
	var mu sync.Mutex
	err := runParallel(ctx, files, opts.Jobs, func(ctx context.Context, i int, path string) error {
		results[i] = formatFile(ctx, path, opts)
		if opts.OnResult != nil {
			mu.Lock()
			opts.OnResult(results[i])
			mu.Unlock()
		}
		return nil
	})
	span.End(summarize(results))
	return results, err
}

func (opts *FormatOptions) prepare() error {
	if opts.Cache == nil || opts.hasDigest {
		return nil
	}
	d, err := ConfigDigest(opts.Config)
	if err != nil {
		return fmt.Errorf("cache key: %w", err)
	}
	opts.cfgDigest, opts.hasDigest = d, true
	return nil
}

func formatFile(ctx context.Context, path string, opts FormatOptions) Result {
	stop := opts.Timer.Measure("read")
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	stop()
	if err != nil {
		return Result{Path: path, Err: err}
	}

	res := FormatSource(ctx, path, data, opts)
	if res.Err != nil || !res.Changed || opts.Mode != ModeWrite {
		return res
	}

	stop = opts.Timer.Measure("write")
	err = writeFileAtomic(path, res.Output)
	stop()
	if err != nil {
		res.Err = fmt.Errorf("write: %w", err)
		return res
	}
	if opts.Cache != nil && opts.hasDigest {
		// результат форматирования сам является неподвижной точкой
		_ = opts.Cache.MarkClean(opts.cfgDigest, res.Output)
	}
	return res
}

// FormatSource formats in-memory source. path is used for diagnostics and
// the diff header only; nothing is written.
func FormatSource(ctx context.Context, path string, data []byte, opts FormatOptions) Result {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file", trace.ParentSpan(ctx))
	span.With("path", path)
	res := formatSource(path, data, &opts)
	switch {
	case res.Err != nil:
		span.End("failed: " + res.Err.Error())
	case res.Cached:
		span.End("cached")
	case res.Changed:
		span.End("changed")
	default:
		span.End("unchanged")
	}
	return res
}

func formatSource(path string, data []byte, opts *FormatOptions) Result {
	res := Result{Path: path, Output: data}
	if opts.Cache != nil {
		if err := opts.prepare(); err != nil {
			res.Err = err
			return res
		}
		if opts.Cache.IsClean(opts.cfgDigest, data) {
			res.Cached = true
			return res
		}
	}

	fs := source.NewFileSet()
	file := fs.Get(fs.AddRaw(path, data, 0))
	bag := diag.NewBag(opts.MaxDiagnostics)
	res.FileSet, res.Bag = fs, bag

	stop := opts.Timer.Measure("parse")
	f := parser.Parse(file, bag)
	stop()
	if bag.HasErrors() {
		res.Err = format.ErrSyntax
		return res
	}

	stop = opts.Timer.Measure("print")
	d := format.Document(f, opts.Config)
	stop()

	stop = opts.Timer.Measure("layout")
	crlf := file.Flags&source.FileNormalizedCRLF != 0
	out := []byte(format.RenderDocument(d, opts.Config, opts.Config.Newline(crlf)))
	stop()

	if opts.Verify {
		stop = opts.Timer.Measure("verify")
		err := verifyRoundTrip(data, opts.Config)
		stop()
		if err != nil {
			res.Err = err
			return res
		}
	}

	res.Output = out
	res.Changed = !bytes.Equal(out, data)
	if res.Changed && opts.Diff {
		res.Diff = UnifiedDiff(path, string(data), string(out))
	}
	if !res.Changed && opts.Cache != nil {
		_ = opts.Cache.MarkClean(opts.cfgDigest, data)
	}
	return res
}

// writeFileAtomic replaces path through a temp file in the same directory,
// keeping the original permissions.
func writeFileAtomic(path string, data []byte) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Summary counts results by outcome.
type Summary struct {
	Files     int `json:"files"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
	Cached    int `json:"cached"`
	Failed    int `json:"failed"`
}

// Summarize counts results by outcome.
func Summarize(results []Result) Summary {
	s := Summary{Files: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Cached:
			s.Cached++
			s.Unchanged++
		case r.Changed:
			s.Changed++
		default:
			s.Unchanged++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d files: %d changed, %d unchanged (%d cached), %d failed",
		s.Files, s.Changed, s.Unchanged, s.Cached, s.Failed)
}

func summarize(results []Result) string { return Summarize(results).String() }
