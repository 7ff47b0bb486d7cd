package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/driver"
	"vhdlfmt/internal/observ"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format VHDL files or directories",
	Long: `Format *.vhd and *.vhdl files. Directories are searched recursively.
Without --write or --check the formatted text is printed to stdout.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFmt,
}

func init() {
	addFmtFlags(fmtCmd)
}

func addFmtFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolP("write", "w", false, "rewrite files in place")
	f.BoolP("check", "c", false, "exit with status 1 when any file would change; write nothing")
	f.Bool("stdin", false, "read source from stdin and write the result to stdout")
	f.String("stdin-name", "<stdin>", "file name used in diagnostics for --stdin")
	f.Bool("diff", false, "print a unified diff instead of the formatted text")
	f.Bool("watch", false, "keep running and re-format files when they change (requires --write)")
	f.Bool("cache", false, "skip inputs already known to be formatted")
	f.Bool("verify", false, "re-parse the output and check that formatting is stable")
	f.Int("jobs", 0, "max parallel workers (0=GOMAXPROCS)")
	f.String("format", "text", "report format for --check and --write (text|json)")
	f.Int("line-length", 0, "override line_length")
	f.Int("indent-size", 0, "override indent_size")
	f.String("indent-style", "", "override indent_style (spaces|tabs)")
	f.String("eol", "", "override eol (lf|crlf|auto)")
}

type fmtFlags struct {
	write, check, stdin, diff, watch bool
	cache, verify, quiet, timings    bool
	stdinName, format, color, ui     string
	jobs, maxDiagnostics             int
}

func readFmtFlags(cmd *cobra.Command) (fmtFlags, error) {
	f := cmd.Flags()
	var ff fmtFlags
	var err error
	get := func(name string, dst *bool) {
		if err == nil {
			*dst, err = f.GetBool(name)
		}
	}
	getS := func(name string, dst *string) {
		if err == nil {
			*dst, err = f.GetString(name)
		}
	}
	getI := func(name string, dst *int) {
		if err == nil {
			*dst, err = f.GetInt(name)
		}
	}
	get("write", &ff.write)
	get("check", &ff.check)
	get("stdin", &ff.stdin)
	get("diff", &ff.diff)
	get("watch", &ff.watch)
	get("cache", &ff.cache)
	get("verify", &ff.verify)
	get("quiet", &ff.quiet)
	get("timings", &ff.timings)
	getS("stdin-name", &ff.stdinName)
	getS("format", &ff.format)
	getS("color", &ff.color)
	getS("ui", &ff.ui)
	getI("jobs", &ff.jobs)
	getI("max-diagnostics", &ff.maxDiagnostics)
	return ff, err
}

func (ff fmtFlags) validate(args []string) error {
	switch {
	case ff.write && ff.check:
		return fmt.Errorf("--write and --check are mutually exclusive")
	case ff.stdin && len(args) > 0:
		return fmt.Errorf("--stdin takes no path arguments")
	case ff.stdin && (ff.write || ff.watch):
		return fmt.Errorf("--stdin cannot be combined with --write or --watch")
	case !ff.stdin && len(args) == 0:
		return fmt.Errorf("no input: give at least one path or use --stdin")
	case ff.watch && !ff.write:
		return fmt.Errorf("--watch requires --write")
	case ff.format != "text" && ff.format != "json":
		return fmt.Errorf("unsupported report format %q (expected text|json)", ff.format)
	case ff.jobs < 0:
		return fmt.Errorf("--jobs must not be negative")
	}
	return nil
}

func (ff fmtFlags) mode() driver.Mode {
	switch {
	case ff.write:
		return driver.ModeWrite
	case ff.check:
		return driver.ModeCheck
	}
	return driver.ModeStdout
}

func runFmt(cmd *cobra.Command, args []string) error {
	ff, err := readFmtFlags(cmd)
	if err != nil {
		return err
	}
	if err := ff.validate(args); err != nil {
		return usageError(err)
	}
	if _, err := readUIMode(ff.ui); err != nil {
		return usageError(err)
	}

	cfg, _, err := resolveConfig(cmd, true)
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Config:         cfg,
		Mode:           ff.mode(),
		Diff:           ff.diff,
		Verify:         ff.verify,
		Jobs:           ff.jobs,
		MaxDiagnostics: ff.maxDiagnostics,
	}
	if ff.timings {
		opts.Timer = observ.NewTimer()
		defer func() { printTimings(cmd.ErrOrStderr(), opts.Timer) }()
	}
	if ff.cache {
		cache, err := driver.OpenDiskCache("vhdl-fmt")
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		opts.Cache = cache
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if ff.stdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		res := driver.FormatSource(ctx, ff.stdinName, data, opts)
		return reportResults(out, errOut, []driver.Result{res}, ff)
	}

	if ff.watch {
		return driver.Watch(ctx, args, opts, driver.WatchOptions{
			OnBatch: func(results []driver.Result, err error) {
				if err != nil {
					fmt.Fprintf(errOut, "vhdl-fmt: %v\n", err)
				}
				_ = reportResults(out, errOut, results, ff)
			},
		})
	}

	files, err := driver.SourceFiles(ctx, args)
	if err != nil {
		return err
	}

	var results []driver.Result
	if useProgressUI(ff, len(files), stdoutIsTerminal) {
		results, err = formatWithUI(ctx, files, opts)
	} else {
		results, err = driver.FormatFiles(ctx, files, opts)
	}
	if err != nil {
		return err
	}
	return reportResults(out, errOut, results, ff)
}

// reportResults prints results and maps them to the command error: a
// failed file gives errFormatFailed, a changed file under --check gives
// errCheckFailed.
func reportResults(out, errOut io.Writer, results []driver.Result, ff fmtFlags) error {
	var failed, changed bool
	for _, res := range results {
		if res.Err != nil {
			failed = true
			renderFailure(errOut, res, ff.color)
			continue
		}
		if res.Changed {
			changed = true
		}
	}

	if ff.format == "json" {
		if err := renderJSON(out, results, ff); err != nil {
			return err
		}
	} else {
		renderText(out, results, ff)
	}

	switch {
	case failed:
		return errFormatFailed
	case ff.check && changed:
		return errCheckFailed
	}
	return nil
}

func renderFailure(w io.Writer, res driver.Result, colorMode string) {
	if res.Bag != nil && res.Bag.Len() > 0 {
		diag.Render(w, res.Bag, res.FileSet, stderrColor(colorMode))
	}
	fmt.Fprintf(w, "vhdl-fmt: %s: %v\n", res.Path, res.Err)
}

func renderText(w io.Writer, results []driver.Result, ff fmtFlags) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		switch {
		case ff.diff:
			if res.Diff != "" {
				_, _ = io.WriteString(w, res.Diff)
			}
		case ff.check:
			if res.Changed && !ff.quiet {
				fmt.Fprintln(w, res.Path)
			}
		case ff.write:
			if res.Changed && !ff.quiet {
				fmt.Fprintf(w, "reformatted %s\n", res.Path)
			}
		default:
			_, _ = w.Write(res.Output)
		}
	}
}

type jsonResult struct {
	Path        string `json:"path"`
	Changed     bool   `json:"changed"`
	Cached      bool   `json:"cached,omitempty"`
	Error       string `json:"error,omitempty"`
	Diagnostics int    `json:"diagnostics,omitempty"`
	Diff        string `json:"diff,omitempty"`
}

type jsonReport struct {
	Mode    string         `json:"mode"`
	Files   []jsonResult   `json:"files"`
	Summary driver.Summary `json:"summary"`
}

func renderJSON(w io.Writer, results []driver.Result, ff fmtFlags) error {
	report := jsonReport{
		Mode:    modeName(ff.mode()),
		Files:   make([]jsonResult, 0, len(results)),
		Summary: driver.Summarize(results),
	}
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, Diff: res.Diff}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if res.Bag != nil {
			jr.Diagnostics = res.Bag.Len()
		}
		report.Files = append(report.Files, jr)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func modeName(m driver.Mode) string {
	switch m {
	case driver.ModeWrite:
		return "write"
	case driver.ModeCheck:
		return "check"
	}
	return "stdout"
}

// formatWithUI runs FormatFiles while a progress view follows the results.
func formatWithUI(ctx context.Context, files []string, opts driver.FormatOptions) ([]driver.Result, error) {
	return runWithProgress(ctx, "formatting", files, func(ctx context.Context, onResult func(driver.Result)) ([]driver.Result, error) {
		opts.OnResult = onResult
		return driver.FormatFiles(ctx, files, opts)
	})
}
