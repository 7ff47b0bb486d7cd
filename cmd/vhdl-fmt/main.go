package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vhdlfmt/internal/prof"
	"vhdlfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "vhdl-fmt [flags] [path...]",
	Short: "VHDL source formatter",
	Long: `vhdl-fmt formats VHDL source files: consistent indentation, casing,
line breaking at a configurable width, and column alignment of port,
generic and declaration lists.

Without a subcommand it behaves like "vhdl-fmt fmt".`,
	Args:              cobra.ArbitraryArgs,
	RunE:              runFmt,
	PersistentPreRunE: setupGlobals,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// finish flushes the tracer and stops profiling; set by setupGlobals.
var finish = func(failed bool) {}

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "print per-phase timings to stderr")
	pf.String("ui", "auto", "progress view for large batches (auto|on|off)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	pf.StringP("location", "l", "", "path to the configuration file (default: nearest "+configFileHint+")")
	pf.String("trace", "", "trace output file (- for stderr, *.ndjson for NDJSON)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "ring buffer capacity in events")
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	addFmtFlags(rootCmd)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(args []string) int {
	rootCmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	finish(err != nil)
	finish = func(bool) {}
	if err == nil {
		return exitOK
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "vhdl-fmt: %v\n", err)
	}
	return exitCode(err)
}

func setupGlobals(cmd *cobra.Command, _ []string) error {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	if err := applyColorMode(colorFlag); err != nil {
		return usageError(err)
	}
	session, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		_ = session.Stop()
		return usageError(err)
	}
	finish = func(failed bool) {
		cleanup(failed)
		if err := session.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "vhdl-fmt: profiling: %v\n", err)
		}
	}
	return nil
}

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"cpuprofile", &opts.CPU},
		{"memprofile", &opts.Mem},
		{"runtime-trace", &opts.Trace},
	} {
		if *f.dst, err = pf.GetString(f.name); err != nil {
			return nil, err
		}
	}
	return prof.Start(opts)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
