package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.vhd|directory>...",
	Short: "Parse VHDL sources and print the AST outline",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}

	results, err := driver.ParsePaths(cmd.Context(), args, maxDiagnostics, jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, res := range results {
		if res.Err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "vhdl-fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if res.Bag.Len() > 0 {
			diag.Render(os.Stderr, res.Bag, res.FileSet, stderrColor(colorFlag))
		}
		if res.Bag.HasErrors() {
			failed = true
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "== %s ==\n", res.Path)
		}
		ast.Dump(out, res.AST)
	}
	if failed {
		return errFormatFailed
	}
	return nil
}
