package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.vhd",
	Short: "Dump the tokens of a VHDL source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type jsonToken struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Leading int    `json:"leading_trivia,omitempty"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		diag.Render(os.Stderr, result.Bag, result.FileSet, stderrColor(colorFlag))
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = driver.DumpTokens(out, result)
	case "json":
		toks := make([]jsonToken, 0, len(result.Tokens))
		for _, tok := range result.Tokens {
			start, _ := result.FileSet.Resolve(tok.Span)
			toks = append(toks, jsonToken{
				Kind:    tok.Kind.String(),
				Text:    tok.Text,
				Line:    start.Line,
				Col:     start.Col,
				Leading: len(tok.Leading),
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(toks)
	default:
		return usageError(fmt.Errorf("unknown format: %s", format))
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errFormatFailed
	}
	return nil
}
