// Package config loads and validates vhdl-fmt.toml.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"vhdlfmt/internal/casing"
)

// FileName is the config file searched for upward from the working directory.
const FileName = "vhdl-fmt.toml"

// Config is the single formatting configuration.
type Config struct {
	LineLength      int          `toml:"line_length"`
	IndentSize      int          `toml:"indent_size"`
	IndentStyle     string       `toml:"indent_style"`
	EOL             string       `toml:"eol"`
	RequiredVersion string       `toml:"required_version,omitempty"`
	Casing          Casing       `toml:"casing"`
	PortMap         PortMap      `toml:"port_map"`
	Declarations    Declarations `toml:"declarations"`
}

type Casing struct {
	Keywords    string `toml:"keywords"`
	Constants   string `toml:"constants"`
	Identifiers string `toml:"identifiers"`
}

type PortMap struct {
	AlignSignals bool `toml:"align_signals"`
}

type Declarations struct {
	AlignColons         bool `toml:"align_colons"`
	AlignTypes          bool `toml:"align_types"`
	AlignInitialization bool `toml:"align_initialization"`
}

const (
	MinLineLength = 10
	MaxLineLength = 200
	MinIndentSize = 1
	MaxIndentSize = 16
)

var (
	indentStyles = []string{"spaces", "tabs"}
	eolStyles    = []string{"lf", "crlf", "auto"}
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LineLength:  100,
		IndentSize:  2,
		IndentStyle: "spaces",
		EOL:         "auto",
		Casing: Casing{
			Keywords:    string(casing.Lower),
			Constants:   string(casing.Upper),
			Identifiers: string(casing.Lower),
		},
		PortMap: PortMap{AlignSignals: true},
		Declarations: Declarations{
			AlignColons:         true,
			AlignTypes:          true,
			AlignInitialization: true,
		},
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if c.LineLength < MinLineLength || c.LineLength > MaxLineLength {
		errs = append(errs, fmt.Errorf("line_length must be between %d and %d (got %d)", MinLineLength, MaxLineLength, c.LineLength))
	}
	if c.IndentSize < MinIndentSize || c.IndentSize > MaxIndentSize {
		errs = append(errs, fmt.Errorf("indent_size must be between %d and %d (got %d)", MinIndentSize, MaxIndentSize, c.IndentSize))
	}
	if !slices.Contains(indentStyles, c.IndentStyle) {
		errs = append(errs, fmt.Errorf("indent_style must be one of %s (got %q)", strings.Join(indentStyles, ", "), c.IndentStyle))
	}
	if !slices.Contains(eolStyles, c.EOL) {
		errs = append(errs, fmt.Errorf("eol must be one of %s (got %q)", strings.Join(eolStyles, ", "), c.EOL))
	}
	for _, field := range []struct{ name, value string }{
		{"casing.keywords", c.Casing.Keywords},
		{"casing.constants", c.Casing.Constants},
		{"casing.identifiers", c.Casing.Identifiers},
	} {
		if _, err := casing.ParseStyle(field.value); err != nil {
			errs = append(errs, fmt.Errorf("%s must be one of %s (got %q)", field.name, styleList(), field.value))
		}
	}
	if c.RequiredVersion != "" {
		if _, err := parseConstraint(c.RequiredVersion); err != nil {
			errs = append(errs, fmt.Errorf("required_version: %w", err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func styleList() string {
	names := make([]string, len(casing.Styles))
	for i, s := range casing.Styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Transform builds the casing transform for a validated config.
func (c Config) Transform() *casing.Transform {
	kw, _ := casing.ParseStyle(c.Casing.Keywords)
	cs, _ := casing.ParseStyle(c.Casing.Constants)
	id, _ := casing.ParseStyle(c.Casing.Identifiers)
	return casing.NewTransform(kw, cs, id)
}

// UseTabs reports whether indentation uses tabs.
func (c Config) UseTabs() bool {
	return c.IndentStyle == "tabs"
}

// Newline resolves eol; "auto" follows the source line endings.
func (c Config) Newline(sourceCRLF bool) string {
	switch c.EOL {
	case "crlf":
		return "\r\n"
	case "auto":
		if sourceCRLF {
			return "\r\n"
		}
	}
	return "\n"
}
