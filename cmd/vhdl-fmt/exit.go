package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	exitOK      = 0
	exitFailure = 1 // check found differences or a file failed
	exitUsage   = 2 // bad flags or configuration
)

// errReported marks failures whose details were already printed.
var errReported = errors.New("reported")

var (
	errCheckFailed  = fmt.Errorf("formatting changes required: %w", errReported)
	errFormatFailed = fmt.Errorf("some files could not be formatted: %w", errReported)
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: exitUsage, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

func applyColorMode(mode string) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		color.NoColor = !isTerminal(os.Stdout) || os.Getenv("NO_COLOR") != ""
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

// stderrColor: diagnostics go to stderr, which may be a terminal while
// stdout is piped.
func stderrColor(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(os.Stderr) && os.Getenv("NO_COLOR") == ""
}
