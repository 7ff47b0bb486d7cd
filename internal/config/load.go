package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"vhdlfmt/internal/diag"
)

var (
	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("invalid configuration")
	// ErrDecode wraps TOML syntax and type errors.
	ErrDecode = errors.New("cannot decode configuration")
	// ErrVersionPinned is returned when required_version excludes the running version.
	ErrVersionPinned = errors.New("formatter version does not satisfy required_version")
)

// Warning is a non-fatal config problem such as an unknown key.
type Warning struct {
	Code diag.Code
	Msg  string
}

func (w Warning) String() string {
	return w.Code.ID() + ": " + w.Msg
}

// Decode parses TOML over the defaults; keys absent from the input keep
// their default values.
func Decode(r io.Reader) (Config, []Warning, error) {
	cfg := Default()
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	var warnings []Warning
	for _, key := range meta.Undecoded() {
		warnings = append(warnings, Warning{
			Code: diag.CfgUnknownKey,
			Msg:  fmt.Sprintf("unknown key %q", key.String()),
		})
	}
	return cfg, warnings, nil
}

// Load reads, decodes and validates the file at path.
func Load(path string) (Config, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, warnings, err := Decode(f)
	if err != nil {
		return Config{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, warnings, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, warnings, nil
}

// Find walks up from startDir to locate vhdl-fmt.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve loads the explicit file when given, otherwise the nearest
// vhdl-fmt.toml above startDir, otherwise the defaults. The returned path
// is empty when the defaults are used.
func Resolve(explicit, startDir string) (Config, string, []Warning, error) {
	path := explicit
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return Config{}, "", nil, err
		}
		if !ok {
			return Default(), "", nil, nil
		}
		path = found
	}
	cfg, warnings, err := Load(path)
	return cfg, path, warnings, err
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// ErrorCode maps a config error to its diagnostic code.
func ErrorCode(err error) diag.Code {
	switch {
	case errors.Is(err, ErrVersionPinned):
		return diag.CfgVersionPinned
	case errors.Is(err, ErrDecode):
		return diag.CfgDecodeFailed
	}
	return diag.CfgInvalidValue
}
