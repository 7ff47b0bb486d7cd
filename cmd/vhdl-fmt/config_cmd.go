package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"vhdlfmt/internal/config"
	"vhdlfmt/internal/version"
)

const configFileHint = config.FileName

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect vhdl-fmt.toml",
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write the default configuration to " + config.FileName,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Print the configuration that would be used in the current directory:
the file given with --location, else the nearest vhdl-fmt.toml, else the
defaults. Command-line overrides are not applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing "+config.FileName)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return usageError(fmt.Errorf("%s already exists (use --force to overwrite)", path))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	cfg := config.Default()
	if err := config.Encode(f, cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, path, err := resolveConfig(cmd, false)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if path == "" {
		fmt.Fprintln(out, "# built-in defaults")
	} else {
		fmt.Fprintf(out, "# %s\n", path)
	}
	return config.Encode(out, cfg)
}

// resolveConfig loads the configuration for this invocation and, when
// overrides is set, applies the fmt flags on top. Every failure is a usage
// error (exit 2).
func resolveConfig(cmd *cobra.Command, overrides bool) (config.Config, string, error) {
	explicit, err := cmd.Flags().GetString("location")
	if err != nil {
		return config.Config{}, "", err
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, "", err
	}

	cfg, path, warnings, err := config.Resolve(explicit, wd)
	if err != nil {
		return config.Config{}, "", usageError(fmt.Errorf("%s: %w", config.ErrorCode(err).ID(), err))
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		for _, w := range warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", path, w)
		}
	}

	if overrides {
		if err := applyOverrides(cmd, &cfg); err != nil {
			return config.Config{}, "", err
		}
		if err := cfg.Validate(); err != nil {
			return config.Config{}, "", usageError(err)
		}
	}
	if err := cfg.CheckVersion(version.Version); err != nil {
		return config.Config{}, "", usageError(fmt.Errorf("%s: %w", config.ErrorCode(err).ID(), err))
	}
	return cfg, path, nil
}

// applyOverrides copies explicitly set formatting flags into cfg.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("line-length") {
		v, err := flags.GetInt("line-length")
		if err != nil {
			return err
		}
		cfg.LineLength = v
	}
	if flags.Changed("indent-size") {
		v, err := flags.GetInt("indent-size")
		if err != nil {
			return err
		}
		cfg.IndentSize = v
	}
	if flags.Changed("indent-style") {
		v, err := flags.GetString("indent-style")
		if err != nil {
			return err
		}
		cfg.IndentStyle = v
	}
	if flags.Changed("eol") {
		v, err := flags.GetString("eol")
		if err != nil {
			return err
		}
		cfg.EOL = v
	}
	return nil
}
