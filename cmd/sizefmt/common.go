package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dennisklein/sizefmt/internal/config"
	"github.com/dennisklein/sizefmt/internal/size"
)

// appFs is the filesystem used for config files and local measurements.
var appFs = afero.NewOsFs()

// env carries what every subcommand needs after flag and config resolution.
type env struct {
	conv *size.Converter
	cfg  *config.File
	log  *slog.Logger
}

func addConverterFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.Bool("binary", false, "Use binary prefixes (base 1024: KiB, MiB, ...)")
	flags.Int("precision", size.DefaultPrecision, "Number of fraction digits")
	flags.Int("base", 0, "Multiplier between adjacent units")
	flags.StringSlice("units", nil, "Unit ladder, base unit first (e.g. B,K,M)")
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/sizefmt/config.yaml)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setup resolves the converter from the config file and command-line flags.
// Flags take precedence over the file.
func setup(cmd *cobra.Command) (*env, error) {
	flags := cmd.Flags()

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get --verbose flag: %w", err)
	}

	log := newLogger(cmd.ErrOrStderr(), verbose)

	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get --config flag: %w", err)
	}

	cfg, err := config.Load(appFs, path)
	if err != nil {
		return nil, err
	}

	if cfg.Path != "" {
		log.Debug("loaded config", "path", cfg.Path)
	}

	convCfg := cfg.ConverterConfig()

	if flags.Changed("binary") {
		if convCfg.BinaryPrefix, err = flags.GetBool("binary"); err != nil {
			return nil, fmt.Errorf("failed to get --binary flag: %w", err)
		}

		convCfg.Base = 0
		convCfg.Units = nil
	}

	if flags.Changed("precision") {
		if convCfg.Precision, err = flags.GetInt("precision"); err != nil {
			return nil, fmt.Errorf("failed to get --precision flag: %w", err)
		}
	}

	// An explicit ladder on the command line replaces a binary prefix from
	// the file; a binary prefix given as a flag still conflicts with it.
	if (flags.Changed("base") || flags.Changed("units")) && !flags.Changed("binary") && convCfg.BinaryPrefix {
		if convCfg.Base == 0 {
			convCfg.Base = size.BinaryBase
		}

		convCfg.BinaryPrefix = false
	}

	if flags.Changed("base") {
		if convCfg.Base, err = flags.GetInt("base"); err != nil {
			return nil, fmt.Errorf("failed to get --base flag: %w", err)
		}
	}

	if flags.Changed("units") {
		if convCfg.Units, err = flags.GetStringSlice("units"); err != nil {
			return nil, fmt.Errorf("failed to get --units flag: %w", err)
		}
	}

	conv, err := size.NewConverter(convCfg)
	if err != nil {
		return nil, err
	}

	log.Debug("converter ready",
		"base", conv.Base(),
		"units", conv.Units(),
		"precision", conv.Precision())

	return &env{conv: conv, cfg: cfg, log: log}, nil
}
