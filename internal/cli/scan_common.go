package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/vfile/internal/config"
	"github.com/vvka-141/vfile/internal/files/scanner"
)

// scanFlags are the flags shared by every command that scans a directory.
// Zero values leave the configured setting untouched.
type scanFlags struct {
	read          string
	base          string
	highWaterMark int
	includeDirs   bool
	ignore        []string
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.read, "read", "", "How to attach contents: buffer, stream or none")
	cmd.Flags().StringVar(&f.base, "base", "", "Base directory for relative paths (default: scanned directory)")
	cmd.Flags().IntVar(&f.highWaterMark, "high-water-mark", 0, "Maximum bytes buffered between stream views")
	cmd.Flags().BoolVar(&f.includeDirs, "include-dirs", false, "Also report directories")
	cmd.Flags().StringArrayVar(&f.ignore, "ignore", nil, "Glob of entries to skip (repeatable)")
}

// loadScanConfig resolves settings for a scan of sourcePath: vfile.yaml,
// then .env and VFILE_* variables, then flags.
func loadScanConfig(sourcePath string, flags *scanFlags) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if flags.read != "" {
		cfg.Read = flags.read
	}
	if flags.base != "" {
		cfg.Base = flags.base
	}
	if flags.highWaterMark > 0 {
		cfg.HighWaterMark = flags.highWaterMark
	}
	if flags.includeDirs {
		cfg.IncludeDirs = true
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func toScanOptions(cfg *config.ProjectConfig) scanner.Options {
	return scanner.Options{
		Base:          cfg.Base,
		Read:          scanner.ReadMode(cfg.Read),
		HighWaterMark: cfg.HighWaterMark,
		IncludeDirs:   cfg.IncludeDirs,
		Ignore:        cfg.Ignore,
	}
}

// commandContext returns the command's context, or a background context when
// the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
