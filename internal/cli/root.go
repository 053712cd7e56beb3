package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfile/internal/config"
	"github.com/vvka-141/vfile/internal/logging"
)

var rootFlags struct {
	verbose bool
	logFile string
}

var rootCmd = &cobra.Command{
	Use:   "vfile",
	Short: "Inspect directory trees as virtual files",
	Long: `vfile scans a directory into virtual files (path, history, stat,
contents and custom metadata) and reports on them.

Settings are read from vfile.yaml in the scanned directory, then from
VFILE_* environment variables (a .env file in the working directory is
loaded first), then from command-line flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Source directory not found
  12 - Invalid file contents or path state`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFile, "log-file", "", "Also write log messages to this file (rotated)")
}

// newLogger builds the console logger for a command run. The flag wins over
// log_file from vfile.yaml.
func newLogger(cfg *config.ProjectConfig) *logging.ConsoleLogger {
	logFile := rootFlags.logFile
	if logFile == "" {
		logFile = cfg.LogFile
	}
	return logging.NewConsoleLogger(rootFlags.verbose, logging.WithLogFile(logFile))
}
