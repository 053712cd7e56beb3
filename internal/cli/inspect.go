package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfile/internal/checksum"
	"github.com/vvka-141/vfile/internal/files/scanner"
)

var inspectFlags struct {
	scan    scanFlags
	history bool
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <dir>",
	Short: "Print the debug label of every file in a directory",
	Long: `Scan <dir> and print one line per file, for example:

  <File "src/main.go" <Buffer 70 61 63 6b 61 67 65>>

Paths are shown relative to the base directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectFlags.scan.register(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectFlags.history, "history", false, "Also print the path history of each file")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	cfg, err := loadScanConfig(sourcePath, &inspectFlags.scan)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer logger.Close()

	s := scanner.NewScanner(checksum.New(), logger)
	result, err := s.ScanDirectoryContext(commandContext(cmd), sourcePath, toScanOptions(cfg))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range result.Files {
		fmt.Fprintln(out, f.Inspect())
		if inspectFlags.history {
			for _, p := range f.History() {
				fmt.Fprintf(out, "  %s\n", p)
			}
		}
		if st := f.Stream(); st != nil {
			st.Close()
		}
	}

	logger.Verbose("Inspected %d files in %s", len(result.Files), result.Root)
	return nil
}
