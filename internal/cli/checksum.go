package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/vfile/internal/checksum"
	"github.com/vvka-141/vfile/internal/files/scanner"
	"github.com/vvka-141/vfile/pkg/vfile"
)

var checksumFlags struct {
	scan scanFlags
	jobs int
}

var checksumCmd = &cobra.Command{
	Use:   "checksum <dir>",
	Short: "Print the SHA-256 and size of every file in a directory",
	Long: `Scan <dir> with streaming contents and print "<sha256>  <size>  <path>"
for every regular file.

Each file is read once. Its stream is cloned: the clone is hashed while
the original is counted, and both views must agree on the size.`,
	Args: cobra.ExactArgs(1),
	RunE: runChecksum,
}

func init() {
	checksumFlags.scan.register(checksumCmd)
	checksumCmd.Flags().IntVarP(&checksumFlags.jobs, "jobs", "j", runtime.NumCPU(), "Number of files hashed concurrently")
	rootCmd.AddCommand(checksumCmd)
}

type fileSum struct {
	rel  string
	sum  string
	size int64
}

func runChecksum(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	cfg, err := loadScanConfig(sourcePath, &checksumFlags.scan)
	if err != nil {
		return err
	}
	cfg.Read = string(scanner.ReadStream)

	logger := newLogger(cfg)
	defer logger.Close()

	calc := checksum.New()
	s := scanner.NewScanner(calc, logger)
	result, err := s.ScanDirectoryContext(commandContext(cmd), sourcePath, toScanOptions(cfg))
	if err != nil {
		return err
	}

	sums := make([]*fileSum, len(result.Files))
	g := new(errgroup.Group)
	if checksumFlags.jobs > 0 {
		g.SetLimit(checksumFlags.jobs)
	}
	for i, f := range result.Files {
		i, f := i, f
		g.Go(func() error {
			sum, err := sumFile(calc, f)
			if err != nil {
				return fmt.Errorf("failed to checksum %s: %w", f.Path(), err)
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	count := 0
	for _, s := range sums {
		if s == nil {
			continue
		}
		fmt.Fprintf(out, "%s  %d  %s\n", s.sum, s.size, s.rel)
		count++
	}

	logger.Verbose("Checksummed %d files in %s", count, result.Root)
	return nil
}

// sumFile hashes a clone of f's stream while draining the original. It
// returns nil for files without streaming contents.
func sumFile(calc checksum.Calculator, f *vfile.File) (*fileSum, error) {
	if !f.IsStream() {
		return nil, nil
	}

	rel, err := f.Relative()
	if err != nil {
		rel = f.Path()
	}

	c, err := f.Clone()
	if err != nil {
		return nil, err
	}

	var (
		sum     string
		hashed  int64
		counted int64
	)
	var g errgroup.Group
	g.Go(func() error {
		defer c.Stream().Close()
		var err error
		sum, hashed, err = calc.CalculateReader(c.Stream())
		return err
	})
	g.Go(func() error {
		defer f.Stream().Close()
		var err error
		counted, err = io.Copy(io.Discard, f.Stream())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if hashed != counted {
		return nil, fmt.Errorf("stream views diverged: hashed %d bytes, counted %d", hashed, counted)
	}
	return &fileSum{rel: rel, sum: sum, size: hashed}, nil
}
