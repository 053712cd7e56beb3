package scanner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/vvka-141/vfile/internal/checksum"
	"github.com/vvka-141/vfile/internal/files/filesystem"
	"github.com/vvka-141/vfile/internal/identity"
	"github.com/vvka-141/vfile/internal/logging"
	"github.com/vvka-141/vfile/internal/retry"
	"github.com/vvka-141/vfile/pkg/stream"
	"github.com/vvka-141/vfile/pkg/vfile"
)

// Result holds the Files produced by a scan, in walk order.
type Result struct {
	// Root is the absolute path of the scanned directory. It is the cwd of
	// every File.
	Root  string
	Files []*vfile.File
}

// Scanner discovers files in a directory tree and wraps them as vfile.File.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator, fsProvider and logger are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	logger     logging.Logger
	executor   *retry.Executor
}

// NewScanner creates a new file scanner over the OS filesystem.
// Panics if calculator or logger is nil.
func NewScanner(calculator checksum.Calculator, logger logging.Logger) *Scanner {
	return NewScannerWithFS(calculator, filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if any argument is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider, logger logging.Logger) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
		logger:     logger,
		executor:   retry.NewFileExecutor(),
	}
}

// WithRetry returns a copy of the Scanner that retries file opens with
// executor. Transient failures are logged verbosely.
func (s *Scanner) WithRetry(executor *retry.Executor) *Scanner {
	clone := *s
	clone.executor = executor
	return &clone
}

func (s *Scanner) retrying() *retry.Executor {
	return s.executor.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		s.logger.Verbose("Retrying after %v (attempt %d): %v", delay, attempt+1, err)
	})
}

// ScanDirectory is ScanDirectoryContext with a background context.
func (s *Scanner) ScanDirectory(sourcePath string, opts Options) (Result, error) {
	return s.ScanDirectoryContext(context.Background(), sourcePath, opts)
}

// ScanDirectoryContext walks sourcePath and returns one File per entry.
// Symbolic links are not followed; they become Files with absent contents and
// their target in Symlink. ctx bounds the retries of buffered reads and of the
// deferred opens of streamed files.
func (s *Scanner) ScanDirectoryContext(ctx context.Context, sourcePath string, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if opts.Read == "" {
		opts.Read = ReadBuffer
	}

	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open directory: %w", err)
	}

	root := dir.Path()
	base := opts.Base
	switch {
	case base == "":
		base = root
	case !filepath.IsAbs(base):
		base = filepath.Join(root, base)
	}

	var files []*vfile.File
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		rel := filepath.ToSlash(file.RelativePath())
		if rel == "." {
			return nil
		}
		if opts.ignored(rel) {
			s.logger.Verbose("Ignoring %s", rel)
			return nil
		}
		if file.Info().IsDir() && !opts.IncludeDirs {
			return nil
		}

		f, err := s.processFile(ctx, file, root, base, rel, opts)
		if err != nil {
			return fmt.Errorf("failed to process file %s: %w", rel, err)
		}

		s.logger.Verbose("Scanned %s", f)
		files = append(files, f)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Root: root, Files: files}, nil
}

func (s *Scanner) processFile(ctx context.Context, file filesystem.File, root, base, rel string, opts Options) (*vfile.File, error) {
	info := file.Info()

	cfg := vfile.Config{
		Cwd:  root,
		Base: base,
		Path: file.Path(),
		Stat: info,
		Custom: map[string]any{
			KeyID: identity.ForPath(rel).String(),
		},
	}

	switch {
	case info.IsDir():
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := file.Readlink()
		if err != nil {
			return nil, fmt.Errorf("failed to read link: %w", err)
		}
		cfg.Symlink = target
	case !info.Mode().IsRegular():
		// Devices, sockets and pipes keep absent contents.
	case opts.Read == ReadBuffer:
		var content []byte
		err := s.retrying().Execute(ctx, func(context.Context) error {
			var err error
			content, err = file.ReadContent()
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		cfg.Contents = content
		cfg.Custom[KeyChecksum] = s.calculator.CalculateRaw(content)
	case opts.Read == ReadStream:
		var streamOpts []stream.Option
		if opts.HighWaterMark > 0 {
			streamOpts = append(streamOpts, stream.WithHighWaterMark(opts.HighWaterMark))
		}
		cfg.Contents = stream.New(&lazyReader{open: s.opener(ctx, file)}, streamOpts...)
	}

	return vfile.New(cfg)
}

// opener wraps file.Open in the retry executor.
func (s *Scanner) opener(ctx context.Context, file filesystem.File) func() (io.ReadCloser, error) {
	executor := s.retrying()
	return func() (io.ReadCloser, error) {
		var rc io.ReadCloser
		err := executor.Execute(ctx, func(context.Context) error {
			var err error
			rc, err = file.Open()
			return err
		})
		return rc, err
	}
}
