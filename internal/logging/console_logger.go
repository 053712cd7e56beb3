package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for log files written through WithLogFile.
const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	file    io.WriteCloser
	mu      sync.Mutex
}

// ConsoleOption configures a ConsoleLogger.
type ConsoleOption func(*ConsoleLogger)

// WithWriter replaces stderr as the console destination.
func WithWriter(w io.Writer) ConsoleOption {
	return func(l *ConsoleLogger) {
		l.out = w
	}
}

// WithLogFile additionally writes every message to path. The file is rotated
// once it grows past 10 MB.
func WithLogFile(path string) ConsoleOption {
	return func(l *ConsoleLogger) {
		if path == "" {
			return
		}
		l.file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
	}
}

// NewConsoleLogger creates a new ConsoleLogger.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool, opts ...ConsoleOption) *ConsoleLogger {
	l := &ConsoleLogger{
		verbose: verbose,
		out:     os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.file != nil {
		l.out = io.MultiWriter(l.out, l.file)
	}
	return l
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args)
}

// Close releases the log file, if any.
func (l *ConsoleLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.out, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.out, prefix+format+"\n")
	}
}
