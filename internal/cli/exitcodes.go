package cli

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/vvka-141/vfile/internal/config"
	"github.com/vvka-141/vfile/pkg/stream"
	"github.com/vvka-141/vfile/pkg/vfile"
)

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: Usage error
//   - 3: Panic
//   - 10+: Application-specific errors
const (
	ExitSuccess        = 0  // Command completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid vfile.yaml, environment or cwd/base
	ExitSourceNotFound = 11 // Scanned directory or file does not exist
	ExitContentError   = 12 // Invalid file contents or path state
)

// usagePatterns are fragments of cobra and pflag argument errors.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, vfile.ErrConfig):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist):
		return ExitSourceNotFound
	case errors.Is(err, vfile.ErrContentType),
		errors.Is(err, vfile.ErrValueType),
		errors.Is(err, vfile.ErrPathState),
		errors.Is(err, stream.ErrStarted),
		errors.Is(err, stream.ErrClosed):
		return ExitContentError
	}

	msg := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(msg, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
