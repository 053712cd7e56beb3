package retry

import (
	"errors"
	"syscall"
)

// transientErrnos are errors that usually clear up once other descriptors are
// released or the call is repeated.
var transientErrnos = []syscall.Errno{
	syscall.EMFILE, // process out of file descriptors
	syscall.ENFILE, // system out of file descriptors
	syscall.EAGAIN,
	syscall.EINTR,
	syscall.EBUSY,
}

// FileErrorClassifier classifies errors returned by file system calls.
type FileErrorClassifier struct{}

// NewFileErrorClassifier creates a new FileErrorClassifier.
func NewFileErrorClassifier() *FileErrorClassifier {
	return &FileErrorClassifier{}
}

// IsTransient reports whether err wraps one of the transient errnos.
func (c *FileErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
