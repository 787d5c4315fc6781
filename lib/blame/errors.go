package blame

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrPathResolution = errors.New("cannot resolve path")
	ErrSubprocess     = errors.New("git blame failed")
	ErrEmptyOutput    = errors.New("git blame returned no output")
	ErrMalformedLine  = errors.New("malformed git blame line")
	ErrTimestamp      = errors.New("invalid git blame timestamp")
)

// Error is returned by Resolve. It matches its kind with errors.Is.
type Error struct {
	Kind  error
	Path  string
	Cause error
}

func newError(kind error, path string, cause error) *Error {
	return &Error{
		Kind:  kind,
		Path:  path,
		Cause: cause,
	}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.Error()
	}

	return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Cause
}
