package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every error caused by the contents of a level file
	// being unusable, as opposed to the levels being physically inconsistent.
	ErrFormat = errors.New("loader: invalid level file")

	ErrUnsupportedFormat = errors.New("loader: unsupported format_version")
	ErrMissingField      = errors.New("loader: missing field")
	ErrMalformedLevel    = errors.New("loader: malformed level")
)

// FormatError wraps a format problem with the source it came from.
// It matches both ErrFormat and its cause under errors.Is.
type FormatError struct {
	Source string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Source == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *FormatError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}

// MalformedLevelError identifies the level entry that could not be read.
type MalformedLevelError struct {
	Index  int
	Reason string
}

func (e *MalformedLevelError) Error() string {
	return fmt.Sprintf("loader: malformed level %d: %s", e.Index, e.Reason)
}

func (e *MalformedLevelError) Unwrap() error {
	return ErrMalformedLevel
}
