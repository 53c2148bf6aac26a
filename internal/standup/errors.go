package standup

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a caller passes a value the format or
	// data model cannot accept (zero dates, bad bullets, out-of-range depths).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a standup file does not exist and the
	// locator is not allowed to create it.
	ErrNotFound = errors.New("standup file not found")

	// ErrMalformedFile is returned when a file cannot be parsed into entries.
	ErrMalformedFile = errors.New("malformed standup file")

	// ErrUnrecognizedSection is returned when a sub-header names none of the
	// configured section labels.
	ErrUnrecognizedSection = errors.New("unrecognized section header")
)

// MalformedFileError carries the offending line of a file that failed to parse.
type MalformedFileError struct {
	Line    int
	Content string
	Err     error
}

func (e *MalformedFileError) Error() string {
	msg := fmt.Sprintf("%s: line %d %q", ErrMalformedFile, e.Line, e.Content)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrMalformedFile.
func (e *MalformedFileError) Is(target error) bool {
	return target == ErrMalformedFile
}

func (e *MalformedFileError) Unwrap() error {
	return e.Err
}

// UnrecognizedSectionError names the sub-header text that matched no label.
type UnrecognizedSectionError struct {
	Line int
	Text string
}

func (e *UnrecognizedSectionError) Error() string {
	return fmt.Sprintf("%s: line %d [%s]", ErrUnrecognizedSection, e.Line, e.Text)
}

// Is reports whether target is ErrUnrecognizedSection.
func (e *UnrecognizedSectionError) Is(target error) bool {
	return target == ErrUnrecognizedSection
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
