package transcript

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the transcript path does not resolve to a
// regular file.
var ErrNotFound = errors.New("transcript not found")

// ReadError reports an I/O failure while opening or scanning a transcript.
// Line is the last line successfully read before the failure (0 if none).
type ReadError struct {
	Path string
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("read %s after line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
