// Package transcript reads plain-text conversation exports one line at a time.
//
// Exports frame each message with a timestamp header followed by the sender
// on the next line, then the message body:
//
//	Jan 05, 2024  8:15:32 PM
//	Me
//	GamePigeon message:
//	I won!
//
// Lines before the first header are yielded as body lines with no sender.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxLineBytes bounds a single line. Longer lines fail the scan.
const maxLineBytes = 1 << 20

const byteOrderMark = "\ufeff"

// headerPattern matches the timestamp that opens a message, e.g.
// "Jan 05, 2024  8:15:32 PM". Anything after the timestamp (read receipts,
// edit markers) is ignored.
var headerPattern = regexp.MustCompile(`^\w{3}\s\d{1,2},\s\d{4}\s+\d{1,2}:\d{2}:\d{2}\s[AP]M`)

// Kind classifies a line by its position in a message.
type Kind int

const (
	KindBody Kind = iota
	KindHeader
	KindSender
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSender:
		return "sender"
	default:
		return "body"
	}
}

// Line is a single normalized line of a transcript.
type Line struct {
	Number int    // 1-based line number in the file
	Text   string // trimmed, NFC-normalized text
	Kind   Kind
	Sender string // sender of the enclosing message, "" before the first header
}

// Reader yields transcript lines lazily. It is single-pass; reopen the file
// to scan again.
type Reader struct {
	path    string
	closer  io.Closer
	scanner *bufio.Scanner

	line         int
	sender       string
	expectSender bool
}

// Open opens the transcript at path. It returns an error wrapping ErrNotFound
// when the path is missing or is not a regular file, and a *ReadError for any
// other failure.
func Open(path string) (*Reader, error) {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, &ReadError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	r := NewReader(f)
	r.path = path
	r.closer = f
	return r, nil
}

// NewReader wraps an already open stream. Close is a no-op for readers
// created this way.
func NewReader(src io.Reader) *Reader {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{
		path:    "<stream>",
		scanner: scanner,
	}
}

// Path returns the cleaned path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// Next returns the next line. It returns io.EOF when the transcript is
// exhausted and a *ReadError on I/O failure.
func (r *Reader) Next() (Line, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Line{}, &ReadError{Path: r.path, Line: r.line, Err: err}
		}
		return Line{}, io.EOF
	}
	r.line++

	raw := r.scanner.Text()
	if r.line == 1 {
		raw = strings.TrimPrefix(raw, byteOrderMark)
	}
	text := norm.NFC.String(strings.TrimSpace(raw))

	switch {
	case headerPattern.MatchString(text):
		r.expectSender = true
		r.sender = ""
		return Line{Number: r.line, Text: text, Kind: KindHeader}, nil
	case r.expectSender:
		r.expectSender = false
		r.sender = text
		return Line{Number: r.line, Text: text, Kind: KindSender, Sender: text}, nil
	default:
		return Line{Number: r.line, Text: text, Kind: KindBody, Sender: r.sender}, nil
	}
}

// Lines returns the number of lines read so far.
func (r *Reader) Lines() int {
	return r.line
}

// Close releases the underlying file, if the reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
