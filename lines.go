package fsutil

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"iter"

	"github.com/jmgilman/go/fsutil/core"
)

// LineReader is a pull-based, single-pass iterator over the lines of an
// open handle. It owns the handle exclusively while iterating and releases
// it eagerly: reaching the end of the stream closes the handle, as does an
// explicit Close or a read error. Scan and Close remain safe no-ops after
// termination.
//
// The text and binary views differ only in decoding: Bytes returns the raw
// line as read, including its terminator; Text returns the line decoded as
// a string with the trailing newline (and carriage return) stripped.
//
// LineReader is not restartable. A fresh reader is needed to iterate the
// same file again.
type LineReader struct {
	rc     io.ReadCloser
	br     *bufio.Reader
	name   string
	line   []byte
	err    error
	closed bool
}

// Lines opens the named file on fsys for line iteration. The returned
// reader owns the handle; close it (or drain it) when done.
func Lines(fsys core.FS, name string) (*LineReader, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, core.WrapOp("read lines", name, err)
	}
	return NewLineReader(f, name), nil
}

// NewLineReader wraps an already-open handle. Ownership of rc transfers to
// the reader; name is used in error reporting only.
func NewLineReader(rc io.ReadCloser, name string) *LineReader {
	return &LineReader{rc: rc, br: bufio.NewReader(rc), name: name}
}

// Scan advances to the next line. It returns false at the end of the
// stream, after an explicit Close, or on a read error; consult Err to
// distinguish the error case. The handle is closed by the time Scan first
// returns false.
func (r *LineReader) Scan() bool {
	if r.closed {
		return false
	}

	line, err := r.br.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		// A failed read leaves the handle closed and the failure
		// sticky; it is not swallowed into plain termination.
		r.err = core.WrapOp("read lines", r.name, err)
		_ = r.Close()
		return false
	}
	if len(line) == 0 {
		_ = r.Close()
		return false
	}
	if err != nil {
		// Final line without a terminator: deliver it, then the next
		// Scan terminates via the closed state.
		_ = r.Close()
	}
	r.line = line
	return true
}

// Bytes returns the current line exactly as read, terminator included.
// It is only valid until the next call to Scan.
func (r *LineReader) Bytes() []byte {
	return r.line
}

// Text returns the current line as a string with the trailing "\n" or
// "\r\n" stripped.
func (r *LineReader) Text() string {
	line := bytes.TrimSuffix(r.line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return string(line)
}

// Err returns the sticky read error, if any. Reaching the end of the
// stream is not an error.
func (r *LineReader) Err() error {
	return r.err
}

// Close releases the underlying handle immediately, regardless of pending
// unread data. It is idempotent; closing an already-terminated reader
// returns nil.
func (r *LineReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.rc.Close(); err != nil {
		return core.WrapOp("close", r.name, err)
	}
	return nil
}

// All returns a range-over-func view of the remaining lines in text form.
// Breaking out of the range closes the reader; after a complete range,
// check Err for a read failure.
func (r *LineReader) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r.Scan() {
			if !yield(r.Text()) {
				_ = r.Close()
				return
			}
		}
	}
}
