package fsutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	fsutil "github.com/jmgilman/go/fsutil"
	"github.com/jmgilman/go/fsutil/billy"
	"github.com/jmgilman/go/fsutil/core"
)

// closeTracker counts Close calls on the wrapped reader.
type closeTracker struct {
	io.Reader
	closed int
}

func (c *closeTracker) Close() error {
	c.closed++
	return nil
}

// errReader yields some data and then a permanent read error.
type errReader struct {
	data string
	err  error
}

func (e *errReader) Read(p []byte) (int, error) {
	if e.data == "" {
		return 0, e.err
	}
	n := copy(p, e.data)
	e.data = e.data[n:]
	return n, nil
}

func TestLineReader_TerminatedLines(t *testing.T) {
	tracker := &closeTracker{Reader: strings.NewReader("one\ntwo\nthree\n")}
	lr := fsutil.NewLineReader(tracker, "input.txt")

	var got []string
	for lr.Scan() {
		got = append(got, lr.Text())
	}
	require.NoError(t, lr.Err())
	require.Equal(t, []string{"one", "two", "three"}, got)

	// Exhaustion closes the handle and further scans stay false.
	require.Equal(t, 1, tracker.closed)
	require.False(t, lr.Scan())
	require.NoError(t, lr.Err())
}

func TestLineReader_FinalLineWithoutNewline(t *testing.T) {
	lr := fsutil.NewLineReader(io.NopCloser(strings.NewReader("one\ntwo")), "input.txt")

	require.True(t, lr.Scan())
	require.Equal(t, "one", lr.Text())
	require.True(t, lr.Scan())
	require.Equal(t, "two", lr.Text())
	require.Equal(t, []byte("two"), lr.Bytes())
	require.False(t, lr.Scan())
	require.NoError(t, lr.Err())
}

func TestLineReader_BytesKeepsTerminator(t *testing.T) {
	lr := fsutil.NewLineReader(io.NopCloser(strings.NewReader("one\n")), "input.txt")

	require.True(t, lr.Scan())
	require.Equal(t, []byte("one\n"), lr.Bytes())
	require.Equal(t, "one", lr.Text())
}

func TestLineReader_TextStripsCarriageReturn(t *testing.T) {
	lr := fsutil.NewLineReader(io.NopCloser(strings.NewReader("one\r\ntwo\r\n")), "input.txt")

	require.True(t, lr.Scan())
	require.Equal(t, "one", lr.Text())
	require.True(t, lr.Scan())
	require.Equal(t, "two", lr.Text())
	require.False(t, lr.Scan())
}

func TestLineReader_EmptyInput(t *testing.T) {
	tracker := &closeTracker{Reader: strings.NewReader("")}
	lr := fsutil.NewLineReader(tracker, "input.txt")

	require.False(t, lr.Scan())
	require.NoError(t, lr.Err())
	require.Equal(t, 1, tracker.closed)
}

func TestLineReader_EarlyClose(t *testing.T) {
	tracker := &closeTracker{Reader: strings.NewReader("one\ntwo\n")}
	lr := fsutil.NewLineReader(tracker, "input.txt")

	require.True(t, lr.Scan())
	require.NoError(t, lr.Close())
	require.False(t, lr.Scan())
	require.NoError(t, lr.Err())

	// Close is idempotent.
	require.NoError(t, lr.Close())
	require.Equal(t, 1, tracker.closed)
}

func TestLineReader_ReadError(t *testing.T) {
	cause := errors.New("disk gone")
	tracker := &closeTracker{Reader: &errReader{data: "one\n", err: cause}}
	lr := fsutil.NewLineReader(tracker, "input.txt")

	require.True(t, lr.Scan())
	require.False(t, lr.Scan())
	require.ErrorIs(t, lr.Err(), cause)
	require.Equal(t, 1, tracker.closed)

	// The error is sticky.
	require.False(t, lr.Scan())
	require.ErrorIs(t, lr.Err(), cause)
}

func TestLineReader_All(t *testing.T) {
	lr := fsutil.NewLineReader(io.NopCloser(strings.NewReader("a\nb\nc\n")), "input.txt")

	var got []string
	for line := range lr.All() {
		got = append(got, line)
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
	require.NoError(t, lr.Err())
}

func TestLineReader_AllBreakCloses(t *testing.T) {
	tracker := &closeTracker{Reader: strings.NewReader("a\nb\nc\n")}
	lr := fsutil.NewLineReader(tracker, "input.txt")

	for line := range lr.All() {
		if line == "b" {
			break
		}
	}
	require.NoError(t, lr.Close())
	require.Equal(t, 1, tracker.closed)
}

func TestLines_OpensFile(t *testing.T) {
	fsys := billy.NewMemory()
	seed(t, fsys, map[string]string{"notes.txt": "alpha\nbeta\n"})

	lr, err := fsutil.Lines(fsys, "notes.txt")
	require.NoError(t, err)
	defer lr.Close()

	require.True(t, lr.Scan())
	require.Equal(t, "alpha", lr.Text())
}

func TestLines_MissingFile(t *testing.T) {
	fsys := billy.NewMemory()

	_, err := fsutil.Lines(fsys, "nope.txt")
	require.Error(t, err)
	require.True(t, core.IsNotFound(err))
}
