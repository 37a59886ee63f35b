package fsutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	fsutil "github.com/jmgilman/go/fsutil"
	"github.com/jmgilman/go/fsutil/billy"
	"github.com/jmgilman/go/fsutil/core"
)

func TestExists(t *testing.T) {
	fsys := billy.NewMemory()
	seed(t, fsys, map[string]string{"dir/file.txt": "x"})

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"file", "dir/file.txt", true},
		{"directory", "dir", true},
		{"missing", "nope", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fsutil.Exists(fsys, tt.path)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIsDirIsFile(t *testing.T) {
	fsys := billy.NewMemory()
	seed(t, fsys, map[string]string{"dir/file.txt": "x"})

	ok, err := fsutil.IsDir(fsys, "dir")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = fsutil.IsDir(fsys, "dir/file.txt")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = fsutil.IsFile(fsys, "dir/file.txt")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = fsutil.IsFile(fsys, "nope")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReadWriteString(t *testing.T) {
	fsys := billy.NewMemory()

	require.NoError(t, fsutil.WriteString(fsys, "greeting.txt", "hello", 0o644))

	got, err := fsutil.ReadString(fsys, "greeting.txt")
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	_, err = fsutil.ReadString(fsys, "nope.txt")
	require.True(t, core.IsNotFound(err))
}

func TestTouch(t *testing.T) {
	fsys := billy.NewMemory()

	require.NoError(t, fsutil.Touch(fsys, "new.txt", 0o644))
	ok, err := fsutil.IsFile(fsys, "new.txt")
	require.NoError(t, err)
	require.True(t, ok)

	// Touching an existing file keeps its content even when the backend
	// cannot update timestamps.
	require.NoError(t, fsutil.WriteString(fsys, "kept.txt", "data", 0o644))
	require.NoError(t, fsutil.Touch(fsys, "kept.txt", 0o644))
	got, err := fsutil.ReadString(fsys, "kept.txt")
	require.NoError(t, err)
	require.Equal(t, "data", got)
}

func TestMust(t *testing.T) {
	require.Equal(t, 42, fsutil.Must(42, nil))

	fsys := billy.NewMemory()
	require.Panics(t, func() {
		fsutil.Must(fsutil.ReadString(fsys, "nope.txt"))
	})
	require.NotPanics(t, func() {
		fsutil.Must0(nil)
	})
}
