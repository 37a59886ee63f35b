package fsutil_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	fsutil "github.com/jmgilman/go/fsutil"
	"github.com/jmgilman/go/fsutil/billy"
	"github.com/jmgilman/go/fsutil/core"
)

func TestRemoveAll_Tree(t *testing.T) {
	fsys := billy.NewMemory()
	seed(t, fsys, map[string]string{
		"tree/a.txt":         "a",
		"tree/sub/b.txt":     "b",
		"tree/sub/deep/c.go": "c",
	})

	paths, err := fsutil.RemoveAll(context.Background(), fsys, "tree")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		"tree",
		"tree/a.txt",
		"tree/sub",
		"tree/sub/b.txt",
		"tree/sub/deep",
		"tree/sub/deep/c.go",
	}, paths)

	// Children are always recorded before the directory that held them.
	idx := make(map[string]int, len(paths))
	for i, p := range paths {
		idx[p] = i
	}
	require.Less(t, idx["tree/sub/deep/c.go"], idx["tree/sub/deep"])
	require.Less(t, idx["tree/sub/deep"], idx["tree/sub"])
	require.Less(t, idx["tree/sub"], idx["tree"])

	ok, err := fsutil.Exists(fsys, "tree")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRemoveAll_SingleFile(t *testing.T) {
	fsys := billy.NewMemory()
	seed(t, fsys, map[string]string{"a.txt": "a"})

	paths, err := fsutil.RemoveAll(context.Background(), fsys, "a.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, paths)
}

func TestRemoveAll_MissingPathSucceeds(t *testing.T) {
	fsys := billy.NewMemory()

	paths, err := fsutil.RemoveAll(context.Background(), fsys, "nope")
	require.NoError(t, err)
	require.Empty(t, paths)
}

func TestRemoveAll_Idempotent(t *testing.T) {
	fsys := billy.NewMemory()
	seed(t, fsys, map[string]string{"tree/a.txt": "a"})

	first, err := fsutil.RemoveAll(context.Background(), fsys, "tree")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := fsutil.RemoveAll(context.Background(), fsys, "tree")
	require.NoError(t, err)
	require.Empty(t, second)
}

func TestRemoveAll_SymlinkNotFollowed(t *testing.T) {
	fsys := billy.NewMemory()
	seed(t, fsys, map[string]string{
		"keep/data.txt": "keep",
		"tree/a.txt":    "a",
	})
	require.NoError(t, fsys.Symlink("../keep", "tree/link"))

	paths, err := fsutil.RemoveAll(context.Background(), fsys, "tree")
	require.NoError(t, err)
	require.Contains(t, paths, "tree/link")

	// The link target survives untouched.
	require.Equal(t, "keep", readString(t, fsys, "keep/data.txt"))
}

func TestRemoveAll_CanceledContext(t *testing.T) {
	fsys := billy.NewMemory()
	seed(t, fsys, map[string]string{"tree/a.txt": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fsutil.RemoveAll(ctx, fsys, "tree")
	require.ErrorIs(t, err, context.Canceled)
}

// orderCheckFS fails the test if Remove is ever asked to delete a
// directory that still has children.
type orderCheckFS struct {
	*billy.MemoryFS
	t *testing.T
}

func (o *orderCheckFS) Remove(name string) error {
	info, err := o.Lstat(name)
	if err == nil && info.IsDir() {
		entries, err := o.ReadDir(name)
		require.NoError(o.t, err)
		require.Empty(o.t, entries, "removed directory %q before its children", name)
	}
	return o.MemoryFS.Remove(name)
}

func TestRemoveAll_DirectoriesEmptiedBeforeRemoval(t *testing.T) {
	mem := billy.NewMemory()
	seed(t, mem, map[string]string{
		"tree/a.txt":     "a",
		"tree/sub/b.txt": "b",
	})

	_, err := fsutil.RemoveAll(context.Background(), &orderCheckFS{MemoryFS: mem, t: t}, "tree")
	require.NoError(t, err)
}

var _ core.FS = (*orderCheckFS)(nil)
