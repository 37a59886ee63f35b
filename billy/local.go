package billy

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fsutil/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
//
// The adapter tracks the host path of its chroot root so that metadata
// operations (Chmod, Chtimes), which billy does not expose, can be performed
// through the os package without escaping the scoped view.
type LocalFS struct {
	billyFS
	root string
}

// NewLocal creates a go-billy-backed local filesystem rooted at the
// filesystem root ("/").
func NewLocal() *LocalFS {
	return &LocalFS{billyFS: billyFS{bfs: osfs.New("/")}, root: "/"}
}

// Chroot returns a filesystem scoped to the given directory.
func (l *LocalFS) Chroot(dir string) (core.FS, error) {
	dir = normalize(dir)
	chrootFS, err := l.bfs.Chroot(dir)
	if err != nil {
		return nil, err
	}
	return &LocalFS{
		billyFS: billyFS{bfs: chrootFS},
		root:    filepath.Join(l.root, filepath.FromSlash(dir)),
	}, nil
}

// Type returns FSTypeLocal.
func (l *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Chmod changes the mode bits of the named file.
func (l *LocalFS) Chmod(name string, mode fs.FileMode) error {
	host, err := l.hostPath(name)
	if err != nil {
		return err
	}
	return os.Chmod(host, mode)
}

// Chtimes changes the access and modification times of the named file.
func (l *LocalFS) Chtimes(name string, atime, mtime time.Time) error {
	host, err := l.hostPath(name)
	if err != nil {
		return err
	}
	return os.Chtimes(host, atime, mtime)
}

// hostPath resolves name to a host filesystem path, rejecting paths that
// would escape the chroot root.
func (l *LocalFS) hostPath(name string) (string, error) {
	name = normalize(name)
	joined := filepath.Join(l.root, filepath.FromSlash(name))
	rel, err := filepath.Rel(l.root, joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &fs.PathError{Op: "resolve", Path: name, Err: fs.ErrInvalid}
	}
	return joined, nil
}

// Compile-time interface checks.
var (
	_ core.FS         = (*LocalFS)(nil)
	_ core.MetadataFS = (*LocalFS)(nil)
	_ core.SymlinkFS  = (*LocalFS)(nil)
	_ core.TempFS     = (*LocalFS)(nil)
)
