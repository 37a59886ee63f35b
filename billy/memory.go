package billy

import (
	"io/fs"
	"time"

	"github.com/go-git/go-billy/v5/memfs"

	"github.com/jmgilman/go/fsutil/core"
)

// MemoryFS wraps billy's memfs for in-memory filesystem access.
//
// memfs stores no permission bits, so Chmod and Chtimes report
// core.ErrUnsupported; Lstat and symlinks work as on the local provider.
type MemoryFS struct {
	billyFS
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory() *MemoryFS {
	return &MemoryFS{billyFS: billyFS{bfs: memfs.New()}}
}

// Chroot returns a filesystem scoped to the given directory.
func (m *MemoryFS) Chroot(dir string) (core.FS, error) {
	chrootFS, err := m.bfs.Chroot(normalize(dir))
	if err != nil {
		return nil, err
	}
	return &MemoryFS{billyFS: billyFS{bfs: chrootFS}}, nil
}

// Type returns FSTypeMemory.
func (m *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// Chmod reports core.ErrUnsupported; memfs has no mode bits to change.
func (m *MemoryFS) Chmod(name string, _ fs.FileMode) error {
	return &fs.PathError{Op: "chmod", Path: normalize(name), Err: core.ErrUnsupported}
}

// Chtimes reports core.ErrUnsupported; memfs has no times to change.
func (m *MemoryFS) Chtimes(name string, _, _ time.Time) error {
	return &fs.PathError{Op: "chtimes", Path: normalize(name), Err: core.ErrUnsupported}
}

// Compile-time interface checks.
var (
	_ core.FS         = (*MemoryFS)(nil)
	_ core.MetadataFS = (*MemoryFS)(nil)
	_ core.SymlinkFS  = (*MemoryFS)(nil)
	_ core.TempFS     = (*MemoryFS)(nil)
)
