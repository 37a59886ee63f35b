package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/fsutil/core"
)

// normalize converts paths to use forward slashes consistently.
// Billy handles chroot security; this only canonicalizes the shape.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// billyFS holds the operations shared by LocalFS and MemoryFS. Both embed it
// and add the provider-specific pieces (Chroot, Type, metadata handling).
type billyFS struct {
	bfs billy.Filesystem
}

// Unwrap returns the underlying billy.Filesystem for code that needs to
// speak billy directly.
func (b *billyFS) Unwrap() billy.Filesystem {
	return b.bfs
}

// Open opens the named file for reading.
// Returns a File that also implements fs.File.
func (b *billyFS) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// Stat returns file metadata for the named file, following symlinks.
func (b *billyFS) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(normalize(name))
}

// Lstat returns file metadata without following symlinks.
func (b *billyFS) Lstat(name string) (fs.FileInfo, error) {
	return b.bfs.Lstat(normalize(name))
}

// ReadDir reads the named directory and returns its entries.
func (b *billyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	// Billy's ReadDir returns []fs.FileInfo; convert to []fs.DirEntry.
	infos, err := b.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (b *billyFS) ReadFile(name string) ([]byte, error) {
	f, err := b.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (b *billyFS) Exists(name string) (bool, error) {
	_, err := b.bfs.Lstat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (b *billyFS) Create(name string) (core.File, error) {
	name = normalize(name)
	f, err := b.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
// os.O_CREATE|os.O_EXCL expresses exclusive create.
func (b *billyFS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *billyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.Write(data)
	return err
}

// Mkdir creates a new directory with the specified permission bits.
// Unlike MkdirAll, this fails if the parent directory does not exist.
func (b *billyFS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := b.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	// Billy only offers MkdirAll, so enforce the missing-parent failure
	// mode ourselves before delegating.
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := b.bfs.Stat(parent); err != nil {
			return err
		}
	}
	return b.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path along with any necessary parents.
func (b *billyFS) MkdirAll(path string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (b *billyFS) Remove(name string) error {
	return b.bfs.Remove(normalize(name))
}

// Rename renames (moves) oldpath to newpath.
func (b *billyFS) Rename(oldpath, newpath string) error {
	return b.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Symlink creates a symbolic link named newname pointing to oldname.
func (b *billyFS) Symlink(oldname, newname string) error {
	return b.bfs.Symlink(oldname, normalize(newname))
}

// Readlink returns the destination of the named symbolic link.
func (b *billyFS) Readlink(name string) (string, error) {
	return b.bfs.Readlink(normalize(name))
}

// TempFile creates a new temporary file in dir and opens it for writing.
func (b *billyFS) TempFile(dir, pattern string) (core.File, error) {
	f, err := util.TempFile(b.bfs, normalize(dir), pattern)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: normalize(f.Name())}, nil
}

// TempDir creates a new temporary directory in dir and returns its pathname.
func (b *billyFS) TempDir(dir, pattern string) (string, error) {
	name, err := util.TempDir(b.bfs, normalize(dir), pattern)
	if err != nil {
		return "", err
	}
	return normalize(name), nil
}

// Walk walks the file tree rooted at root, calling walkFn for each file or
// directory in the tree, including root. Symlinks are reported, never
// followed.
func (b *billyFS) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = normalize(root)
	info, err := b.bfs.Lstat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = b.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (b *billyFS) walk(path string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(path, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := b.bfs.ReadDir(path)
	if err != nil {
		if err := walkFn(path, d, err); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		newPath := normalize(filepath.Join(path, entry.Name()))
		if err := b.walk(newPath, &dirEntry{info: entry}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				// SkipDir from a non-directory entry skips the
				// remaining entries of this directory.
				return nil
			}
			return err
		}
	}
	return nil
}
