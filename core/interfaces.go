package core

import (
	"io"
	"io/fs"
	"time"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed local filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the primary filesystem interface combining all core operations.
// FS explicitly embeds fs.FS for stdlib compatibility.
//
// All filesystem providers MUST implement this interface, which is composed
// of five sub-interfaces representing different categories of operations:
// ReadFS, WriteFS, ManageFS, WalkFS, and ChrootFS.
type FS interface {
	fs.FS // Ensures stdlib compatibility (provides Open returning fs.File)
	ReadFS
	WriteFS
	ManageFS
	WalkFS
	ChrootFS

	// Type returns the underlying filesystem type, letting callers
	// introspect whether the filesystem is backed by a real disk or by
	// in-memory storage.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
// All providers MUST support this interface.
type ReadFS interface {
	// Open opens the named file for reading.
	// Returns fs.File for compatibility with the io/fs package.
	// The returned file should be closed when no longer needed.
	Open(name string) (fs.File, error)

	// Stat returns metadata describing the named file, following
	// symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries.
	// Entry order is provider-dependent; callers must not rely on it.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	// A successful call returns err == nil, not err == EOF.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the entry is absent.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	// If the file does not exist, it is created with mode 0666
	// (before umask). The returned file must be closed when done.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	// The flags are the usual os.O_* bitmask; os.O_EXCL combined with
	// os.O_CREATE expresses exclusive create, failing with ErrExist when
	// the destination is already occupied.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it if it already exists.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a new directory with the specified permission bits.
	// It fails with ErrExist if the directory already exists and with
	// ErrNotExist if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory named path along with any necessary
	// parents. If path is already a directory, MkdirAll does nothing.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines entry management operations.
//
// Recursive removal is deliberately not part of the provider contract; the
// fsutil delete engine builds it from Remove, Lstat, and ReadDir so that the
// traversal semantics are identical across providers.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// Removing a missing entry fails with ErrNotExist; removing a
	// non-empty directory fails.
	Remove(name string) error

	// Rename renames (moves) oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// WalkFS defines directory tree traversal operations.
type WalkFS interface {
	// Walk walks the file tree rooted at root, calling walkFn for each
	// file or directory in the tree, including root. Walk does not follow
	// symbolic links.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// ChrootFS defines the ability to create scoped filesystem views.
//
// Chroot returns a restricted view where all operations are relative to a
// directory, preventing traversal outside of it. The serve surface uses this
// to sandbox the exported root.
type ChrootFS interface {
	// Chroot returns a filesystem scoped to the given directory.
	// The directory must exist and be accessible.
	Chroot(dir string) (FS, error)
}

// File represents an open file handle.
// File extends fs.File with write operations.
type File interface {
	fs.File

	// Write writes len(p) bytes from p to the underlying data stream.
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	Name() string
}

// Truncater allows truncating a file to a specified size.
// Not all File implementations support truncation; use a type assertion.
type Truncater interface {
	Truncate(size int64) error
}

// Syncer allows syncing file contents to stable storage.
// Not all File implementations support sync; use a type assertion.
type Syncer interface {
	Sync() error
}

// MetadataFS defines metadata operations.
//
// Use a type assertion to check whether a provider supports them:
//
//	if mfs, ok := fsys.(core.MetadataFS); ok {
//	    err := mfs.Chmod("file.txt", 0600)
//	}
//
// Providers without native support return ErrUnsupported from the mutating
// methods; the copy engine tolerates that when propagating permissions.
type MetadataFS interface {
	// Lstat returns file info without following symbolic links. If the
	// entry is a symlink, the returned FileInfo describes the link itself.
	Lstat(name string) (fs.FileInfo, error)

	// Chmod changes the mode bits of the named file.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(name string, atime, mtime time.Time) error
}

// SymlinkFS defines symbolic link operations.
//
// Use a type assertion to check whether a provider supports them. The copy
// engine replicates symlinks through this interface and never traverses
// them.
type SymlinkFS interface {
	// Symlink creates a symbolic link named newname pointing to oldname.
	// It fails with ErrExist if newname is already occupied. The oldname
	// path is stored as-is; broken links are valid and detectable via
	// Lstat.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}

// TempFS defines temporary file and directory creation operations.
//
// Use a type assertion to check whether a provider supports them. The caller
// is responsible for removing whatever was created.
type TempFS interface {
	// TempFile creates a new temporary file in dir, opens it for reading
	// and writing, and returns the File. A random string replaces the "*"
	// in pattern, or is appended when pattern has none.
	TempFile(dir, pattern string) (File, error)

	// TempDir creates a new temporary directory in dir and returns its
	// pathname, following the same pattern rules as TempFile.
	TempDir(dir, pattern string) (string, error)
}
