// Package core provides the foundational interfaces and types for the
// fsutil filesystem convenience module.
//
// This package defines the contracts filesystem providers must implement,
// enabling the copy engine, delete engine, and line iterators in the parent
// package to run unchanged against local disks and in-memory filesystems.
//
// # Design Philosophy
//
//   - Zero dependencies: only the Go standard library
//   - Interface composition: small focused interfaces compose into larger contracts
//   - Stdlib compatibility: extends fs.FS and fs.File rather than replacing them
//   - Optional capabilities: discovered through type assertions
//
// # Interface Hierarchy
//
// The main FS interface is composed of five sub-interfaces:
//
//   - ReadFS: read-only operations (Open, Stat, ReadDir, ReadFile, Exists)
//   - WriteFS: write operations (Create, OpenFile, WriteFile, Mkdir, MkdirAll)
//   - ManageFS: entry management (Remove, Rename)
//   - WalkFS: directory traversal (Walk)
//   - ChrootFS: scoped filesystem views (Chroot)
//
// Optional interfaces for provider-specific capabilities:
//
//   - MetadataFS: metadata operations (Lstat, Chmod, Chtimes)
//   - SymlinkFS: symbolic link operations (Symlink, Readlink)
//   - TempFS: temporary file operations (TempFile, TempDir)
//
// # Error Convention
//
// Operations surface failures in two complementary forms. Provider methods
// return errors compatible with the io/fs sentinels (ErrNotExist, ErrExist,
// ...), classifiable with KindOf. Higher-level operations wrap failures in
// *OpError, which records the attempted action, the path (or path pair)
// involved, and the classified Kind without losing the underlying cause.
//
//	paths, err := fsutil.RemoveAll(ctx, fsys, "build")
//	if core.IsNotFound(err) {
//	    // already gone
//	}
//
// # Provider Implementations
//
// This package contains only interface definitions. Concrete implementations
// live in provider packages; github.com/jmgilman/go/fsutil/billy supplies
// go-billy-backed local and in-memory providers.
package core
