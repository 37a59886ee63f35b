// Package billy provides go-billy-backed filesystem providers implementing
// the core.FS interface.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// implementations in a thin adapter layer. Both providers implement the full
// core.FS contract plus the optional core.SymlinkFS and core.TempFS
// capabilities; LocalFS additionally implements core.MetadataFS, while
// MemoryFS reports core.ErrUnsupported from Chmod and Chtimes since memfs
// stores no permission bits.
//
// Usage:
//
//	// Local filesystem rooted at /
//	fsys := billy.NewLocal()
//
//	// Scoped view for sandboxed operations
//	scoped, err := fsys.Chroot("/srv/data")
//
//	// In-memory filesystem for tests
//	mem := billy.NewMemory()
//	err := mem.WriteFile("temp.txt", []byte("data"), 0644)
//
// Unwrap exposes the underlying billy.Filesystem for code that speaks billy
// directly.
//
// # Thread Safety
//
// FS instances (LocalFS, MemoryFS) are safe for concurrent use by multiple
// goroutines. File handles are not safe for concurrent use.
package billy
