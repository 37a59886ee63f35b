package fsutil

import (
	"io/fs"

	"github.com/jmgilman/go/fsutil/core"
)

// Exists reports whether name exists on fsys, without following a trailing
// symlink. A false result with a non-nil error means existence could not
// be determined.
func Exists(fsys core.FS, name string) (bool, error) {
	ok, err := fsys.Exists(name)
	if err != nil {
		return false, core.WrapOp("stat", name, err)
	}
	return ok, nil
}

// IsDir reports whether name exists and is a directory. A missing entry is
// false, not an error.
func IsDir(fsys core.FS, name string) (bool, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		if core.IsNotFound(err) {
			return false, nil
		}
		return false, core.WrapOp("stat", name, err)
	}
	return info.IsDir(), nil
}

// IsFile reports whether name exists and is a regular file. A missing
// entry is false, not an error.
func IsFile(fsys core.FS, name string) (bool, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		if core.IsNotFound(err) {
			return false, nil
		}
		return false, core.WrapOp("stat", name, err)
	}
	return info.Mode().IsRegular(), nil
}

// IsSymlink reports whether name exists and is a symbolic link. Providers
// without Lstat cannot detect links, so the answer degrades to false.
func IsSymlink(fsys core.FS, name string) (bool, error) {
	info, err := lstat(fsys, name)
	if err != nil {
		if core.IsNotFound(err) {
			return false, nil
		}
		return false, core.WrapOp("lstat", name, err)
	}
	return info.Mode()&fs.ModeSymlink != 0, nil
}
