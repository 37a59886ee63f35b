package fsutil

import (
	"io/fs"
	"time"

	"github.com/jmgilman/go/fsutil/core"
)

// ReadString reads the named file and returns its contents as a string.
func ReadString(fsys core.FS, name string) (string, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return "", core.WrapOp("read", name, err)
	}
	return string(data), nil
}

// WriteString writes s to the named file, creating it with perm if
// necessary and truncating it otherwise.
func WriteString(fsys core.FS, name, s string, perm fs.FileMode) error {
	if err := fsys.WriteFile(name, []byte(s), perm); err != nil {
		return core.WrapOp("write", name, err)
	}
	return nil
}

// Touch ensures the named file exists, creating it empty with perm when
// missing. For an existing entry the modification time is refreshed when
// the provider supports Chtimes; providers without it leave the entry
// untouched.
func Touch(fsys core.FS, name string, perm fs.FileMode) error {
	ok, err := fsys.Exists(name)
	if err != nil {
		return core.WrapOp("touch", name, err)
	}
	if !ok {
		if err := fsys.WriteFile(name, nil, perm); err != nil {
			return core.WrapOp("touch", name, err)
		}
		return nil
	}
	if mfs, ok := fsys.(core.MetadataFS); ok {
		now := time.Now()
		if err := mfs.Chtimes(name, now, now); err != nil && !core.IsUnsupported(err) {
			return core.WrapOp("touch", name, err)
		}
	}
	return nil
}
