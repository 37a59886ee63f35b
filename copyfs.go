package fsutil

import (
	"io/fs"
	"path"
	"strings"

	"github.com/jmgilman/go/fsutil/core"
)

// CopyFS imports all files under srcRoot in a read-only filesystem
// (typically an embed.FS) into a writable core.FS, preserving the directory
// structure and file permissions. Use "." as srcRoot to import the whole
// source filesystem.
//
// Directories are not copied explicitly; parents are created as needed.
// Existing destination files are overwritten. This is the low-ceremony
// sibling of CopyAll for seeding a filesystem from embedded or fixture
// content; it reports no accumulator.
func CopyFS(src fs.FS, dst core.FS, srcRoot string) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return core.WrapOp("walk", filePath, err)
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return core.WrapOp("read", filePath, err)
		}
		info, err := d.Info()
		if err != nil {
			return core.WrapOp("stat", filePath, err)
		}

		dstPath := filePath
		if srcRoot != "." && srcRoot != "" {
			dstPath = strings.TrimPrefix(filePath, srcRoot)
			dstPath = strings.TrimPrefix(dstPath, "/")
		}
		if dir := path.Dir(dstPath); dir != "." && dir != "" {
			if err := dst.MkdirAll(dir, 0o755); err != nil {
				return core.WrapOp("mkdir", dir, err)
			}
		}
		if err := dst.WriteFile(dstPath, data, info.Mode().Perm()); err != nil {
			return core.WrapOp2("copy", filePath, dstPath, err)
		}
		return nil
	})
}
