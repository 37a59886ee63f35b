package fsutil

import (
	"context"
	"io/fs"
	"path"

	"github.com/jmgilman/go/fsutil/core"
)

// RemoveAll recursively deletes name and everything below it, returning the
// paths it removed. Children are deleted before their parent, so a
// directory is only ever removed once it is empty.
//
// Absence is success: a name that does not exist, or an entry that
// disappears while the walk is in progress, contributes nothing to the
// result and no error. Calling RemoveAll twice in a row therefore succeeds
// both times, with an empty result the second time.
//
// Symlinks are deleted as entries, never followed; a symlink to a directory
// does not cause the target's contents to be removed.
//
// Any other failure (permission denied, a directory refilled by a
// concurrent writer, ...) aborts the walk and is returned alone; already
// deleted entries are not restored.
func RemoveAll(ctx context.Context, fsys core.FS, name string) ([]string, error) {
	r := &remover{fsys: fsys}
	return r.removeEntry(ctx, path.Clean(name), nil)
}

type remover struct {
	fsys core.FS
}

func (r *remover) removeEntry(ctx context.Context, name string, acc []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, core.WrapOp("remove", name, err)
	}

	info, err := lstat(r.fsys, name)
	if err != nil {
		if core.IsNotFound(err) {
			return acc, nil
		}
		return nil, core.WrapOp("remove", name, err)
	}
	if !info.IsDir() || info.Mode()&fs.ModeSymlink != 0 {
		return r.removeLeaf(name, acc)
	}

	entries, err := r.fsys.ReadDir(name)
	if err != nil {
		switch {
		case core.IsNotFound(err):
			return acc, nil
		case core.IsNotDir(err):
			// Replaced by a file since classification; delete it as one.
			return r.removeLeaf(name, acc)
		default:
			return nil, core.WrapOp("list", name, err)
		}
	}

	for _, entry := range entries {
		acc, err = r.removeEntry(ctx, path.Join(name, entry.Name()), acc)
		if err != nil {
			return nil, err
		}
	}
	return r.removeLeaf(name, acc)
}

// removeLeaf deletes a single entry (file, symlink, or now-empty
// directory), absorbing concurrent disappearance.
func (r *remover) removeLeaf(name string, acc []string) ([]string, error) {
	if err := r.fsys.Remove(name); err != nil {
		if core.IsNotFound(err) {
			return acc, nil
		}
		return nil, core.WrapOp("remove", name, err)
	}
	return append(acc, name), nil
}
