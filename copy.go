package fsutil

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"syscall"

	"github.com/jmgilman/go/fsutil/core"
)

// ConflictFunc decides what happens when a destination entry already exists
// during a copy: true means overwrite, false means skip. It must be
// deterministic with respect to its arguments so copy results are
// reproducible.
type ConflictFunc func(src, dst string) bool

// Overwrite is a ConflictFunc that always overwrites. It is the default
// conflict policy.
func Overwrite(_, _ string) bool { return true }

// Skip is a ConflictFunc that never overwrites.
func Skip(_, _ string) bool { return false }

// CopyOptions configures the recursive copy engine. The zero value is valid
// and means "always overwrite".
type CopyOptions struct {
	// OnConflict is consulted once per conflicting destination entry.
	// nil means Overwrite.
	OnConflict ConflictFunc
}

func (o CopyOptions) conflict() ConflictFunc {
	if o.OnConflict == nil {
		return Overwrite
	}
	return o.OnConflict
}

// CopyAll recursively copies src (a file, directory, or symlink) under
// destRoot and returns the destination paths it created, in traversal
// order.
//
// When destRoot is an existing directory, or src is itself a directory, the
// effective target is destRoot/base(src); otherwise destRoot is the target
// verbatim. The target's parent directory is created if missing.
//
// Regular files are copied with an exclusive create; an occupied
// destination invokes the conflict policy, and an approved overwrite
// removes the entry and retries once. Source permission bits are propagated
// when the provider supports Chmod. Symlinks are recreated with the same
// target and never followed, so symlink cycles cannot occur.
//
// On error the walk stops and only the error is returned; paths already
// copied remain on the filesystem. Skipped conflicts are not errors and do
// not appear in the result.
func CopyAll(ctx context.Context, fsys core.FS, src, destRoot string, opts CopyOptions) ([]string, error) {
	src = path.Clean(src)
	c := &copier{fsys: fsys, onConflict: opts.conflict()}

	info, err := lstat(fsys, src)
	if err != nil {
		return nil, core.WrapOp2("copy", src, destRoot, err)
	}

	dst := path.Clean(destRoot)
	if dirExists(fsys, dst) || info.IsDir() {
		dst = path.Join(dst, path.Base(src))
	}
	if parent := path.Dir(dst); parent != "." && parent != "/" {
		// Best-effort: an already existing parent is fine.
		if err := fsys.MkdirAll(parent, 0o755); err != nil && !core.IsAlreadyExists(err) {
			return nil, core.WrapOp("mkdir", parent, err)
		}
	}

	return c.copyEntry(ctx, src, dst, nil)
}

// CopyFile copies the single regular file src to dst, applying the same
// conflict and permission semantics as CopyAll. When dst is an existing
// directory the file is copied into it. Copying a directory is an error.
func CopyFile(ctx context.Context, fsys core.FS, src, dst string, opts CopyOptions) error {
	if err := ctx.Err(); err != nil {
		return core.WrapOp2("copy", src, dst, err)
	}
	src, dst = path.Clean(src), path.Clean(dst)

	info, err := fsys.Stat(src)
	if err != nil {
		return core.WrapOp("copy", src, err)
	}
	if info.IsDir() {
		return core.WrapOp("copy", src, &fs.PathError{Op: "copy", Path: src, Err: syscall.EISDIR})
	}
	if dirExists(fsys, dst) {
		dst = path.Join(dst, path.Base(src))
	}

	c := &copier{fsys: fsys, onConflict: opts.conflict()}
	_, err = c.copyRegular(src, dst, info.Mode().Perm(), nil)
	return err
}

// copier carries the per-invocation state of the recursive copy engine.
type copier struct {
	fsys       core.FS
	onConflict ConflictFunc
}

// copyEntry dispatches on the classification of src. The accumulator grows
// monotonically across siblings; any error discards it in favor of the
// error alone.
func (c *copier) copyEntry(ctx context.Context, src, dst string, acc []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, core.WrapOp2("copy", src, dst, err)
	}

	info, err := lstat(c.fsys, src)
	if err != nil {
		return nil, core.WrapOp2("copy", src, dst, err)
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return c.copySymlink(src, dst, acc)
	case info.IsDir():
		return c.copyDir(ctx, src, dst, info.Mode().Perm(), acc)
	default:
		return c.copyRegular(src, dst, info.Mode().Perm(), acc)
	}
}

func (c *copier) copyDir(ctx context.Context, src, dst string, perm fs.FileMode, acc []string) ([]string, error) {
	entries, err := c.fsys.ReadDir(src)
	if err != nil {
		// The source can stop being a directory between classification
		// and listing; fall over to the file branch.
		if core.IsNotDir(err) {
			return c.copyRegular(src, dst, perm, acc)
		}
		return nil, core.WrapOp("list", src, err)
	}

	if err := c.fsys.Mkdir(dst, perm); err != nil && !core.IsAlreadyExists(err) {
		return nil, core.WrapOp("mkdir", dst, err)
	}
	acc = append(acc, dst)

	for _, entry := range entries {
		acc, err = c.copyEntry(ctx, path.Join(src, entry.Name()), path.Join(dst, entry.Name()), acc)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (c *copier) copyRegular(src, dst string, perm fs.FileMode, acc []string) ([]string, error) {
	err := c.writeCopy(src, dst, perm, true)
	if core.IsAlreadyExists(err) {
		if !c.onConflict(src, dst) {
			return acc, nil
		}
		if err := c.fsys.Remove(dst); err != nil && !core.IsNotFound(err) {
			return nil, core.WrapOp("remove", dst, err)
		}
		err = c.writeCopy(src, dst, perm, false)
	}
	if err != nil {
		return nil, core.WrapOp2("copy", src, dst, err)
	}
	if err := c.chmod(dst, perm); err != nil {
		return nil, core.WrapOp("chmod", dst, err)
	}
	return append(acc, dst), nil
}

func (c *copier) copySymlink(src, dst string, acc []string) ([]string, error) {
	sfs, ok := c.fsys.(core.SymlinkFS)
	if !ok {
		return nil, core.WrapOp2("symlink", src, dst, core.ErrUnsupported)
	}

	target, err := sfs.Readlink(src)
	if err != nil {
		return nil, core.WrapOp("readlink", src, err)
	}

	err = sfs.Symlink(target, dst)
	if core.IsAlreadyExists(err) {
		if !c.onConflict(src, dst) {
			return acc, nil
		}
		if err := c.fsys.Remove(dst); err != nil && !core.IsNotFound(err) {
			return nil, core.WrapOp("remove", dst, err)
		}
		err = sfs.Symlink(target, dst)
	}
	if err != nil {
		return nil, core.WrapOp2("symlink", src, dst, err)
	}
	return append(acc, dst), nil
}

// writeCopy streams src into dst. Exclusive mode fails with ErrExist
// instead of silently replacing an occupied destination.
func (c *copier) writeCopy(src, dst string, perm fs.FileMode, exclusive bool) error {
	in, err := c.fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if exclusive {
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	out, err := c.fsys.OpenFile(dst, flag, perm)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// chmod propagates source permission bits onto dst. Providers without mode
// bits (in-memory) report ErrUnsupported, which is not a failure.
func (c *copier) chmod(dst string, perm fs.FileMode) error {
	mfs, ok := c.fsys.(core.MetadataFS)
	if !ok {
		return nil
	}
	if err := mfs.Chmod(dst, perm); err != nil && !core.IsUnsupported(err) {
		return err
	}
	return nil
}

// lstat classifies an entry without following symlinks, falling back to
// Stat for providers without Lstat.
func lstat(fsys core.FS, name string) (fs.FileInfo, error) {
	if mfs, ok := fsys.(core.MetadataFS); ok {
		return mfs.Lstat(name)
	}
	return fsys.Stat(name)
}

// dirExists reports whether name exists and is a directory. Errors count as
// "no": the subsequent operation surfaces them with better context.
func dirExists(fsys core.FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}
