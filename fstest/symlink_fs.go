package fstest

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestSymlinkFS checks symlink creation, Readlink and Lstat behavior.
// Skipped when the provider does not implement the extension.
func TestSymlinkFS(t *testing.T, fsys core.FS, _ Config) {
	sfs, ok := fsys.(core.SymlinkFS)
	if !ok {
		t.Skip("provider does not implement SymlinkFS")
	}
	mfs, ok := fsys.(core.MetadataFS)
	if !ok {
		t.Skip("provider does not implement MetadataFS (needed for Lstat)")
	}

	if err := fsys.WriteFile("target.txt", []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}
	if err := sfs.Symlink("target.txt", "link"); err != nil {
		t.Fatalf("Symlink: got error %v, want nil", err)
	}

	t.Run("Readlink", func(t *testing.T) {
		target, err := sfs.Readlink("link")
		if err != nil {
			t.Fatalf("Readlink: got error %v, want nil", err)
		}
		if target != "target.txt" {
			t.Errorf("Readlink: got %q, want %q", target, "target.txt")
		}
	})

	t.Run("LstatReportsLink", func(t *testing.T) {
		info, err := mfs.Lstat("link")
		if err != nil {
			t.Fatalf("Lstat: got error %v, want nil", err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat: mode %v is not a symlink", info.Mode())
		}
	})

	t.Run("StatFollowsLink", func(t *testing.T) {
		info, err := fsys.Stat("link")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			t.Errorf("Stat: mode %v should have followed the link", info.Mode())
		}
		if got, want := info.Size(), int64(len("content")); got != want {
			t.Errorf("Stat: Size() = %d, want %d", got, want)
		}
	})
}
