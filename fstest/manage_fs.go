package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestManageFS checks Remove and Rename.
func TestManageFS(t *testing.T, fsys core.FS, _ Config) {
	t.Run("RemoveFile", func(t *testing.T) {
		if err := fsys.WriteFile("victim.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		if err := fsys.Remove("victim.txt"); err != nil {
			t.Fatalf("Remove: got error %v, want nil", err)
		}
		exists, err := fsys.Exists("victim.txt")
		if err != nil {
			t.Fatalf("Exists: got error %v, want nil", err)
		}
		if exists {
			t.Error("Exists after Remove: got true, want false")
		}
	})

	t.Run("RemoveEmptyDir", func(t *testing.T) {
		if err := fsys.Mkdir("emptydir", 0o755); err != nil {
			t.Fatalf("Mkdir: setup failed: %v", err)
		}
		if err := fsys.Remove("emptydir"); err != nil {
			t.Fatalf("Remove: got error %v, want nil", err)
		}
	})

	t.Run("RemoveNonEmptyDir", func(t *testing.T) {
		if err := fsys.Mkdir("fulldir", 0o755); err != nil {
			t.Fatalf("Mkdir: setup failed: %v", err)
		}
		if err := fsys.WriteFile("fulldir/child.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}

		// Recursive deletion empties a directory before removing it;
		// that only works if Remove refuses a non-empty one.
		if err := fsys.Remove("fulldir"); err == nil {
			t.Error("Remove on non-empty directory: got nil, want error")
		}

		exists, err := fsys.Exists("fulldir/child.txt")
		if err != nil {
			t.Fatalf("Exists: got error %v, want nil", err)
		}
		if !exists {
			t.Error("child removed by failed directory Remove")
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		err := fsys.Remove("missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RenameFile", func(t *testing.T) {
		if err := fsys.WriteFile("old.txt", []byte("payload"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		if err := fsys.Rename("old.txt", "new.txt"); err != nil {
			t.Fatalf("Rename: got error %v, want nil", err)
		}

		data, err := fsys.ReadFile("new.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if string(data) != "payload" {
			t.Errorf("ReadFile: got %q, want %q", data, "payload")
		}

		exists, err := fsys.Exists("old.txt")
		if err != nil {
			t.Fatalf("Exists: got error %v, want nil", err)
		}
		if exists {
			t.Error("Exists on old name after Rename: got true, want false")
		}
	})
}
