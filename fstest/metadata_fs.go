package fstest

import (
	"io/fs"
	"testing"
	"time"

	"github.com/jmgilman/go/fsutil/core"
)

// TestMetadataFS checks Chmod and Chtimes for providers whose config
// declares working metadata mutation. Providers without it must still
// fail with a recognizable unsupported error.
func TestMetadataFS(t *testing.T, fsys core.FS, config Config) {
	mfs, ok := fsys.(core.MetadataFS)
	if !ok {
		t.Skip("provider does not implement MetadataFS")
	}

	if err := fsys.WriteFile("meta.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}

	if !config.Metadata {
		t.Run("UnsupportedIsClassified", func(t *testing.T) {
			err := mfs.Chmod("meta.txt", 0o600)
			if err == nil {
				t.Fatal("Chmod: got nil, want unsupported error")
			}
			if !core.IsUnsupported(err) {
				t.Errorf("Chmod: got error %v, want unsupported kind", err)
			}
		})
		return
	}

	t.Run("Chmod", func(t *testing.T) {
		if err := mfs.Chmod("meta.txt", 0o600); err != nil {
			t.Fatalf("Chmod: got error %v, want nil", err)
		}
		info, err := fsys.Stat("meta.txt")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if got, want := info.Mode().Perm(), fs.FileMode(0o600); got != want {
			t.Errorf("Stat: perm = %v, want %v", got, want)
		}
	})

	t.Run("Chtimes", func(t *testing.T) {
		mtime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		if err := mfs.Chtimes("meta.txt", mtime, mtime); err != nil {
			t.Fatalf("Chtimes: got error %v, want nil", err)
		}
		info, err := fsys.Stat("meta.txt")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if !info.ModTime().Equal(mtime) {
			t.Errorf("Stat: ModTime = %v, want %v", info.ModTime(), mtime)
		}
	})
}
