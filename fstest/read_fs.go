package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestReadFS checks Open, Stat, ReadDir, ReadFile and Exists against a
// small seeded tree.
func TestReadFS(t *testing.T, fsys core.FS, _ Config) {
	content := []byte("read conformance content")
	if err := fsys.MkdirAll("data", 0o755); err != nil {
		t.Fatalf("MkdirAll(data): setup failed: %v", err)
	}
	if err := fsys.WriteFile("data/file.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(data/file.txt): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		f, err := fsys.Open("data/file.txt")
		if err != nil {
			t.Fatalf("Open: got error %v, want nil", err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll: got error %v, want nil", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadAll: got %q, want %q", data, content)
		}
	})

	t.Run("OpenNotExist", func(t *testing.T) {
		_, err := fsys.Open("data/missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("StatFile", func(t *testing.T) {
		info, err := fsys.Stat("data/file.txt")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Error("Stat: IsDir() = true, want false")
		}
		if got, want := info.Size(), int64(len(content)); got != want {
			t.Errorf("Stat: Size() = %d, want %d", got, want)
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := fsys.Stat("data")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Error("Stat: IsDir() = false, want true")
		}
	})

	t.Run("ReadDir", func(t *testing.T) {
		entries, err := fsys.ReadDir("data")
		if err != nil {
			t.Fatalf("ReadDir: got error %v, want nil", err)
		}
		if len(entries) != 1 {
			t.Fatalf("ReadDir: got %d entries, want 1", len(entries))
		}
		if entries[0].Name() != "file.txt" {
			t.Errorf("ReadDir: entry name = %q, want %q", entries[0].Name(), "file.txt")
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := fsys.ReadFile("data/file.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile: got %q, want %q", data, content)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		tests := []struct {
			path string
			want bool
		}{
			{"data/file.txt", true},
			{"data", true},
			{"data/missing.txt", false},
		}
		for _, tt := range tests {
			got, err := fsys.Exists(tt.path)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", tt.path, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})
}
