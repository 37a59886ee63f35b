package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestWriteFS checks Create, OpenFile, WriteFile, Mkdir and MkdirAll,
// including the exclusive-create flag the copy engine relies on.
func TestWriteFS(t *testing.T, fsys core.FS, _ Config) {
	t.Run("CreateAndRead", func(t *testing.T) {
		f, err := fsys.Create("created.txt")
		if err != nil {
			t.Fatalf("Create: got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("hello")); err != nil {
			t.Fatalf("Write: got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}

		data, err := fsys.ReadFile("created.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if !bytes.Equal(data, []byte("hello")) {
			t.Errorf("ReadFile: got %q, want %q", data, "hello")
		}
	})

	t.Run("CreateTruncates", func(t *testing.T) {
		if err := fsys.WriteFile("trunc.txt", []byte("long long line"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		f, err := fsys.Create("trunc.txt")
		if err != nil {
			t.Fatalf("Create: got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("x")); err != nil {
			t.Fatalf("Write: got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}

		data, err := fsys.ReadFile("trunc.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if string(data) != "x" {
			t.Errorf("ReadFile: got %q, want %q", data, "x")
		}
	})

	t.Run("OpenFileExclusive", func(t *testing.T) {
		f, err := fsys.OpenFile("excl.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(O_EXCL): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}

		_, err = fsys.OpenFile("excl.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(O_EXCL) on existing file: got error %v, want fs.ErrExist", err)
		}
	})

	t.Run("WriteFileOverwrites", func(t *testing.T) {
		if err := fsys.WriteFile("over.txt", []byte("first"), 0o644); err != nil {
			t.Fatalf("WriteFile: got error %v, want nil", err)
		}
		if err := fsys.WriteFile("over.txt", []byte("second"), 0o644); err != nil {
			t.Fatalf("WriteFile: got error %v, want nil", err)
		}
		data, err := fsys.ReadFile("over.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if string(data) != "second" {
			t.Errorf("ReadFile: got %q, want %q", data, "second")
		}
	})

	t.Run("Mkdir", func(t *testing.T) {
		if err := fsys.Mkdir("single", 0o755); err != nil {
			t.Fatalf("Mkdir: got error %v, want nil", err)
		}
		info, err := fsys.Stat("single")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Error("Stat: IsDir() = false, want true")
		}
	})

	t.Run("MkdirMissingParent", func(t *testing.T) {
		err := fsys.Mkdir("no/such/parent", 0o755)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir without parent: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := fsys.MkdirAll("a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll: got error %v, want nil", err)
		}
		// Repeating is a no-op.
		if err := fsys.MkdirAll("a/b/c", 0o755); err != nil {
			t.Errorf("MkdirAll (repeat): got error %v, want nil", err)
		}
	})
}
