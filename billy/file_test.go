package billy

import (
	"io"
	"os"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

func TestFile_SeekAndRead(t *testing.T) {
	fsys := NewMemory()
	if err := fsys.WriteFile("f.txt", []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := fsys.OpenFile("f.txt", os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	seeker, ok := f.(io.Seeker)
	if !ok {
		t.Fatalf("OpenFile: %T does not implement io.Seeker", f)
	}
	pos, err := seeker.Seek(5, io.SeekStart)
	if err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if pos != 5 {
		t.Errorf("Seek: pos = %d, want 5", pos)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "56789" {
		t.Errorf("ReadAll after Seek: got %q, want %q", data, "56789")
	}
}

func TestFile_Truncate(t *testing.T) {
	fsys := NewMemory()
	if err := fsys.WriteFile("f.txt", []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := fsys.OpenFile("f.txt", os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	truncater, ok := f.(core.Truncater)
	if !ok {
		t.Fatalf("OpenFile: %T does not implement core.Truncater", f)
	}
	if err := truncater.Truncate(4); err != nil {
		t.Fatalf("Truncate: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := fsys.ReadFile("f.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "0123" {
		t.Errorf("ReadFile after Truncate: got %q, want %q", data, "0123")
	}
}

func TestFile_Name(t *testing.T) {
	fsys := NewMemory()
	f, err := fsys.Create("named.txt")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	if got := f.Name(); got != "named.txt" {
		t.Errorf("Name() = %q, want %q", got, "named.txt")
	}
}

func TestFile_Stat(t *testing.T) {
	fsys := NewMemory()
	if err := fsys.WriteFile("f.txt", []byte("abc"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := fsys.OpenFile("f.txt", os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 3 {
		t.Errorf("Stat: Size() = %d, want 3", info.Size())
	}
}

func TestFile_SyncLocal(t *testing.T) {
	fsys, err := NewLocal().Chroot(t.TempDir())
	if err != nil {
		t.Fatalf("Chroot: %v", err)
	}

	f, err := fsys.Create("f.txt")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	syncer, ok := f.(core.Syncer)
	if !ok {
		t.Fatalf("Create: %T does not implement core.Syncer", f)
	}
	if err := syncer.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
}
