package fstest

import (
	"io/fs"
	"sort"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestWalkFS checks Walk visits every entry and honors fs.SkipDir.
func TestWalkFS(t *testing.T, fsys core.FS, _ Config) {
	files := []string{"walk/a.txt", "walk/sub/b.txt", "walk/sub/deep/c.txt"}
	if err := fsys.MkdirAll("walk/sub/deep", 0o755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	for _, name := range files {
		if err := fsys.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
	}

	t.Run("VisitsAll", func(t *testing.T) {
		var visited []string
		err := fsys.Walk("walk", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk: got error %v, want nil", err)
		}

		want := []string{"walk", "walk/a.txt", "walk/sub", "walk/sub/b.txt", "walk/sub/deep", "walk/sub/deep/c.txt"}
		sort.Strings(visited)
		sort.Strings(want)
		if len(visited) != len(want) {
			t.Fatalf("Walk: visited %d paths %v, want %d", len(visited), visited, len(want))
		}
		for i := range want {
			if visited[i] != want[i] {
				t.Errorf("Walk: visited[%d] = %q, want %q", i, visited[i], want[i])
			}
		}
	})

	t.Run("SkipDir", func(t *testing.T) {
		var visited []string
		err := fsys.Walk("walk", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == "walk/sub" {
				return fs.SkipDir
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk: got error %v, want nil", err)
		}
		for _, p := range visited {
			if p == "walk/sub/b.txt" || p == "walk/sub/deep" {
				t.Errorf("Walk: visited %q despite fs.SkipDir", p)
			}
		}
	})
}
