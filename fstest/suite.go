// Package fstest provides a conformance suite for core.FS providers.
//
// Provider packages import this package from their tests and hand it a
// constructor that returns a fresh, empty filesystem. The suite checks the
// interface contracts every provider must honor, plus the optional metadata
// and symlink extensions when the provider declares support for them.
//
// Example usage:
//
//	func TestMemory(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return billy.NewMemory()
//	    }, fstest.Config{})
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// Config declares provider capabilities so the suite can adapt.
type Config struct {
	// Metadata indicates Chmod and Chtimes actually take effect. Providers
	// that implement MetadataFS but reject mutation (memory) leave it false.
	Metadata bool

	// SkipTests lists group names to skip entirely, e.g. "SymlinkFS".
	SkipTests []string
}

func (c Config) skip(name string) bool {
	for _, s := range c.SkipTests {
		if s == name {
			return true
		}
	}
	return false
}

// TestSuite runs every conformance group against fresh filesystems from
// newFS. Each group gets its own instance since groups mutate state.
func TestSuite(t *testing.T, newFS func() core.FS, config Config) {
	groups := []struct {
		name string
		fn   func(*testing.T, core.FS, Config)
	}{
		{"ReadFS", TestReadFS},
		{"WriteFS", TestWriteFS},
		{"ManageFS", TestManageFS},
		{"WalkFS", TestWalkFS},
		{"SymlinkFS", TestSymlinkFS},
		{"MetadataFS", TestMetadataFS},
	}
	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.skip(g.name) {
				t.Skip("skipped by provider configuration")
			}
			g.fn(t, newFS(), config)
		})
	}
}
