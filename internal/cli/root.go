// Package cli implements the fsutil command tree.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fsutil/billy"
	"github.com/jmgilman/go/fsutil/core"
	"github.com/jmgilman/go/fsutil/internal/config"
	"github.com/jmgilman/go/fsutil/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "fsutil",
	Short: "Filesystem swiss-army knife",
	Long: `fsutil copies, deletes, lists, and serves file trees using the same
engine the library exposes, so behavior on the command line matches
behavior in code: symlinks are replicated rather than followed, deletes
are idempotent, and partial progress is never rolled back.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// loadEnvironment loads .env then the project config from the working
// directory, falling back to defaults when the file is absent.
func loadEnvironment(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil, err
		}
		cfg = config.Default()
	}

	verbose := cfg.Verbose || getVerboseFlag(cmd)
	return cfg, logging.New(verbose), nil
}

// hostFS returns a local filesystem and the slash path of name within it.
// Relative arguments are resolved against the working directory.
func hostFS(name string) (core.FS, string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %s: %w", name, err)
	}
	return billy.NewLocal(), filepath.ToSlash(abs), nil
}
