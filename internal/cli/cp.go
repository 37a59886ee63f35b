package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fsutil "github.com/jmgilman/go/fsutil"
)

var cpCmd = &cobra.Command{
	Use:   "cp <source> <destination>",
	Short: "Copy a file or directory tree",
	Long: `Copy a file or directory tree. Directories are copied recursively.
When the destination is an existing directory the source is placed
inside it, like cp -r. Symlinks are replicated, never followed.

The conflict policy decides what happens when a destination file already
exists: overwrite (default), skip, or prompt. Prompting falls back to
skip when no terminal is attached.`,
	Args: cobra.ExactArgs(2),
	RunE: runCp,
}

func init() {
	cpCmd.Flags().String("on-conflict", "", "Conflict policy: overwrite, skip, or prompt (default from config)")
	rootCmd.AddCommand(cpCmd)
}

func runCp(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	policy, err := cmd.Flags().GetString("on-conflict")
	if err != nil {
		return err
	}
	if policy == "" {
		policy = cfg.OnConflict
	}

	opts := fsutil.CopyOptions{}
	switch policy {
	case "", "overwrite":
		opts.OnConflict = fsutil.Overwrite
	case "skip":
		opts.OnConflict = fsutil.Skip
	case "prompt":
		opts.OnConflict = promptOverwrite
	default:
		return fmt.Errorf("unknown conflict policy %q", policy)
	}

	fsys, src, err := hostFS(args[0])
	if err != nil {
		return err
	}
	_, dst, err := hostFS(args[1])
	if err != nil {
		return err
	}

	paths, err := fsutil.CopyAll(cmd.Context(), fsys, src, dst, opts)
	if err != nil {
		return err
	}

	for _, p := range paths {
		logger.Debug("copied %s", p)
	}
	logger.Info("copied %d entries to %s", len(paths), dst)
	return nil
}
