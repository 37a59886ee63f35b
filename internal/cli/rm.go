package cli

import (
	"github.com/spf13/cobra"

	fsutil "github.com/jmgilman/go/fsutil"
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>...",
	Short: "Delete files or directory trees",
	Long: `Delete each path recursively. Missing paths are not an error, and a
repeated run reports zero removals. Symlinks are removed as entries,
their targets are left alone.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	_, logger, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	total := 0
	for _, arg := range args {
		fsys, name, err := hostFS(arg)
		if err != nil {
			return err
		}

		paths, err := fsutil.RemoveAll(cmd.Context(), fsys, name)
		if err != nil {
			return err
		}
		for _, p := range paths {
			logger.Debug("removed %s", p)
		}
		total += len(paths)
	}

	logger.Info("removed %d entries", total)
	return nil
}
