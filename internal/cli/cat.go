package cli

import (
	"os"

	"github.com/spf13/cobra"

	fsutil "github.com/jmgilman/go/fsutil"
)

var catCmd = &cobra.Command{
	Use:   "cat <file>...",
	Short: "Print file contents line by line",
	Long: `Print each file's contents to stdout. Files are streamed a line at a
time, so arbitrarily large files use constant memory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		fsys, name, err := hostFS(arg)
		if err != nil {
			return err
		}

		lines, err := fsutil.Lines(fsys, name)
		if err != nil {
			return err
		}
		for lines.Scan() {
			if _, err := os.Stdout.Write(lines.Bytes()); err != nil {
				lines.Close()
				return err
			}
		}
		if err := lines.Err(); err != nil {
			return err
		}
	}
	return nil
}
