package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls [directory]",
	Short: "List a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

func init() {
	lsCmd.Flags().BoolP("long", "l", false, "Show mode and size for each entry")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	fsys, name, err := hostFS(dir)
	if err != nil {
		return err
	}

	entries, err := fsys.ReadDir(name)
	if err != nil {
		return err
	}

	long, err := cmd.Flags().GetBool("long")
	if err != nil {
		return err
	}
	if !long {
		for _, e := range entries {
			fmt.Println(e.Name())
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", info.Mode(), info.Size(), e.Name())
	}
	return w.Flush()
}
