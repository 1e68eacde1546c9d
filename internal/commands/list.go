package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/releve-dev/releve/internal/ingest"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [directory]",
		Short: "List CSV files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runList(cmd, dir)
		},
	}
}

func runList(cmd *cobra.Command, dir string) error {
	files, err := ingest.Scan(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintf(out, "No CSV files in %s\n", dir)
		return nil
	}
	for _, f := range files {
		fmt.Fprintf(out, "%10d  %s\n", f.Size, f.Name)
	}
	return nil
}
