package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/releve-dev/releve/internal/config"
	"github.com/releve-dev/releve/internal/ingest"
)

func newConvertCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input.csv> <output.csv>",
		Short: "Normalize a bank CSV export into the canonical schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runConvert(cmd, cfg, args[0], args[1])
		},
	}
}

func runConvert(cmd *cobra.Command, cfg *config.Config, in, out string) error {
	// Ingest fully before touching the output file: a failed import must
	// not leave a half-written export behind.
	records, err := ingestFile(cfg, in)
	if err != nil {
		return err
	}
	if err := ingest.ExportFile(out, records); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Converted %d records: %s -> %s\n", len(records), in, out)
	return nil
}
