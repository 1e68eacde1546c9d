package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/releve-dev/releve/internal/config"
	"github.com/releve-dev/releve/internal/ingest"
)

func newCheckCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <input.csv>",
		Short: "Ingest a file and report rows worth a second look",
		Long: `Ingest a file and report advisory findings: negative values in the
debit or credit columns and booking dates that could not be normalized.
Findings do not fail the command; sources are deliberately accepted as-is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runCheck(cmd, cfg, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, cfg *config.Config, in string) error {
	records, err := ingestFile(cfg, in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	findings := ingest.Check(records)
	if len(findings) == 0 {
		fmt.Fprintf(out, "%d records, no findings\n", len(records))
		return nil
	}
	for _, f := range findings {
		fmt.Fprintln(out, f)
	}
	fmt.Fprintf(out, "%d records, %d findings\n", len(records), len(findings))
	return nil
}
