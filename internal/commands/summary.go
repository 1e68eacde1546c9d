package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/releve-dev/releve/internal/aggregate"
	"github.com/releve-dev/releve/internal/config"
)

func newSummaryCommand(configPath *string) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "summary <input.csv>",
		Short: "Aggregate debit/credit totals by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runSummary(cmd, cfg, args[0], by)
		},
	}

	cmd.Flags().StringVar(&by, "by", "category", "grouping: category, subcategory or full")
	return cmd
}

func runSummary(cmd *cobra.Command, cfg *config.Config, in, by string) error {
	records, err := ingestFile(cfg, in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total := aggregate.GrandTotal(records)

	switch by {
	case "category":
		groups := aggregate.By(records, aggregate.CategoryKey(cfg.Labels.Uncategorized))
		aggregate.RenderTable(out, "AGRÉGATION PAR CATÉGORIE", groups, total)
	case "subcategory":
		groups := aggregate.By(records, aggregate.SubcategoryKey(cfg.Labels.Unspecified))
		aggregate.RenderTable(out, "AGRÉGATION PAR SOUS-CATÉGORIE", groups, total)
	case "full":
		aggregate.RenderNested(out, records, cfg.Labels.Uncategorized, cfg.Labels.Unspecified)
	default:
		return fmt.Errorf("unknown grouping %q (want category, subcategory or full)", by)
	}
	return nil
}
