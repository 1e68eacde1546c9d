package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/releve-dev/releve/internal/config"
	"github.com/releve-dev/releve/internal/ingest"
	"github.com/releve-dev/releve/internal/schema"
)

func newInspectCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input.csv>",
		Short: "Show how a file's dialect and columns are understood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runInspect(cmd, cfg, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, cfg *config.Config, in string) error {
	d, err := detectDialect(cfg, in)
	if err != nil {
		return err
	}
	insp, err := ingest.Inspect(in, d)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:      %s\n", in)
	fmt.Fprintf(out, "Delimiter: %s\n", delimiterName(insp.Dialect.Delimiter))
	fmt.Fprintf(out, "Headers:   %d\n", len(insp.Headers))
	fmt.Fprintf(out, "Records:   %d\n", len(insp.Records))
	fmt.Fprintln(out, "Mapping:")
	for _, f := range schema.Fields {
		header, ok := insp.Mapping[f]
		if !ok {
			fmt.Fprintf(out, "  %-15s -> (absent)\n", f)
			continue
		}
		fmt.Fprintf(out, "  %-15s -> %q\n", f, header)
	}
	return nil
}

func delimiterName(r rune) string {
	switch r {
	case '\t':
		return "tab"
	case ';':
		return "semicolon (;)"
	case ',':
		return "comma (,)"
	case '|':
		return "pipe (|)"
	default:
		return string(r)
	}
}
