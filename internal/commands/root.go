package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/releve-dev/releve/internal/buildinfo"
	"github.com/releve-dev/releve/internal/config"
	"github.com/releve-dev/releve/internal/dialect"
	"github.com/releve-dev/releve/internal/ingest"
	"github.com/releve-dev/releve/internal/model"
)

// defaultConfigFile is picked up from the working directory when present.
const defaultConfigFile = "releve.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "releve",
		Short:   "Normalize bank-statement CSV exports into a canonical schema",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			ingest.SetLogger(logger)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to releve.yaml")

	rootCmd.AddCommand(newConvertCommand(&configPath))
	rootCmd.AddCommand(newSummaryCommand(&configPath))
	rootCmd.AddCommand(newInspectCommand(&configPath))
	rootCmd.AddCommand(newCheckCommand(&configPath))
	rootCmd.AddCommand(newListCommand())

	return rootCmd
}

// loadConfig resolves the effective configuration: an explicit --config
// path, else releve.yaml in the working directory, else built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.Load(defaultConfigFile)
	}
	return config.Default(), nil
}

// detectDialect sniffs the file with the configured fallback.
func detectDialect(cfg *config.Config, path string) (dialect.Dialect, error) {
	fallback, err := cfg.Fallback()
	if err != nil {
		return dialect.Dialect{}, err
	}
	return dialect.DetectWithFallback(path, fallback), nil
}

// ingestFile runs the full pipeline on path using the configured fallback
// dialect.
func ingestFile(cfg *config.Config, path string) ([]model.Record, error) {
	d, err := detectDialect(cfg, path)
	if err != nil {
		return nil, err
	}
	return ingest.IngestDialect(path, d)
}
