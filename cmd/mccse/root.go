package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mccse/internal/catalog"
	"mccse/internal/config"
)

var (
	rootConfigPath string
	rootSchemaPath string
)

var rootCmd = &cobra.Command{
	Use:   "mccse",
	Short: "Multi-fuel carbon and cost scenario explorer",
	Long:  "MCCSE estimates fuel burn, CO2 emissions, and cost for single cargo-ship voyages across fuels, vessel classes, and efficiency scenarios.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to catalog YAML (default: built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&rootSchemaPath, "schema", "schemas/catalog.cue", "Path to CUE schema file")
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadCatalog builds the catalog from the --config file, or falls back to
// the built-in reference data.
func loadCatalog() (*catalog.Catalog, error) {
	if rootConfigPath == "" {
		return catalog.Default(), nil
	}
	cfg, err := config.Load(rootConfigPath, rootSchemaPath)
	if err != nil {
		return nil, err
	}
	return catalog.FromConfig(cfg)
}
