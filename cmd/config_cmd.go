package cmd

import (
	"fmt"

	"finstmt/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Mapping file:     %s\n", cfg.MappingPath())
	fmt.Printf("    Export directory: %s\n", cfg.ExportDir())
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Currency: %s\n", cfg.Export.Currency)
	return nil
}
