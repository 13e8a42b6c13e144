// Package cmd implements the finstmt CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"finstmt/internal/cli"
	"finstmt/internal/config"
	"finstmt/internal/mapping"
	"finstmt/internal/model"
	"finstmt/internal/pipeline"
	"finstmt/internal/source"
	"finstmt/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagMapping  string
	flagOut      string
	flagNoCache  bool
	flagNoExport bool
	flagQuiet    bool
)

// cfg is loaded once before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "finstmt <trial-balance>",
	Short: "Financial statement generator for trial balances",
	Long: "Classify trial-balance accounts into categories and generate an " +
		"Income Statement and Balance Sheet, with CSV, PDF, and XLSX exports.",
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg, _ = config.Load()
		cli.SetCurrency(cfg.Export.Currency)
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMapping, "mapping", "m", "", "Mapping file path (default: config dir)")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "Export directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite parse cache, reparse the file")
	rootCmd.PersistentFlags().BoolVar(&flagNoExport, "no-export", false, "Display statements without writing export files")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// mappingStore returns the store for the effective mapping path
// (flag over config over default).
func mappingStore() *mapping.Store {
	if flagMapping != "" {
		return mapping.NewStore(flagMapping)
	}
	return mapping.NewStore(cfg.MappingPath())
}

// exportDir returns the effective export directory.
func exportDir() string {
	if flagOut != "" {
		return flagOut
	}
	return cfg.ExportDir()
}

// loadLedger is the shared ingestion path used by all commands.
// Uses the SQLite parse cache when available for fast subsequent runs.
func loadLedger(path string) ([]model.LedgerRow, error) {
	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			// Cache open failed — fall back to uncached
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer func() { _ = cache.Close() }()

			rows, fromCache, err := pipeline.LoadLedger(path, cache)
			if err != nil {
				return nil, describeSchemaError(err)
			}
			if !flagQuiet {
				if fromCache {
					fmt.Fprintf(os.Stderr, "  Loaded %s rows from cache\n", cli.FormatNumber(int64(len(rows))))
				} else {
					fmt.Fprintf(os.Stderr, "  Parsed %s rows\n", cli.FormatNumber(int64(len(rows))))
				}
			}
			return rows, nil
		}
	}

	rows, _, err := pipeline.LoadLedger(path, nil)
	if err != nil {
		return nil, describeSchemaError(err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Parsed %s rows\n", cli.FormatNumber(int64(len(rows))))
	}
	return rows, nil
}

// describeSchemaError adds the full required-column list to schema
// failures so the user can fix the file without consulting docs.
func describeSchemaError(err error) error {
	var schemaErr *source.SchemaError
	if errors.As(err, &schemaErr) {
		return fmt.Errorf("%w (the file must contain columns: Account Name, Debit, Credit)", err)
	}
	return err
}

// uniqueAccounts returns distinct account names in input order.
func uniqueAccounts(rows []model.LedgerRow) []string {
	seen := make(map[string]struct{}, len(rows))
	var accounts []string
	for _, r := range rows {
		if _, ok := seen[r.AccountName]; ok {
			continue
		}
		seen[r.AccountName] = struct{}{}
		accounts = append(accounts, r.AccountName)
	}
	return accounts
}
