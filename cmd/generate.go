package cmd

import (
	"fmt"
	"os"

	"finstmt/internal/cli"
	"finstmt/internal/export"
	"finstmt/internal/model"
	"finstmt/internal/pipeline"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <trial-balance>",
	Short: "Generate financial statements from a trial balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, args []string) error {
	rows, err := loadLedger(args[0])
	if err != nil {
		return err
	}

	m := mappingStore().Load()
	rep := pipeline.Generate(rows, m)

	fmt.Println()
	if rep.Validation.Balanced {
		fmt.Println(cli.RenderSuccess("Trial balance debits and credits are balanced."))
	} else {
		fmt.Println(cli.RenderWarning(fmt.Sprintf(
			"Total Debits (%s) do not equal Total Credits (%s). Please check your data.",
			cli.FormatAmount(rep.Validation.TotalDebits),
			cli.FormatAmount(rep.Validation.TotalCredits),
		)))
	}
	fmt.Println()

	fmt.Println(cli.RenderTitle("FINANCIAL STATEMENTS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(statementTable("Income Statement", rep.IncomeStatement, 3)))
	fmt.Println()
	fmt.Print(cli.RenderTable(statementTable("Balance Sheet", rep.BalanceSheet, 2, 6)))
	fmt.Println()

	if rep.BalanceSheetBalanced {
		fmt.Println(cli.RenderSuccess("Balance Sheet is balanced."))
	} else {
		fmt.Println(cli.RenderWarning("Balance Sheet does not balance. Check your mappings or data."))
	}

	if flagNoExport {
		return nil
	}

	dir := exportDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	fmt.Println()
	for _, ex := range export.All() {
		paths, err := ex.Export(dir, rep)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", ex.Name(), err)
		}
		for _, p := range paths {
			fmt.Printf("  Wrote %s\n", p)
		}
	}

	return nil
}

// statementTable builds a display table for a statement, inserting a
// separator before each of the given line indexes (the derived totals).
func statementTable(title string, items []model.LineItem, separatorBefore ...int) cli.Table {
	sep := make(map[int]bool, len(separatorBefore))
	for _, i := range separatorBefore {
		sep[i] = true
	}

	var rows [][]string
	for i, item := range items {
		if sep[i] {
			rows = append(rows, []string{"---"})
		}
		rows = append(rows, []string{item.Description, cli.FormatAmount(item.Amount)})
	}

	return cli.Table{
		Title:   title,
		Headers: []string{"Description", "Amount"},
		Rows:    rows,
	}
}
