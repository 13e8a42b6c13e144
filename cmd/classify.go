package cmd

import (
	"fmt"

	"finstmt/internal/cli"
	"finstmt/internal/tui"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <trial-balance>",
	Short: "Interactively map accounts to categories",
	Long: "Walks through every distinct account in the trial balance and asks " +
		"which category it belongs to. Saved assignments are reused on the " +
		"next upload.",
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, args []string) error {
	rows, err := loadLedger(args[0])
	if err != nil {
		return err
	}

	accounts := uniqueAccounts(rows)
	if len(accounts) == 0 {
		fmt.Println("\n  No accounts found in the trial balance.")
		return nil
	}

	st := mappingStore()
	current := st.Load()

	merged, save, err := tui.RunClassifyForm(accounts, current)
	if err != nil {
		return fmt.Errorf("classification form: %w", err)
	}
	if !save {
		fmt.Println("\n  Mapping not saved.")
		return nil
	}

	if err := st.Save(merged); err != nil {
		return fmt.Errorf("saving mapping: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderSuccess(fmt.Sprintf("Mappings saved to %s.", st.Path)))
	return nil
}
