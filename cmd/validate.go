package cmd

import (
	"fmt"

	"finstmt/internal/cli"
	"finstmt/internal/pipeline"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <trial-balance>",
	Short: "Check a trial balance for schema and balance problems",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	rows, err := loadLedger(args[0])
	if err != nil {
		return err
	}

	res := pipeline.Validate(rows)

	table := cli.Table{
		Headers: []string{"Check", "Value"},
		Rows: [][]string{
			{"Rows", cli.FormatNumber(int64(len(rows)))},
			{"Total Debits", cli.FormatAmount(res.TotalDebits)},
			{"Total Credits", cli.FormatAmount(res.TotalCredits)},
		},
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(table))
	fmt.Println()

	if res.Balanced {
		fmt.Println(cli.RenderSuccess("Trial balance debits and credits are balanced."))
	} else {
		fmt.Println(cli.RenderWarning(fmt.Sprintf(
			"Total Debits (%s) do not equal Total Credits (%s). Please check your data.",
			cli.FormatAmount(res.TotalDebits),
			cli.FormatAmount(res.TotalCredits),
		)))
	}
	return nil
}
