package cmd

import (
	"fmt"
	"sort"
	"strings"

	"finstmt/internal/cli"
	"finstmt/internal/model"

	"github.com/spf13/cobra"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Show saved account classifications",
	RunE:  runMappingList,
}

var mappingSetCmd = &cobra.Command{
	Use:   "set <account> <category>",
	Short: "Assign a category to an account",
	Args:  cobra.ExactArgs(2),
	RunE:  runMappingSet,
}

var mappingRmCmd = &cobra.Command{
	Use:   "rm <account>",
	Short: "Remove an account's classification",
	Args:  cobra.ExactArgs(1),
	RunE:  runMappingRm,
}

func init() {
	mappingCmd.AddCommand(mappingSetCmd)
	mappingCmd.AddCommand(mappingRmCmd)
	rootCmd.AddCommand(mappingCmd)
}

func runMappingList(_ *cobra.Command, _ []string) error {
	st := mappingStore()
	m := st.Load()

	if len(m) == 0 {
		fmt.Printf("\n  No saved mappings at %s.\n", st.Path)
		fmt.Println("  Run `finstmt classify <trial-balance>` to create some.")
		return nil
	}

	accounts := make([]string, 0, len(m))
	for account := range m {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	rows := make([][]string, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, []string{account, string(m[account])})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Account", "Category"},
		Rows:    rows,
	}))
	return nil
}

func runMappingSet(_ *cobra.Command, args []string) error {
	account, label := args[0], args[1]
	if account == "" {
		return fmt.Errorf("account name must not be empty")
	}

	c, ok := model.ParseCategory(label)
	if !ok {
		return fmt.Errorf("unknown category %q (valid: %s)", label, categoryLabels())
	}

	st := mappingStore()
	m := st.Load()
	m[account] = c
	if err := st.Save(m); err != nil {
		return fmt.Errorf("saving mapping: %w", err)
	}

	fmt.Printf("  %s -> %s\n", account, c)
	return nil
}

func runMappingRm(_ *cobra.Command, args []string) error {
	st := mappingStore()
	m := st.Load()

	if _, ok := m[args[0]]; !ok {
		return fmt.Errorf("no mapping for account %q", args[0])
	}
	delete(m, args[0])

	if err := st.Save(m); err != nil {
		return fmt.Errorf("saving mapping: %w", err)
	}

	fmt.Printf("  Removed %s\n", args[0])
	return nil
}

func categoryLabels() string {
	labels := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		labels[i] = string(c)
	}
	return strings.Join(labels, ", ")
}
