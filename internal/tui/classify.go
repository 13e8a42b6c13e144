// Package tui provides the interactive account-classification form.
package tui

import (
	"errors"

	"finstmt/internal/mapping"
	"finstmt/internal/model"

	"github.com/charmbracelet/huh"
)

// accountsPerPage bounds how many selects share one form page so the
// form stays usable on short terminals.
const accountsPerPage = 6

// RunClassifyForm walks the user through assigning a category to each
// account, pre-selecting the current mapping (or the default for
// unmapped accounts). It returns the merged mapping and whether the
// user confirmed the save. A user abort returns save=false, nil error.
func RunClassifyForm(accounts []string, current mapping.Mapping) (mapping.Mapping, bool, error) {
	labels := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		labels[i] = string(c)
	}

	choices := make([]string, len(accounts))
	for i, account := range accounts {
		choices[i] = string(mapping.Resolve(account, current))
	}

	var groups []*huh.Group
	for start := 0; start < len(accounts); start += accountsPerPage {
		end := start + accountsPerPage
		if end > len(accounts) {
			end = len(accounts)
		}

		var fields []huh.Field
		for i := start; i < end; i++ {
			fields = append(fields, huh.NewSelect[string]().
				Title(accounts[i]).
				Options(huh.NewOptions(labels...)...).
				Value(&choices[i]))
		}
		groups = append(groups, huh.NewGroup(fields...))
	}

	save := true
	groups = append(groups, huh.NewGroup(
		huh.NewConfirm().
			Title("Save mapping?").
			Affirmative("Save").
			Negative("Discard").
			Value(&save),
	))

	if err := huh.NewForm(groups...).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, false, nil
		}
		return nil, false, err
	}

	merged := make(mapping.Mapping, len(current)+len(accounts))
	for account, c := range current {
		merged[account] = c
	}
	for i, account := range accounts {
		if c, ok := model.ParseCategory(choices[i]); ok {
			merged[account] = c
		}
	}
	return merged, save, nil
}
