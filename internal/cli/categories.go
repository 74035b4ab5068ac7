package cli

import (
	"fmt"
	"strconv"

	"github.com/dalemusser/communityhub/internal/app/system/finder"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category filters and how many resources each holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(opts)
		},
	}
}

func runCategories(opts *options) error {
	store, err := opts.loadStore()
	if err != nil {
		return err
	}

	counts := store.CountByCategory()
	data := pterm.TableData{{"Category", "Resources"}}
	for _, c := range store.Categories() {
		n := counts[c]
		if c == finder.AllCategories {
			n = store.Len()
		}
		data = append(data, []string{c, strconv.Itoa(n)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(opts.out, table)
	return nil
}
