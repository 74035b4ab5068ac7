package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/communityhub/internal/app/system/browse"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSearchCmd(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "search [term...]",
		Short: "List resources matching a keyword and category",
		Example: `  hubsearch search shelter
  hubsearch search 99201 --category Food`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, strings.Join(args, " "), category)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category to filter by (default: all)")
	return cmd
}

func runSearch(opts *options, term, category string) error {
	store, err := opts.loadStore()
	if err != nil {
		return err
	}
	tag, err := opts.localeTag()
	if err != nil {
		return err
	}

	state := browse.FromParams(normalize.QueryParam(term), normalize.Category(category), false)
	vm := browse.View(state, store.All(), browse.Options{Locale: tag, Now: time.Now()})
	opts.logger.Debug("search",
		zap.String("term", state.SearchTerm),
		zap.String("category", state.SelectedCategory),
		zap.Int("shown", vm.Shown))

	return renderResults(opts, vm)
}

func renderResults(opts *options, vm browse.ViewModel) error {
	switch {
	case vm.NoData:
		fmt.Fprintln(opts.out, "No resources listed yet.")
		return nil
	case vm.NoMatches:
		fmt.Fprintf(opts.out, "Showing 0 of %d resources\n", vm.Total)
		fmt.Fprintln(opts.out, "No matches yet. Try a different keyword or another category.")
		return nil
	}

	data := pterm.TableData{{"Name", "Category", "Phone", "Verified", "ID"}}
	for _, c := range vm.Cards {
		name := c.Name
		if c.Closed {
			name += " " + pterm.Red("(temporarily closed)")
		}
		data = append(data, []string{name, c.Category, c.Phone, c.VerifiedLabel, c.ID})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(opts.out, table)
	fmt.Fprintf(opts.out, "Showing %d of %d resources", vm.Shown, vm.Total)
	if vm.Filtered {
		fmt.Fprint(opts.out, " (filtered; run \"hubsearch search\" with no arguments to see all)")
	}
	fmt.Fprintln(opts.out)
	return nil
}
