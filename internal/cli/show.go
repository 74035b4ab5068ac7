package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/communityhub/internal/app/system/browse"
	"github.com/dalemusser/communityhub/internal/app/system/listingfmt"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every detail of one resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], time.Now())
		},
	}
}

func runShow(opts *options, id string, now time.Time) error {
	store, err := opts.loadStore()
	if err != nil {
		return err
	}

	res, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("no resource with id %q", id)
	}
	c := browse.NewCard(res, now)

	status := pterm.Green("Open")
	if c.Closed {
		status = pterm.Red(listingfmt.ClosedBadge)
	}
	website := listingfmt.NotListed
	if c.HasWebsite {
		website = c.Website
	}
	verified := c.VerifiedLabel
	if c.VerifiedAgo != "" {
		verified += " (" + c.VerifiedAgo + ")"
	}

	data := pterm.TableData{
		{"Name", c.Name},
		{"Category", c.Category},
		{"Status", status},
		{"Eligibility", c.Eligibility},
		{"Cost", c.Cost},
		{"Address", c.Address},
		{"Phone", c.Phone},
		{"Website", website},
		{"Hours", c.Hours},
		{"Languages", c.Languages},
		{"Accessibility", c.Accessibility},
		{"Tags", strings.Join(c.Tags, ", ")},
		{"Verified", verified},
		{"Source", c.Source},
	}

	table, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(opts.out, table)
	return nil
}
