// Package cli implements hubsearch, a terminal front end over the same
// filter, sort and formatting code the web directory uses.
package cli

import (
	"fmt"
	"io"

	resourcestore "github.com/dalemusser/communityhub/internal/app/store/resources"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	dataPath string
	locale   string
	plain    bool
	verbose  bool

	out    io.Writer
	logger *zap.Logger
}

// NewRootCmd builds the hubsearch command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &options{out: out, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "hubsearch",
		Short: "Search the community resource directory",
		Long: `hubsearch lists free and low-cost community resources.

It applies the same category filter, keyword search and name ordering as
the web directory, reading the built-in dataset or a YAML file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "YAML resource dataset (default: built-in list)")
	cmd.PersistentFlags().StringVar(&opts.locale, "locale", "en-US", "Locale used to sort names")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "Disable colors")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	cmd.AddCommand(newSearchCmd(opts), newCategoriesCmd(opts), newShowCmd(opts))
	return cmd
}

func (o *options) setup() error {
	if o.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		o.logger = l
	}
	if o.plain {
		pterm.DisableColor()
	} else {
		pterm.EnableColor()
	}
	return nil
}

func (o *options) localeTag() (language.Tag, error) {
	tag, err := language.Parse(normalize.Locale(o.locale))
	if err != nil {
		return language.Und, fmt.Errorf("invalid --locale %q: %w", o.locale, err)
	}
	return tag, nil
}

func (o *options) loadStore() (*resourcestore.Store, error) {
	store, err := resourcestore.Load(o.dataPath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("dataset loaded",
		zap.String("path", o.dataPath),
		zap.Int("resources", store.Len()))
	return store, nil
}
