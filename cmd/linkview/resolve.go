package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"linkview/internal/config"
	"linkview/internal/data"
	"linkview/internal/filter"
	"linkview/internal/report"
	"linkview/internal/selection"
)

// resolveCommand selects records without the UI, the way a settled brush
// would.
type resolveCommand struct {
	cfg     *config.Config
	Ranges  []string
	Pick    int
	Columns []string

	stdout io.Writer
}

func newResolveCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &resolveCommand{cfg: config.NewConfig(), Pick: -1, stdout: stdout}
	cc := &cobra.Command{
		Use:   "resolve",
		Short: "Print the records matching a set of ranges.",
		Long: `resolve loads a dataset and prints the records inside every --range
given as attr=lo:hi. Ranges combine with AND; no ranges select nothing.
--pick selects one record by id instead and cannot be combined with --range.
`,
		Example: `  linkview resolve -d housing.csv --range price=1e6:2e6 --range area=200:400
  linkview resolve -d housing.csv --pick 12 --columns price,area`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd.Flags(), rc.cfg); err != nil {
				return err
			}
			return rc.Run()
		},
	}
	flags := cc.Flags()
	rc.cfg.Flags(flags)
	flags.StringArrayVarP(&rc.Ranges, "range", "r", nil, "Range constraint attr=lo:hi. Repeatable.")
	flags.IntVar(&rc.Pick, "pick", -1, "Select this record id alone.")
	flags.StringSliceVar(&rc.Columns, "columns", nil, "Columns to print. Defaults to all.")
	return cc
}

func (rc *resolveCommand) Run() error {
	if rc.cfg.Data == "" {
		return errors.New("--data is required")
	}
	if rc.Pick >= 0 && len(rc.Ranges) > 0 {
		return errors.New("--pick and --range cannot be used together")
	}
	aliases, err := rc.cfg.Aliases()
	if err != nil {
		return err
	}
	store, err := data.Load(rc.cfg.Data, data.Options{Aliases: aliases})
	if err != nil {
		return err
	}

	bc := selection.NewBroadcaster(store)
	if rc.Pick >= 0 {
		if !store.Has(rc.Pick) {
			return errors.Errorf("no record %d (have %d)", rc.Pick, store.Len())
		}
		bc.SetSelection(selection.Single(rc.Pick))
	} else {
		set, err := filter.ParseSet(rc.Ranges)
		if err != nil {
			return err
		}
		for _, c := range set {
			if a, ok := store.Attribute(c.Attr); !ok || a.Kind != data.Numeric {
				return errors.Errorf("%s is not a numeric attribute", c.Attr)
			}
		}
		bc.SetSelection(filter.Resolve(store, set))
	}
	return report.WriteSelection(rc.stdout, bc.Store(), bc.Selection(), rc.Columns)
}
