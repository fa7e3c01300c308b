package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
)

// FilterOptions mirrors the persisted timeline filters as flags.
type FilterOptions struct {
	Query string
	Type  string
	Range string
	Tag   string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Case-insensitive text to find in the text, tags or detail.")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Entry type to keep: all, did, plan, blocker or note.")
	cmd.Flags().StringVarP(&o.Range, "range", "r", "",
		"Day range: today, yesterday, last7, thisWeek or all.")
	cmd.Flags().StringVar(&o.Tag, "tag", "",
		`Exact tag to keep, --tag="" clears it.`)
}

// Patch returns the flags that were given as a filter update.
func (o *FilterOptions) Patch(cmd *cobra.Command) (entry.FiltersPatch, error) {
	var p entry.FiltersPatch
	flags := cmd.Flags()
	if flags.Changed("query") {
		q := o.Query
		p.Query = &q
	}
	if flags.Changed("type") {
		t, err := entry.ParseFilterType(o.Type)
		if err != nil {
			return p, err
		}
		p.Type = &t
	}
	if flags.Changed("range") {
		r, err := day.ParseRange(o.Range)
		if err != nil {
			return p, err
		}
		p.Range = &r
	}
	if flags.Changed("tag") {
		tag := o.Tag
		p.Tag = &tag
	}
	return p, nil
}

// LogOptions
type LogOptions struct {
	Days   int
	PerDay int
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().IntVar(&o.Days, "days", 0,
		"Show at most this many days, 0 for all.")
	cmd.Flags().IntVar(&o.PerDay, "per-day", 0,
		"Show at most this many entries per day, 0 for all.")
}
