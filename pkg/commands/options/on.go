package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/day"
)

const (
	layoutISOShort = "1/2"
)

// OnOptions picks the day an entry is attributed to.
type OnOptions struct {
	Yesterday bool
	OnString  string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().BoolVarP(&o.Yesterday, "yesterday", "y", false,
		"Log the entry against yesterday.")
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2020-02-28" or --on="2/28".`)
}

// Day returns the YYYY-MM-DD day selected by the flags, today by default.
func (o *OnOptions) Day(now time.Time) (string, error) {
	if o.Yesterday {
		if o.OnString != "" {
			return "", errors.New("use either --yesterday or --on, not both")
		}
		return day.Yesterday(now), nil
	}
	d, err := day.Resolve(o.OnString, now)
	if err == nil {
		return d, nil
	}
	// Let the year be the same.
	t, serr := time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
	if serr != nil {
		return "", err
	}
	t = t.AddDate(now.Year(), 0, 0)
	// A log looks back, so 12/5 said on 1/3 means last December.
	if day.Key(t) > day.Today(now) {
		t = t.AddDate(-1, 0, 0)
	}
	return day.Key(t), nil
}
