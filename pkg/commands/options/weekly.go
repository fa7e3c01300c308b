package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/day"
)

// WeeklyOptions selects the window for weekly totals and reviews.
type WeeklyOptions struct {
	Mode string
}

func AddWeeklyArgs(cmd *cobra.Command, o *WeeklyOptions) {
	cmd.Flags().StringVar(&o.Mode, "mode", string(day.RangeThisWeek),
		"Window: thisWeek (since Monday) or last7.")
}

func (o *WeeklyOptions) Range() (day.Range, error) {
	r, err := day.ParseRange(o.Mode)
	if err != nil {
		return "", err
	}
	if r != day.RangeThisWeek && r != day.RangeLast7 {
		return "", fmt.Errorf("mode must be %s or %s, got %q", day.RangeThisWeek, day.RangeLast7, o.Mode)
	}
	return r, nil
}
