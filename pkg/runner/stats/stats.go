// Package stats provides the runners behind the analytics commands.
package stats

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/printers"
	"tableflip.dev/recall/pkg/stats"
	"tableflip.dev/recall/pkg/summary"
)

// DefaultTagLimit is how many tags the overview ranks.
const DefaultTagLimit = 6

type Stats struct {
	Service *app.Service
	Mode    day.Range
	JSON    bool
	Out     io.Writer
}

// Report is the JSON shape of a stats run.
type Report struct {
	Today    stats.Totals  `json:"today"`
	Streak   int           `json:"streak"`
	Momentum []stats.Point `json:"momentum"`
	Weekly   stats.Weekly  `json:"weekly"`
	TopTags  []string      `json:"topTags"`
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not compute stats, no entry store")
	}

	entries, now := n.Service.Entries(), n.Service.Now()
	r := Report{
		Today:    stats.Today(entries, now),
		Streak:   stats.Streak(entries, now),
		Momentum: stats.Momentum(entries, now),
		Weekly:   stats.WeeklyTotals(entries, n.Mode, now),
		TopTags:  stats.TopTags(entries, DefaultTagLimit),
	}
	if n.JSON {
		return printers.JSON(n.Out, r)
	}

	pp := printers.PrettyPrint{Now: now, Out: n.Out}
	pp.Overview(r.Today, r.Streak)
	pp.NewLine()
	pp.Momentum(r.Momentum)
	pp.Weekly(summary.WeekLabel(r.Weekly.Mode, now), r.Weekly)
	return nil
}

type Tags struct {
	Service *app.Service
	Limit   int
	JSON    bool
	Out     io.Writer
}

func (n *Tags) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rank tags, no entry store")
	}

	counts := stats.TagCounts(n.Service.Entries())
	if n.Limit > 0 && len(counts) > n.Limit {
		counts = counts[:n.Limit]
	}
	if n.JSON {
		return printers.JSON(n.Out, counts)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Tags(counts)
	return nil
}
