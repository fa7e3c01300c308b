// Package log provides the runner that prints the filtered timeline.
package log

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/printers"
	"tableflip.dev/recall/pkg/timeline"
)

type Log struct {
	Service *app.Service
	// Override is applied on top of the stored filters for this run only.
	Override entry.FiltersPatch
	Days     int
	PerDay   int
	ShowID   bool
	JSON     bool
	Out      io.Writer
}

// Result is the JSON shape of a log run.
type Result struct {
	Filters entry.Filters    `json:"filters"`
	Total   int              `json:"total"`
	Shown   int              `json:"shown"`
	Groups  []timeline.Group `json:"groups"`
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no entry store")
	}

	res := n.Result()
	if n.JSON {
		return printers.JSON(n.Out, res)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Now: n.Service.Now(), Out: n.Out}
	pp.Timeline(res.Groups, res.Total)
	return nil
}

// Result computes the filtered, grouped and truncated timeline.
func (n *Log) Result() Result {
	snap := n.Service.Snapshot()
	filters := snap.Filters.Merge(n.Override).Sanitize()
	matches := timeline.Filter(snap.Entries, filters, n.Service.Now())
	groups := timeline.Limit(timeline.GroupByDay(matches), n.Days, n.PerDay)
	return Result{
		Filters: filters,
		Total:   len(matches),
		Shown:   timeline.Count(groups),
		Groups:  groups,
	}
}
