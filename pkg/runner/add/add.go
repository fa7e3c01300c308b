// Package add provides the runner that records a new entry.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/printers"
	"tableflip.dev/recall/pkg/timeline"
)

type Add struct {
	Draft   app.Draft
	Service *app.Service
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no entry store")
	}

	e, ok := n.Service.AddEntry(n.Draft)
	if !ok {
		if !n.Draft.Type.Valid() {
			return errors.New("unknown entry type")
		}
		return errors.New("nothing to add, the entry text is blank")
	}

	if n.JSON {
		return printers.JSON(n.Out, e)
	}

	// echo the day the entry landed on, the way the timeline shows it
	pp := printers.PrettyPrint{ShowID: n.ShowID, Now: n.Service.Now(), Out: n.Out}
	var sameDay []entry.Entry
	for _, other := range n.Service.Entries() {
		if other.Day == e.Day {
			sameDay = append(sameDay, other)
		}
	}
	groups := timeline.GroupByDay(sameDay)
	pp.Timeline(groups, timeline.Count(groups))
	return nil
}
