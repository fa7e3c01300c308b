// Package filter provides the runner that updates the stored timeline
// filters.
package filter

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/printers"
)

type Filter struct {
	Service *app.Service
	// Clear resets to the defaults before anything else is applied.
	Clear     bool
	Patch     entry.FiltersPatch
	ToggleTag string
	JSON      bool
	Out       io.Writer
}

func (n *Filter) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not filter, no entry store")
	}

	f := n.Service.Filters()
	if n.Clear {
		f = n.Service.ClearFilters()
	}
	if n.Patch != (entry.FiltersPatch{}) {
		f = n.Service.SetFilters(n.Patch)
	}
	if tag := strings.TrimSpace(n.ToggleTag); tag != "" {
		f = n.Service.ToggleTag(tag)
	}

	if n.JSON {
		return printers.JSON(n.Out, f)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Filters(f)
	return nil
}
