// Package remove provides the runner that deletes an entry by id.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/printers"
)

type Remove struct {
	// ID may be any unique prefix of an entry id.
	ID      string
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no entry store")
	}

	id, err := n.Service.Resolve(n.ID)
	if err != nil {
		return err
	}
	e, _ := n.Service.Entry(id)
	removed := n.Service.RemoveEntry(id)

	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"id":      id,
			"removed": removed,
		})
	}

	pp := printers.PrettyPrint{ShowID: true, Now: n.Service.Now(), Out: n.Out}
	pp.Title("Removed")
	pp.Entries(e)
	if !removed {
		return fmt.Errorf("entry %s was already gone", id)
	}
	return nil
}

// Reset wipes the whole log. It refuses to run unless Confirmed.
type Reset struct {
	Service   *app.Service
	Confirmed bool
	JSON      bool
	Out       io.Writer
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no entry store")
	}

	count := n.Service.Len()
	if !n.Confirmed {
		return fmt.Errorf("refusing to erase %d entries without --yes", count)
	}
	n.Service.Reset()

	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"erased": count,
		})
	}
	pp := printers.PrettyPrint{Now: n.Service.Now(), Out: n.Out}
	pp.Title(fmt.Sprintf("Erased %d entries", count))
	return nil
}
