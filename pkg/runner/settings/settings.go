// Package settings provides the runner that shows and updates preferences.
package settings

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/printers"
)

type Settings struct {
	Service *app.Service
	Patch   entry.SettingsPatch
	// StandupMode is left alone when nil.
	StandupMode *bool
	JSON        bool
	Out         io.Writer
}

func (n *Settings) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not update settings, no entry store")
	}

	s := n.Service.Settings()
	if n.Patch != (entry.SettingsPatch{}) {
		s = n.Service.SetSettings(n.Patch)
	}
	if n.StandupMode != nil {
		n.Service.SetStandupMode(*n.StandupMode)
	}
	standup := n.Service.StandupMode()

	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"settings":    s,
			"standupMode": standup,
		})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Settings(s, standup)
	return nil
}
