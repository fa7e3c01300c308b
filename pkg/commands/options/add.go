package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/timeutil"
)

// AddOptions
type AddOptions struct {
	Text    string
	Type    string
	Tags    string
	Minutes string
	Mood    int
	Detail  string
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", string(entry.Note),
		"Entry type: did, plan, blocker or note.")
	cmd.Flags().StringVar(&o.Tags, "tags", "",
		`Comma separated tags, example: --tags="auth,infra".`)
	cmd.Flags().StringVarP(&o.Minutes, "minutes", "m", "",
		`Time spent, example: --minutes=45 or --minutes=1h30m.`)
	cmd.Flags().IntVar(&o.Mood, "mood", 0,
		"Energy or mood from 1 to 5.")
	cmd.Flags().StringVarP(&o.Detail, "detail", "d", "",
		"Optional longer elaboration.")
}

// Draft converts the flags into an entry draft. Minutes and mood are only set
// when their flag was given.
func (o *AddOptions) Draft(cmd *cobra.Command) (app.Draft, error) {
	t, err := entry.ParseType(o.Type)
	if err != nil {
		return app.Draft{}, err
	}
	d := app.Draft{
		Text:   o.Text,
		Type:   t,
		Tags:   entry.ParseTags(o.Tags),
		Detail: o.Detail,
	}
	if cmd.Flags().Changed("minutes") {
		minutes, err := timeutil.ParseMinutes(o.Minutes)
		if err != nil {
			return app.Draft{}, err
		}
		d.Minutes = &minutes
	}
	if cmd.Flags().Changed("mood") {
		if o.Mood < app.MinMood || o.Mood > app.MaxMood {
			return app.Draft{}, fmt.Errorf("mood must be between %d and %d, got %d", app.MinMood, app.MaxMood, o.Mood)
		}
		mood := o.Mood
		d.Mood = &mood
	}
	return d, nil
}
