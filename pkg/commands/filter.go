package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/commands/options"
	"tableflip.dev/recall/pkg/runner/filter"
)

func addFilter(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	var (
		reset  bool
		toggle string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Show or save the timeline filters",
		Example: `
recall filter
recall filter --range thisWeek --type did
recall filter --toggle-tag auth
recall filter --clear
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := fo.Patch(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}

			e, err := open(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}
			defer e.Close()

			s := filter.Filter{
				Service:   e.Service,
				Clear:     reset,
				Patch:     patch,
				ToggleTag: toggle,
				JSON:      output.JSON,
				Out:       cmd.OutOrStdout(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	cmd.Flags().StringVar(&toggle, "toggle-tag", "",
		"Filter on a tag, or stop filtering on it when it is already active.")
	cmd.Flags().BoolVar(&reset, "clear", false,
		"Reset to the defaults: everything from the last 7 days.")
	options.AddOutputArg(cmd, output)
	registerFilterCompletions(cmd)
	registerTagCompletion(cmd, "toggle-tag")

	topLevel.AddCommand(cmd)
}
