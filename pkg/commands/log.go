package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/commands/options"
	"tableflip.dev/recall/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	lo := &options.LogOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"ls", "timeline"},
		Short:   "Show the timeline, grouped by day",
		Long: `Show the entries that match the saved filters, newest day first.

Filter flags apply to this run only, use "recall filter" to save them.`,
		Example: `
recall log
recall log --range all --type blocker
recall log --tag auth --days 3 --per-day 5
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

			s := log.Log{
				Service:  e.Service,
				Override: patch,
				Days:     lo.Days,
				PerDay:   lo.PerDay,
				ShowID:   io.ShowID,
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddLogArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	registerFilterCompletions(cmd)

	topLevel.AddCommand(cmd)
}
