package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/commands/options"
	"tableflip.dev/recall/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WeeklyOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Today's totals, streak, momentum and weekly totals",
		Example: `
recall stats
recall stats --mode last7 --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := wo.Range()
			if err != nil {
				return output.HandleError(cmd, err)
			}

			e, err := open(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}
			defer e.Close()

			s := stats.Stats{
				Service: e.Service,
				Mode:    mode,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	options.AddWeeklyArgs(cmd, wo)
	options.AddOutputArg(cmd, output)
	registerWeeklyCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func addTags(topLevel *cobra.Command) {
	limit := stats.DefaultTagLimit

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Rank tags by how often they are used",
		Example: `
recall tags
recall tags --limit 20
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}
			defer e.Close()

			s := stats.Tags{
				Service: e.Service,
				Limit:   limit,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", stats.DefaultTagLimit,
		"Show at most this many tags, 0 for all.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
