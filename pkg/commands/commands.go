package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/recall/pkg/commands/options"
	"tableflip.dev/recall/pkg/runner/summary"
)

var (
	output  = &options.OutputOptions{}
	verbose bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "recall",
		Short: base.Wrap80("A daily log for what you did, what you plan, and what blocks you, turned into standups and weekly reviews."),
		Long: base.Wrap80("Log short entries through the day, then let recall " +
			"group them by day, total the time spent, and write the standup " +
			"and weekly review for you. With standup mode on, running recall " +
			"without a command prints the snappy standup."),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if !e.Service.StandupMode() {
				return cmd.Help()
			}
			s := summary.Standup{
				Service: e.Service,
				Snappy:  true,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log debug details to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addRemove(topLevel)
	addReset(topLevel)
	addLog(topLevel)
	addFilter(topLevel)
	addStats(topLevel)
	addTags(topLevel)
	addStandup(topLevel)
	addReview(topLevel)
	addSettings(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
