package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/commands/options"
	"tableflip.dev/recall/pkg/runner/summary"
)

func addStandup(topLevel *cobra.Command) {
	var snappy, copyText bool

	cmd := &cobra.Command{
		Use:   "standup",
		Short: "Write the standup update: yesterday, today and blockers",
		Example: `
recall standup
recall standup --snappy --copy
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}
			defer e.Close()

			s := summary.Standup{
				Service: e.Service,
				Snappy:  snappy,
				Copy:    copyText,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&snappy, "snappy", "s", false,
		"Keep it to two items per section.")
	cmd.Flags().BoolVarP(&copyText, "copy", "c", false,
		"Also copy the update to the clipboard.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addReview(topLevel *cobra.Command) {
	wo := &options.WeeklyOptions{}
	var copyText bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Write the weekly review: wins, next up, blockers and focus tags",
		Example: `
recall review
recall review --mode last7 --copy
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

			s := summary.Review{
				Service: e.Service,
				Mode:    mode,
				Copy:    copyText,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	options.AddWeeklyArgs(cmd, wo)
	cmd.Flags().BoolVarP(&copyText, "copy", "c", false,
		"Also copy the review to the clipboard.")
	options.AddOutputArg(cmd, output)
	registerWeeklyCompletion(cmd)

	topLevel.AddCommand(cmd)
}
