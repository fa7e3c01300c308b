package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/commands/options"
	"tableflip.dev/recall/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	so := &options.SettingsOptions{}

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Example: `
recall settings
recall settings --standup-mode on
recall settings --voice on --voice-language en-GB
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, standup, err := so.Patch(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}

			e, err := open(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}
			defer e.Close()

			s := settings.Settings{
				Service:     e.Service,
				Patch:       patch,
				StandupMode: standup,
				JSON:        output.JSON,
				Out:         cmd.OutOrStdout(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	options.AddSettingsArgs(cmd, so)
	options.AddOutputArg(cmd, output)
	for _, name := range []string{"voice", "standup-mode"} {
		_ = cmd.RegisterFlagCompletionFunc(name, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"on", "off"}, cobra.ShellCompDirectiveNoFileComp
		})
	}

	topLevel.AddCommand(cmd)
}
