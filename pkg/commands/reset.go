package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/commands/options"
	"tableflip.dev/recall/pkg/runner/remove"
)

func addReset(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase every entry, filter and setting",
		Example: `
recall reset --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}
			defer e.Close()

			s := remove.Reset{
				Service:   e.Service,
				Confirmed: yes,
				JSON:      output.JSON,
				Out:       cmd.OutOrStdout(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm erasing the whole log.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
