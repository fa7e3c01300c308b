package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/commands/options"
	"tableflip.dev/recall/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an entry",
		Example: `
recall log --show-id
recall rm 3f9c2a1b
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}
			defer e.Close()

			s := remove.Remove{
				ID:      args[0],
				Service: e.Service,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
