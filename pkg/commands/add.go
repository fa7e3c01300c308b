package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/commands/options"
	"tableflip.dev/recall/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Log an entry",
		Example: `
recall add shipped the login fix -t did --tags auth --minutes 45
recall add waiting on the security review -t blocker
recall add call with design --yesterday --detail "agreed on the empty states"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the entry text")
			}
			ao.Text = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := ao.Draft(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}

			e, err := open(cmd)
			if err != nil {
				return output.HandleError(cmd, err)
			}
			defer e.Close()

			draft.Day, err = on.Day(e.Service.Now())
			if err != nil {
				return output.HandleError(cmd, err)
			}

			s := add.Add{
				Draft:   draft,
				Service: e.Service,
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(cmd, s.Do(cmd.Context()))
		},
	}

	options.AddAddArgs(cmd, ao)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	registerTypeCompletion(cmd, false)
	registerTagCompletion(cmd, "tags")

	topLevel.AddCommand(cmd)
}
