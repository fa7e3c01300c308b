package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where the log is stored and how it is configured.",
		Example: `
recall info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := info.Info{
				Config:      e.Config,
				Persistence: e.Persistence,
				Service:     e.Service,
				Out:         cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
