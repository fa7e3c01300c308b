package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the entry glyphs and the range names",
		Example: `
recall key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			return k.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
