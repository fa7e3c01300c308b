package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls whether listings print entry id prefixes, the handle
// `recall rm` takes.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Prefix each entry with the short id accepted by rm.")
}
