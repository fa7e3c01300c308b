package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/stats"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(recall completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(recall completion)
`,
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(out)
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			default:
				return fmt.Errorf("unsupported shell %q", shell)
			}
		},
	}

	topLevel.AddCommand(cmd)
}

func typeCompletions(withAll bool) []string {
	var names []string
	if withAll {
		names = append(names, string(entry.Any))
	}
	for _, t := range entry.AllTypes() {
		names = append(names, string(t))
	}
	return names
}

func rangeCompletions() []string {
	var names []string
	for _, r := range day.AllRanges() {
		names = append(names, string(r))
	}
	return names
}

// tagCompletions offers the stored tags, most used first.
func tagCompletions(cmd *cobra.Command, toComplete string) []string {
	e, err := open(cmd)
	if err != nil {
		return nil
	}
	defer e.Close()

	var tags []string
	for _, tc := range stats.TagCounts(e.Service.Entries()) {
		if strings.HasPrefix(strings.ToLower(tc.Tag), strings.ToLower(toComplete)) {
			tags = append(tags, tc.Tag)
		}
	}
	return tags
}

func registerTypeCompletion(cmd *cobra.Command, withAll bool) {
	_ = cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return typeCompletions(withAll), cobra.ShellCompDirectiveNoFileComp
	})
}

func registerTagCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tagCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func registerWeeklyCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(day.RangeThisWeek), string(day.RangeLast7)}, cobra.ShellCompDirectiveNoFileComp
	})
}

func registerFilterCompletions(cmd *cobra.Command) {
	registerTypeCompletion(cmd, true)
	registerTagCompletion(cmd, "tag")
	_ = cmd.RegisterFlagCompletionFunc("range", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return rangeCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
}
