package cli

import (
	"github.com/spf13/cobra"
)

// completeInputDir provides shell completion for the input directory
// argument: directories only, at most one argument.
func completeInputDir(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}
