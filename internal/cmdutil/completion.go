package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"
)

// VisibilityLevels are the visibility values offered for completion.
// The service interprets the value; any string is accepted.
var VisibilityLevels = []string{"intern", "internal", "private", "public"}

// ModeNames are the values accepted by --mode
var ModeNames = []string{"Create", "Update", "Get"}

// StaticFlagCompletion returns a completion function compatible with
// cobra.RegisterFlagCompletionFunc. It filters values by the toComplete
// prefix (case-insensitive) and always returns ShellCompDirectiveNoFileComp.
func StaticFlagCompletion(values []string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return filterPrefix(values, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// filterPrefix returns the values whose key part starts with toComplete.
// Values may carry a tab-separated description.
func filterPrefix(values []string, toComplete string) []string {
	if toComplete == "" {
		return values
	}

	prefix := strings.ToLower(toComplete)
	var filtered []string
	for _, v := range values {
		matchPart := v
		if idx := strings.Index(v, "\t"); idx >= 0 {
			matchPart = v[:idx]
		}
		if strings.HasPrefix(strings.ToLower(matchPart), prefix) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
