package cli

import (
	"strconv"
	"strings"

	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/spf13/cobra"
)

// completeTaskIDs returns a completion function that lists task ids with
// their titles as descriptions, optionally restricted to pending tasks.
func completeTaskIDs(pendingOnly bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if Store == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		includeCompleted := !pendingOnly
		var ids []string
		for _, task := range Store.List(includeCompleted) {
			id := strconv.Itoa(task.ID)
			if toComplete == "" || strings.HasPrefix(id, toComplete) {
				ids = append(ids, id+"\t"+task.Title)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}

// completePriorities returns the priority values for flag completion.
func completePriorities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"low\tCan wait",
		"medium\tDefault priority",
		"high\tDo this first",
	}, cobra.ShellCompDirectiveNoFileComp
}

// completeEventTypes returns the activity entry types for flag completion.
func completeEventTypes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		activity.TypeCreated + "\tTask added",
		activity.TypeCompleted + "\tTask marked complete",
		activity.TypeReopened + "\tCompleted task reopened",
		activity.TypeDeleted + "\tTask removed",
	}, cobra.ShellCompDirectiveNoFileComp
}
