package cli

import (
	"fmt"
	"strconv"

	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Long: `Remove the task with the given id from the list. Deleting an unknown
id reports the fact and changes nothing.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(false),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		// Capture the task before it disappears so the activity entry
		// keeps its title.
		task, found := findTask(id)

		ok, err := Store.Delete(id)
		if err != nil {
			return fmt.Errorf("deleting task %d: %w", id, err)
		}
		if !ok {
			fmt.Printf("Task %d not found.\n", id)
			return nil
		}

		if found {
			recordActivity(activity.TypeDeleted, task)
		}
		fmt.Printf("Task %d deleted!\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
