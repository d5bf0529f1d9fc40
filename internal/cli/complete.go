package cli

import (
	"fmt"
	"strconv"

	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as complete",
	Long: `Mark the task with the given id as complete and stamp its completion
time. Completing an already completed or unknown id reports the fact and
changes nothing.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(true),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		// Capture before mutating: Complete acts on the first still-pending
		// match, which after the call is indistinguishable from one that was
		// already done.
		task, found := findPendingTask(id)

		ok, err := Store.Complete(id)
		if err != nil {
			return fmt.Errorf("completing task %d: %w", id, err)
		}
		if !ok {
			fmt.Printf("Task %d not found or already completed.\n", id)
			return nil
		}

		if found {
			recordActivity(activity.TypeCompleted, task)
		}
		fmt.Printf("Task %d marked as complete!\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
