package cli

import (
	"fmt"
	"strings"

	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/somsu123/taskmaster/pkg/models"
	"github.com/spf13/cobra"
)

var addPriority string

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task with the given title.

The priority defaults to the workspace configuration (medium unless
overridden there) and can be set per task with --priority.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}

		title := strings.TrimSpace(args[0])
		if title == "" {
			return fmt.Errorf("task title cannot be empty")
		}

		priority := DefaultPriority
		if addPriority != "" {
			p, err := models.ParsePriority(addPriority)
			if err != nil {
				return err
			}
			priority = p
		}

		task, err := Store.Add(title, priority)
		if err != nil {
			return fmt.Errorf("adding task: %w", err)
		}
		recordActivity(activity.TypeCreated, task)

		fmt.Printf("Added task: %s (Priority: %s)\n", task.Title, task.Priority)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Task priority (low, medium, high)")
	_ = addCmd.RegisterFlagCompletionFunc("priority", completePriorities)
	rootCmd.AddCommand(addCmd)
}
