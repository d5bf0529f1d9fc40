package cli

import (
	"fmt"
	"strings"

	"github.com/somsu123/taskmaster/pkg/models"
	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List pending tasks as a table.

Completed tasks are hidden unless --all is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}
		printTaskTable(Store.List(listAll))
		return nil
	},
}

// printTaskTable renders tasks in the fixed-width listing format.
func printTaskTable(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Println("\nID  | Priority | Status    | Task")
	fmt.Println(strings.Repeat("-", 50))
	for _, task := range tasks {
		status := " "
		if task.Completed {
			status = "✓"
		}
		fmt.Printf("%3d | %-8s | [%s]      | %s\n",
			task.ID, strings.ToUpper(string(task.Priority)), status, task.Title)
	}
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show all tasks including completed ones")
	rootCmd.AddCommand(listCmd)
}
