package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags. It also
// enables the --version flag on the root command.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
	rootCmd.Version = version
}

var rootCmd = &cobra.Command{
	Use:   "taskmaster",
	Short: "TaskMaster - a simple command-line task manager",
	Long: `TaskMaster keeps a personal list of short text tasks in a plain JSON
file. Every task carries a priority (low, medium, high), a creation
timestamp, and a completion timestamp once done.

Add, list, complete, and delete tasks from the command line, or run
"taskmaster ui" for a full-screen interactive view over the same list.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskmaster %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
