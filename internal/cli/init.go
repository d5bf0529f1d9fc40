package cli

import (
	"fmt"
	"path/filepath"

	"github.com/somsu123/taskmaster/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a taskmaster workspace",
	Long: `Write a default ` + config.FileName + ` into the given directory
(the current directory by default), marking it as a taskmaster workspace.

Safe to run on an existing workspace: a config file that is already
present is left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		basePath := "."
		if len(args) > 0 {
			basePath = args[0]
		}
		absPath, err := filepath.Abs(basePath)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		path, created, err := config.NewManager(absPath).WriteDefault()
		if err != nil {
			return fmt.Errorf("initializing workspace: %w", err)
		}

		if created {
			fmt.Printf("Created %s\n", path)
		} else {
			fmt.Printf("Skipped %s (already exists)\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
