package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/somsu123/taskmaster/internal/config"
	"github.com/spf13/cobra"
)

var (
	historyType  string
	historySince string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent task activity",
	Long: `Show task lifecycle events recorded in the activity log, oldest first.

Every add, complete, reopen, and delete appends an entry. Filter with
--type and --since, and cap the output with --limit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ActivityLog == nil {
			return fmt.Errorf("activity log not initialized (set activity_log in %s)", config.FileName)
		}

		filter := activity.Filter{Type: historyType}
		if historySince != "" {
			since, err := parseSinceDuration(historySince)
			if err != nil {
				return fmt.Errorf("parsing --since: %w", err)
			}
			filter.Since = &since
		}

		entries, err := ActivityLog.Read(filter)
		if err != nil {
			return fmt.Errorf("reading activity log: %w", err)
		}
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}

		if len(entries) == 0 {
			fmt.Println("No activity recorded.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-14s  #%-4d %s\n",
				e.Time.Local().Format("2006-01-02 15:04"), e.Type, e.TaskID, e.Title)
		}
		return nil
	},
}

// parseSinceDuration parses a human-friendly duration string like "7d" or
// "24h" and returns the corresponding cutoff time in the past.
func parseSinceDuration(s string) (time.Time, error) {
	now := time.Now().UTC()
	s = strings.TrimSpace(s)

	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day duration %q", s)
		}
		return now.AddDate(0, 0, -days), nil
	}
	if strings.HasSuffix(s, "h") {
		hours, err := strconv.Atoi(strings.TrimSuffix(s, "h"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid hour duration %q", s)
		}
		return now.Add(-time.Duration(hours) * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("unsupported duration format %q (use e.g. 7d, 30d, 24h)", s)
}

func init() {
	historyCmd.Flags().StringVar(&historyType, "type", "", "Only show entries of this type")
	historyCmd.Flags().StringVar(&historySince, "since", "", "Only show entries newer than this (e.g. 7d, 24h)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show (0 for all)")
	_ = historyCmd.RegisterFlagCompletionFunc("type", completeEventTypes)
	rootCmd.AddCommand(historyCmd)
}
