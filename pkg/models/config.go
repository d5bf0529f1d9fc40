package models

// Config holds the resolved runtime settings for a taskmaster workspace.
// The config package populates it from .taskmaster.yaml, flattening the
// file's nested defaults block. Relative paths are resolved against the
// workspace base path by the caller.
type Config struct {
	TasksFile       string   // from tasks_file
	DefaultPriority Priority // from defaults.priority
	ActivityLog     string   // from activity_log; empty disables activity logging
}
