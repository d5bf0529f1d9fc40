package cli

import (
	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/somsu123/taskmaster/internal/storage"
	"github.com/somsu123/taskmaster/pkg/models"
)

// Service instances used by the commands, set during app initialization in
// app.go.
var (
	// Store is the task collection every command operates on.
	Store storage.TaskStore

	// ActivityLog records task lifecycle events; nil disables recording.
	ActivityLog activity.Log

	// DefaultPriority applies when add runs without --priority.
	DefaultPriority = models.PriorityMedium
)

// recordActivity appends a task event when the activity log is wired.
// Append errors are discarded; commands never fail on logging.
func recordActivity(eventType string, task models.Task) {
	if ActivityLog == nil {
		return
	}
	_ = ActivityLog.Append(activity.TaskEvent(eventType, task))
}

// findTask looks a task up by id across the full list.
func findTask(id int) (models.Task, bool) {
	if Store == nil {
		return models.Task{}, false
	}
	for _, task := range Store.List(true) {
		if task.ID == id {
			return task, true
		}
	}
	return models.Task{}, false
}

// findPendingTask looks up the first not-yet-completed task with the given
// id. Complete acts on that task, and with count-derived ids a completed
// and a pending task can share an id.
func findPendingTask(id int) (models.Task, bool) {
	if Store == nil {
		return models.Task{}, false
	}
	for _, task := range Store.List(true) {
		if task.ID == id && !task.Completed {
			return task, true
		}
	}
	return models.Task{}, false
}
