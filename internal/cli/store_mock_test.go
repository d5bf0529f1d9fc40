package cli

import (
	"time"

	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/somsu123/taskmaster/pkg/models"
)

// storeMock implements storage.TaskStore for command tests. Each method
// delegates to its fn field when set.
type storeMock struct {
	addFn      func(title string, priority models.Priority) (models.Task, error)
	completeFn func(id int) (bool, error)
	toggleFn   func(id int) (bool, error)
	deleteFn   func(id int) (bool, error)
	listFn     func(includeCompleted bool) []models.Task
	pathFn     func() string
}

func (m *storeMock) Add(title string, priority models.Priority) (models.Task, error) {
	if m.addFn != nil {
		return m.addFn(title, priority)
	}
	return models.Task{
		ID:        1,
		Title:     title,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (m *storeMock) Complete(id int) (bool, error) {
	if m.completeFn != nil {
		return m.completeFn(id)
	}
	return true, nil
}

func (m *storeMock) Toggle(id int) (bool, error) {
	if m.toggleFn != nil {
		return m.toggleFn(id)
	}
	return true, nil
}

func (m *storeMock) Delete(id int) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return true, nil
}

func (m *storeMock) List(includeCompleted bool) []models.Task {
	if m.listFn != nil {
		return m.listFn(includeCompleted)
	}
	return nil
}

func (m *storeMock) Path() string {
	if m.pathFn != nil {
		return m.pathFn()
	}
	return "tasks.json"
}

// logMock implements activity.Log and records appended entries.
type logMock struct {
	entries []activity.Entry
	readFn  func(filter activity.Filter) ([]activity.Entry, error)
}

func (m *logMock) Append(entry activity.Entry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *logMock) Read(filter activity.Filter) ([]activity.Entry, error) {
	if m.readFn != nil {
		return m.readFn(filter)
	}
	return m.entries, nil
}

func (m *logMock) Close() error { return nil }
