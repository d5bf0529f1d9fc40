package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/somsu123/taskmaster/pkg/models"
)

// TaskStore defines the interface for the authoritative task collection and
// its whole-file JSON persistence. Every mutating operation rewrites the
// backing file before returning; when that write fails the in-memory
// mutation is kept and the error is returned, so memory can run ahead of
// disk until the next successful save.
type TaskStore interface {
	Add(title string, priority models.Priority) (models.Task, error)
	Complete(id int) (bool, error)
	Toggle(id int) (bool, error)
	Delete(id int) (bool, error)
	List(includeCompleted bool) []models.Task
	Path() string
}

type fileTaskStore struct {
	path  string
	tasks []models.Task
}

// NewTaskStore creates a TaskStore backed by the JSON file at path. The file
// is read immediately; a missing file, an unreadable file, content that
// fails to parse, or a structurally invalid record all leave the store empty
// rather than failing construction.
func NewTaskStore(path string) TaskStore {
	s := &fileTaskStore{path: path}
	s.load()
	return s
}

// Path returns the backing file path the store was created with.
func (s *fileTaskStore) Path() string {
	return s.path
}

// Add appends a new task and persists the collection. Ids are assigned as
// count+1, so after a deletion an id can repeat.
func (s *fileTaskStore) Add(title string, priority models.Priority) (models.Task, error) {
	task := models.Task{
		ID:        len(s.tasks) + 1,
		Title:     title,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}
	s.tasks = append(s.tasks, task)
	if err := s.save(); err != nil {
		return task, err
	}
	return task, nil
}

// Complete marks the first not-yet-completed task with the given id as done
// and stamps its completion time. It returns false without writing when no
// such task exists, including when the id is already completed.
func (s *fileTaskStore) Complete(id int) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id && !s.tasks[i].Completed {
			now := time.Now().UTC()
			s.tasks[i].Completed = true
			s.tasks[i].CompletedAt = &now
			return true, s.save()
		}
	}
	return false, nil
}

// Toggle flips the completion state of the first task with the given id,
// stamping the completion time on completion and clearing it on reopen.
func (s *fileTaskStore) Toggle(id int) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].Completed {
			s.tasks[i].Completed = false
			s.tasks[i].CompletedAt = nil
		} else {
			now := time.Now().UTC()
			s.tasks[i].Completed = true
			s.tasks[i].CompletedAt = &now
		}
		return true, s.save()
	}
	return false, nil
}

// Delete removes the first task with the given id.
func (s *fileTaskStore) Delete(id int) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true, s.save()
		}
	}
	return false, nil
}

// List returns tasks in insertion order, filtering out completed tasks
// unless includeCompleted is set. The returned tasks are copies; mutating
// them never affects the store.
func (s *fileTaskStore) List(includeCompleted bool) []models.Task {
	result := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !includeCompleted && t.Completed {
			continue
		}
		result = append(result, cloneTask(t))
	}
	return result
}

// cloneTask copies a task, detaching the CompletedAt pointer so callers
// never share memory with the store.
func cloneTask(t models.Task) models.Task {
	if t.CompletedAt != nil {
		ts := *t.CompletedAt
		t.CompletedAt = &ts
	}
	return t
}

// load replaces the in-memory collection with the file contents. Every
// failure mode (missing file, read error, malformed JSON, a structurally
// invalid record, a top-level null) falls back to an empty collection.
func (s *fileTaskStore) load() {
	s.tasks = []models.Task{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return
	}
	if tasks == nil {
		// A bare "null" document decodes without error.
		return
	}
	for _, t := range tasks {
		// Absent keys decode as zero values rather than failing, so a
		// record missing a required field shows up here.
		if t.ID <= 0 || t.Title == "" || !t.Priority.Valid() || t.CreatedAt.IsZero() {
			return
		}
	}
	s.tasks = tasks
}

// save rewrites the whole backing file from the in-memory collection.
func (s *fileTaskStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("saving tasks: creating directory: %w", err)
	}
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("saving tasks: marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("saving tasks: writing file: %w", err)
	}
	return nil
}
