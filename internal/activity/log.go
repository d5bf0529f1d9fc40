package activity

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/somsu123/taskmaster/pkg/models"
)

// Entry types written by the front ends.
const (
	TypeCreated   = "task.created"
	TypeCompleted = "task.completed"
	TypeReopened  = "task.reopened"
	TypeDeleted   = "task.deleted"
)

// Entry represents a single recorded task event.
type Entry struct {
	Time     time.Time       `json:"time"`
	Type     string          `json:"type"`
	TaskID   int             `json:"task_id"`
	Title    string          `json:"title,omitempty"`
	Priority models.Priority `json:"priority,omitempty"`
}

// TaskEvent builds an Entry of the given type for a task, stamped now.
func TaskEvent(eventType string, task models.Task) Entry {
	return Entry{
		Time:     time.Now().UTC(),
		Type:     eventType,
		TaskID:   task.ID,
		Title:    task.Title,
		Priority: task.Priority,
	}
}

// Filter specifies criteria for reading entries back.
type Filter struct {
	Since *time.Time
	Type  string
}

// Log defines the interface for recording and querying task activity.
type Log interface {
	Append(entry Entry) error
	Read(filter Filter) ([]Entry, error)
	Close() error
}

// jsonlLog implements Log using an append-only JSONL file.
type jsonlLog struct {
	path string
	file *os.File
	mu   sync.Mutex
}

// NewLog creates a Log backed by a JSONL file at the given path.
func NewLog(path string) (Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	return &jsonlLog{path: path, file: f}, nil
}

// Append writes a JSON-encoded entry followed by a newline to the log file.
func (l *jsonlLog) Append(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling activity entry: %w", err)
	}
	data = append(data, '\n')

	if _, err := l.file.Write(data); err != nil {
		return fmt.Errorf("writing activity entry: %w", err)
	}
	return nil
}

// Read scans the log file line by line and returns the entries matching the
// filter, in file order. Malformed lines are skipped.
func (l *jsonlLog) Read(filter Filter) ([]Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log for reading: %w", err)
	}
	defer func() { _ = f.Close() }()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue // skip malformed lines
		}

		if matchesFilter(entry, filter) {
			entries = append(entries, entry)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning activity log: %w", err)
	}

	return entries, nil
}

// Close closes the underlying log file.
func (l *jsonlLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing activity log: %w", err)
	}
	return nil
}

func matchesFilter(entry Entry, filter Filter) bool {
	if filter.Since != nil && entry.Time.Before(*filter.Since) {
		return false
	}
	if filter.Type != "" && entry.Type != filter.Type {
		return false
	}
	return true
}
