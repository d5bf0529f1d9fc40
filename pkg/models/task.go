package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Priority represents the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every valid priority in ascending urgency order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the three known priority tags.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority converts user input into a Priority, accepting any casing.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q, must be one of: low, medium, high", s)
	}
	return p, nil
}

// UnmarshalJSON enforces the closed set of priority tags, so a task record
// carrying an unknown value fails to parse.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := Priority(s)
	if !v.Valid() {
		return fmt.Errorf("invalid priority %q, must be one of: low, medium, high", s)
	}
	*p = v
	return nil
}

// Task represents a single to-do item tracked in the tasks file.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"` // nil until completed; persisted as explicit null
}
