// Package activity records task lifecycle events for TaskMaster. It uses
// structured JSON Lines (JSONL) for persistence and serves the history
// command, which reads entries back with optional filtering.
package activity
