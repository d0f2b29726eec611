// Package service defines the backend-agnostic interface for task operations.
package service

// Task is a read-only snapshot of a remote task.
// Due, when non-empty, is always a canonical UTC instant
// (e.g. "2024-01-01T00:00:00.000Z"), never a bare date.
type Task struct {
	ID     string
	Title  string
	Notes  string
	Due    string
	Status string // "needsAction" or "completed"
}

// NewTask holds the fields of a task to be created.
// Notes and Due are omitted from the create call when empty.
type NewTask struct {
	Title string
	Notes string
	Due   string
}

// TaskList represents a task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}
