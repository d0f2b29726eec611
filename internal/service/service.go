// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All Google Tasks API calls go through this interface.
// Commands and pipelines never import the Google SDK directly.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns error if not found or ambiguous.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// FetchAllTasks returns every task in a list, including completed
	// and hidden ones, paginated to exhaustion. Results are in API
	// order (no client-side sorting).
	FetchAllTasks(ctx context.Context, listID string) ([]Task, error)

	// CreateTask creates a new task in the specified list and returns
	// the ID assigned by the backend.
	CreateTask(ctx context.Context, listID string, t NewTask) (string, error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, listID, taskID string) error
}
