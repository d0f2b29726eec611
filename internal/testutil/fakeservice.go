// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"taskcsv/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when multiple matches are found.
var ErrAmbiguous = errors.New("ambiguous")

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	lists  []service.TaskList
	tasks  map[string][]service.Task // listID -> tasks
	nextID int

	// Call counters
	CreateCalls int
	DeleteCalls int
	FetchCalls  int

	// Error injection for testing
	DefaultListErr error
	ListListsErr   error
	ResolveListErr error
	FetchAllErr    error
	CreateTaskErr  error
	DeleteTaskErr  map[string]error // taskID -> error
}

// NewFakeService creates a new FakeService with a default list.
func NewFakeService() *FakeService {
	fs := &FakeService{
		tasks:         make(map[string][]service.Task),
		DeleteTaskErr: make(map[string]error),
	}
	// Add default list
	fs.lists = []service.TaskList{
		{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
	}
	fs.tasks[DefaultListID] = nil
	return fs
}

// AddList adds a list to the fake service.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title, IsDefault: false})
	if f.tasks[id] == nil {
		f.tasks[id] = nil
	}
}

// AddTask adds a task to a list. An empty Status defaults to "needsAction".
func (f *FakeService) AddTask(listID string, t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.Status == "" {
		t.Status = "needsAction"
	}
	f.tasks[listID] = append(f.tasks[listID], t)
}

// Tasks returns a copy of the current tasks in a list.
func (f *FakeService) Tasks(listID string) []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks[listID]))
	copy(result, f.tasks[listID])
	return result
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.TaskList{}, errors.New("no default list")
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]service.TaskList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.TaskList, len(f.lists))
	copy(result, f.lists)
	return result, nil
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	if f.ResolveListErr != nil {
		return service.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	name = strings.TrimSpace(name)
	nameLower := strings.ToLower(name)

	var matches []service.TaskList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == nameLower {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.TaskList{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, ErrAmbiguous
	}
}

// FetchAllTasks implements service.Service.
func (f *FakeService) FetchAllTasks(ctx context.Context, listID string) ([]service.Task, error) {
	f.mu.Lock()
	f.FetchCalls++
	f.mu.Unlock()

	if f.FetchAllErr != nil {
		return nil, f.FetchAllErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return nil, ErrNotFound
	}
	result := make([]service.Task, len(tasks))
	copy(result, tasks)
	return result, nil
}

// CreateTask implements service.Service. IDs are assigned sequentially
// as "task-1", "task-2", ...
func (f *FakeService) CreateTask(ctx context.Context, listID string, t service.NewTask) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++

	if f.CreateTaskErr != nil {
		return "", f.CreateTaskErr
	}
	if _, ok := f.tasks[listID]; !ok {
		return "", ErrNotFound
	}

	f.nextID++
	id := fmt.Sprintf("task-%d", f.nextID)
	f.tasks[listID] = append(f.tasks[listID], service.Task{
		ID:     id,
		Title:  t.Title,
		Notes:  t.Notes,
		Due:    t.Due,
		Status: "needsAction",
	})
	return id, nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, listID, taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++

	if err := f.DeleteTaskErr[taskID]; err != nil {
		return err
	}

	tasks, ok := f.tasks[listID]
	if !ok {
		return ErrNotFound
	}

	for i, t := range tasks {
		if t.ID == taskID {
			f.tasks[listID] = append(tasks[:i], tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
