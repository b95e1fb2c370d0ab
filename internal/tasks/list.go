// Package tasks holds the plain-text checklist shown next to the timer.
package tasks

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyTask is returned when the task text is blank after trimming.
	ErrEmptyTask = errors.New("task text is empty")
	// ErrTaskNotFound is returned for an unknown task id.
	ErrTaskNotFound = errors.New("task not found")
)

// Task is a single checklist item.
type Task struct {
	ID        string
	Text      string
	Done      bool
	CreatedAt time.Time
}

// List is an ordered checklist safe for concurrent use.
type List struct {
	mu    sync.Mutex
	items []Task
	now   func() time.Time
}

// NewList creates a list seeded with the given texts. Blank seeds are skipped.
func NewList(seed ...string) *List {
	list := &List{now: time.Now}
	for _, text := range seed {
		_, _ = list.Add(text)
	}
	return list
}

// Add appends a task.
func (list *List) Add(text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyTask
	}
	task := Task{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: list.now(),
	}
	list.mu.Lock()
	list.items = append(list.items, task)
	list.mu.Unlock()
	return task, nil
}

// Toggle flips the done flag and returns the updated task.
func (list *List) Toggle(id string) (Task, error) {
	list.mu.Lock()
	defer list.mu.Unlock()
	index := list.indexLocked(id)
	if index < 0 {
		return Task{}, ErrTaskNotFound
	}
	list.items[index].Done = !list.items[index].Done
	return list.items[index], nil
}

// Remove deletes a task.
func (list *List) Remove(id string) error {
	list.mu.Lock()
	defer list.mu.Unlock()
	index := list.indexLocked(id)
	if index < 0 {
		return ErrTaskNotFound
	}
	list.items = append(list.items[:index], list.items[index+1:]...)
	return nil
}

// Items returns a copy of the tasks in insertion order.
func (list *List) Items() []Task {
	list.mu.Lock()
	defer list.mu.Unlock()
	return append([]Task(nil), list.items...)
}

// Len returns the number of tasks.
func (list *List) Len() int {
	list.mu.Lock()
	defer list.mu.Unlock()
	return len(list.items)
}

// Pending returns the number of tasks not yet done.
func (list *List) Pending() int {
	list.mu.Lock()
	defer list.mu.Unlock()
	pending := 0
	for _, task := range list.items {
		if !task.Done {
			pending++
		}
	}
	return pending
}

func (list *List) indexLocked(id string) int {
	for i, task := range list.items {
		if task.ID == id {
			return i
		}
	}
	return -1
}
