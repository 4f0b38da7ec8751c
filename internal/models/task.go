package models

import (
	"errors"
	"strings"
)

// Task is a single to-do list item.
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return errors.New("description is required")
	}

	return nil
}

// Status returns a short label for the task state, used by the todo view.
func (t Task) Status() string {
	if t.Completed {
		return "done"
	}
	return "open"
}
