package models

import (
	"errors"
	"strings"
)

// DiaryEntry is one diary page. Entries are never edited or deleted.
type DiaryEntry struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Validate checks that the entry has valid field values.
func (e *DiaryEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("name is required")
	}

	if strings.TrimSpace(e.Content) == "" {
		return errors.New("content is required")
	}

	return nil
}
