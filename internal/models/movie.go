package models

import (
	"errors"
	"strings"
)

// Movie is a watchlist item.
type Movie struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Watched bool   `json:"watched"`
}

// Validate checks that the movie has valid field values.
func (m *Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("title is required")
	}

	return nil
}
