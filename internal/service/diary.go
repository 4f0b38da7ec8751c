package service

import (
	"context"

	"ourspace/internal/models"
)

// AddEntry stores a new diary entry.
func (s *Service) AddEntry(ctx context.Context, name, content string) (*models.DiaryEntry, error) {
	entry := &models.DiaryEntry{Name: name, Content: content}
	if err := entry.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.store.CreateDiaryEntry(ctx, entry); err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "diary entry added", "entry_id", entry.ID)

	return entry, nil
}

// ListEntries returns every diary entry.
func (s *Service) ListEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	return s.store.ListDiaryEntries(ctx)
}
