// Package service holds the typed per-record operations used by the HTTP
// handlers and the CLI. Every call goes straight to the store; nothing is
// cached between calls.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ourspace/internal/store"
)

// ErrInvalid wraps record validation failures.
var ErrInvalid = errors.New("invalid record")

// Service implements the to-do, diary and watchlist operations.
type Service struct {
	store  store.Store
	logger *slog.Logger
}

// New creates a Service backed by s. A nil logger uses slog.Default.
func New(s store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: s, logger: logger}
}

// ResetStorage drops and recreates every record table.
func (s *Service) ResetStorage(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset storage: %w", err)
	}
	s.logger.WarnContext(ctx, "storage reset: all tasks, diary entries and movies deleted")
	return nil
}

// Ping reports whether the underlying store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}
