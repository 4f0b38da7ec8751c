package service

import (
	"context"
	"fmt"

	"ourspace/internal/models"
)

// AddMovie puts an unwatched movie on the watchlist.
func (s *Service) AddMovie(ctx context.Context, title string) (*models.Movie, error) {
	movie := &models.Movie{Title: title}
	if err := movie.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.store.CreateMovie(ctx, movie); err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "movie added", "movie_id", movie.ID)

	return movie, nil
}

// ListMovies returns the whole watchlist.
func (s *Service) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.store.ListMovies(ctx)
}

// MarkWatched flags the movie as watched. Like CompleteTask it only moves forward.
func (s *Service) MarkWatched(ctx context.Context, id int64) error {
	movie, err := s.store.GetMovie(ctx, id)
	if err != nil {
		return fmt.Errorf("mark watched: %w", err)
	}

	movie.Watched = true
	if err := s.store.UpdateMovie(ctx, movie); err != nil {
		return fmt.Errorf("mark watched: %w", err)
	}

	return nil
}

// DeleteMovie removes the movie from the watchlist.
func (s *Service) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.store.DeleteMovie(ctx, id); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}
