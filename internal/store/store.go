package store

import (
	"context"
	"errors"

	"ourspace/internal/models"
)

// ErrNotFound is returned when an operation references a record id that
// does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for data persistence operations.
type Store interface {
	// Task operations
	CreateTask(ctx context.Context, task *models.Task) error
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Diary operations
	CreateDiaryEntry(ctx context.Context, entry *models.DiaryEntry) error
	GetDiaryEntry(ctx context.Context, id int64) (*models.DiaryEntry, error)
	ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error)

	// Movie operations
	CreateMovie(ctx context.Context, movie *models.Movie) error
	GetMovie(ctx context.Context, id int64) (*models.Movie, error)
	ListMovies(ctx context.Context) ([]models.Movie, error)
	UpdateMovie(ctx context.Context, movie *models.Movie) error
	DeleteMovie(ctx context.Context, id int64) error

	// Lifecycle
	Reset(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
