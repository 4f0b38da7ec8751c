package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"ourspace/internal/models"
)

const defaultBusyTimeout = 5 * time.Second

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	migrator *goose.Provider
}

// NewSQLiteStore opens the database at dbPath and creates the record tables
// if they do not exist yet. A zero busyTimeout falls back to five seconds.
func NewSQLiteStore(dbPath string, busyTimeout time.Duration) (*SQLiteStore, error) {
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeout
	}

	db, err := sql.Open("sqlite3", dataSourceName(dbPath, busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	migrator, err := newMigrator(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db, migrator: migrator}
	if err := migrateUp(context.Background(), migrator); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// dataSourceName builds a file: URI so that characters like '?' or '#'
// in dbPath stay part of the file name.
func dataSourceName(dbPath string, busyTimeout time.Duration) string {
	params := url.Values{}
	params.Set("_busy_timeout", strconv.FormatInt(busyTimeout.Milliseconds(), 10))

	u := url.URL{Path: dbPath}
	return "file:" + u.EscapedPath() + "?" + params.Encode()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Reset drops every record table and recreates the empty schema.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	if err := dropSchema(ctx, s.migrator); err != nil {
		return err
	}
	return migrateUp(ctx, s.migrator)
}

// insert runs an INSERT and returns the id SQLite assigned to the new row.
func (s *SQLiteStore) insert(ctx context.Context, b sq.InsertBuilder) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// execOne runs an UPDATE or DELETE that targets a single id and reports
// ErrNotFound when no row matched.
func (s *SQLiteStore) execOne(ctx context.Context, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build statement: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) queryRow(ctx context.Context, b sq.SelectBuilder) (*sql.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return s.db.QueryRowContext(ctx, query, args...), nil
}

func (s *SQLiteStore) query(ctx context.Context, b sq.SelectBuilder) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return s.db.QueryContext(ctx, query, args...)
}

func notFound(err error, kind string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return nil
}

// CreateTask creates a new task in the database.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *models.Task) error {
	id, err := s.insert(ctx, sq.Insert("tasks").
		Columns("description", "completed").
		Values(task.Description, task.Completed))
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	task.ID = id

	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLiteStore) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	row, err := s.queryRow(ctx, sq.Select("id", "description", "completed").
		From("tasks").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	task := &models.Task{}
	if err := row.Scan(&task.ID, &task.Description, &task.Completed); err != nil {
		if nf := notFound(err, "task", id); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListTasks retrieves all tasks in insertion order.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := s.query(ctx, sq.Select("id", "description", "completed").
		From("tasks").
		OrderBy("id ASC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Description, &task.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// UpdateTask persists the description and completed flag of an existing task.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *models.Task) error {
	err := s.execOne(ctx, sq.Update("tasks").
		Set("description", task.Description).
		Set("completed", task.Completed).
		Where(sq.Eq{"id": task.ID}))
	if err != nil {
		if nf := notFound(err, "task", task.ID); nf != nil {
			return nf
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// DeleteTask deletes a task by ID.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id int64) error {
	err := s.execOne(ctx, sq.Delete("tasks").Where(sq.Eq{"id": id}))
	if err != nil {
		if nf := notFound(err, "task", id); nf != nil {
			return nf
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// CreateDiaryEntry creates a new diary entry in the database.
func (s *SQLiteStore) CreateDiaryEntry(ctx context.Context, entry *models.DiaryEntry) error {
	id, err := s.insert(ctx, sq.Insert("diary_entries").
		Columns("name", "content").
		Values(entry.Name, entry.Content))
	if err != nil {
		return fmt.Errorf("failed to create diary entry: %w", err)
	}
	entry.ID = id

	return nil
}

// GetDiaryEntry retrieves a diary entry by ID.
func (s *SQLiteStore) GetDiaryEntry(ctx context.Context, id int64) (*models.DiaryEntry, error) {
	row, err := s.queryRow(ctx, sq.Select("id", "name", "content").
		From("diary_entries").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	entry := &models.DiaryEntry{}
	if err := row.Scan(&entry.ID, &entry.Name, &entry.Content); err != nil {
		if nf := notFound(err, "diary entry", id); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to get diary entry: %w", err)
	}

	return entry, nil
}

// ListDiaryEntries retrieves all diary entries in insertion order.
func (s *SQLiteStore) ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	rows, err := s.query(ctx, sq.Select("id", "name", "content").
		From("diary_entries").
		OrderBy("id ASC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.DiaryEntry, 0)
	for rows.Next() {
		var entry models.DiaryEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Content); err != nil {
			return nil, fmt.Errorf("failed to scan diary entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// CreateMovie creates a new movie in the database.
func (s *SQLiteStore) CreateMovie(ctx context.Context, movie *models.Movie) error {
	id, err := s.insert(ctx, sq.Insert("movies").
		Columns("title", "watched").
		Values(movie.Title, movie.Watched))
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	movie.ID = id

	return nil
}

// GetMovie retrieves a movie by ID.
func (s *SQLiteStore) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	row, err := s.queryRow(ctx, sq.Select("id", "title", "watched").
		From("movies").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{}
	if err := row.Scan(&movie.ID, &movie.Title, &movie.Watched); err != nil {
		if nf := notFound(err, "movie", id); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return movie, nil
}

// ListMovies retrieves the whole watchlist in insertion order.
func (s *SQLiteStore) ListMovies(ctx context.Context) ([]models.Movie, error) {
	rows, err := s.query(ctx, sq.Select("id", "title", "watched").
		From("movies").
		OrderBy("id ASC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		var movie models.Movie
		if err := rows.Scan(&movie.ID, &movie.Title, &movie.Watched); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	return movies, rows.Err()
}

// UpdateMovie persists the title and watched flag of an existing movie.
func (s *SQLiteStore) UpdateMovie(ctx context.Context, movie *models.Movie) error {
	err := s.execOne(ctx, sq.Update("movies").
		Set("title", movie.Title).
		Set("watched", movie.Watched).
		Where(sq.Eq{"id": movie.ID}))
	if err != nil {
		if nf := notFound(err, "movie", movie.ID); nf != nil {
			return nf
		}
		return fmt.Errorf("failed to update movie: %w", err)
	}

	return nil
}

// DeleteMovie deletes a movie by ID.
func (s *SQLiteStore) DeleteMovie(ctx context.Context, id int64) error {
	err := s.execOne(ctx, sq.Delete("movies").Where(sq.Eq{"id": id}))
	if err != nil {
		if nf := notFound(err, "movie", id); nf != nil {
			return nf
		}
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return nil
}
