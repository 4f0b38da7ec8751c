package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ourspace/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), 0)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path, 0)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	if err := first.CreateTask(ctx, &models.Task{Description: "survives restart"}); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	first.Close()

	second, err := NewSQLiteStore(path, 0)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	tasks, err := second.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "survives restart" {
		t.Fatalf("expected persisted task, got %+v", tasks)
	}
}

func TestDataSourceName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "./data/ourspace.db", want: "file:./data/ourspace.db?_busy_timeout=5000"},
		{path: "/tmp/what?.db", want: "file:/tmp/what%3F.db?_busy_timeout=5000"},
		{path: "/tmp/a#b c.db", want: "file:/tmp/a%23b%20c.db?_busy_timeout=5000"},
	}

	for _, tt := range tests {
		if got := dataSourceName(tt.path, 5*time.Second); got != tt.want {
			t.Errorf("dataSourceName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNewSQLiteStore_PathWithQueryChars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd?name#1.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path, 0)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	if err := first.CreateTask(ctx, &models.Task{Description: "kept"}); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	first.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file at %q: %v", path, err)
	}

	second, err := NewSQLiteStore(path, 0)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	tasks, err := second.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "kept" {
		t.Fatalf("expected persisted task, got %+v", tasks)
	}
}

func TestCreateTask(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	task := &models.Task{Description: "Water the plants"}
	if err := store.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if task.ID == 0 {
		t.Error("expected task ID to be set")
	}

	got, err := store.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Description != "Water the plants" {
		t.Errorf("expected description %q, got %q", "Water the plants", got.Description)
	}
	if got.Completed {
		t.Error("expected new task to be open")
	}
}

func TestCreateTask_AssignsUniqueIDs(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		task := &models.Task{Description: "Task"}
		if err := store.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestGetTask_NotFound(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	_, err := store.GetTask(ctx, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListTasks_InsertionOrder(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	for _, d := range []string{"First", "Second", "Third"} {
		store.CreateTask(ctx, &models.Task{Description: d})
	}

	got, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}

	expectedOrder := []string{"First", "Second", "Third"}
	for i, d := range expectedOrder {
		if got[i].Description != d {
			t.Errorf("position %d: expected %q, got %q", i, d, got[i].Description)
		}
	}
}

func TestListTasks_EmptyIsNotNil(t *testing.T) {
	store := setupTestDB(t)

	got, err := store.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestUpdateTask(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	task := &models.Task{Description: "Original"}
	store.CreateTask(ctx, task)

	task.Completed = true
	if err := store.UpdateTask(ctx, task); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	got, _ := store.GetTask(ctx, task.ID)
	if !got.Completed {
		t.Error("expected task to be completed")
	}

	// Writing the same values again still matches the row.
	if err := store.UpdateTask(ctx, task); err != nil {
		t.Fatalf("idempotent UpdateTask failed: %v", err)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	store := setupTestDB(t)

	err := store.UpdateTask(context.Background(), &models.Task{ID: 42, Description: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	keep := &models.Task{Description: "Keep"}
	drop := &models.Task{Description: "Drop"}
	store.CreateTask(ctx, keep)
	store.CreateTask(ctx, drop)

	if err := store.DeleteTask(ctx, drop.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	tasks, _ := store.ListTasks(ctx)
	for _, task := range tasks {
		if task.ID == drop.ID {
			t.Fatal("deleted task still listed")
		}
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task left, got %d", len(tasks))
	}

	if err := store.DeleteTask(ctx, drop.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDiaryEntries(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	entry := &models.DiaryEntry{Name: "Alice", Content: "Today was good"}
	if err := store.CreateDiaryEntry(ctx, entry); err != nil {
		t.Fatalf("CreateDiaryEntry failed: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("expected diary entry ID to be set")
	}

	entries, err := store.ListDiaryEntries(ctx)
	if err != nil {
		t.Fatalf("ListDiaryEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0] != *entry {
		t.Errorf("expected %+v, got %+v", *entry, entries[0])
	}

	got, err := store.GetDiaryEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("GetDiaryEntry failed: %v", err)
	}
	if got.Content != "Today was good" {
		t.Errorf("expected content %q, got %q", "Today was good", got.Content)
	}

	if _, err := store.GetDiaryEntry(ctx, entry.ID+1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMovies(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	movie := &models.Movie{Title: "Paprika"}
	if err := store.CreateMovie(ctx, movie); err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	movie.Watched = true
	if err := store.UpdateMovie(ctx, movie); err != nil {
		t.Fatalf("UpdateMovie failed: %v", err)
	}

	got, err := store.GetMovie(ctx, movie.ID)
	if err != nil {
		t.Fatalf("GetMovie failed: %v", err)
	}
	if !got.Watched {
		t.Error("expected movie to be watched")
	}

	if err := store.DeleteMovie(ctx, movie.ID); err != nil {
		t.Fatalf("DeleteMovie failed: %v", err)
	}

	if _, err := store.GetMovie(ctx, movie.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.UpdateMovie(ctx, movie); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound updating deleted movie, got %v", err)
	}
	if err := store.DeleteMovie(ctx, movie.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestReset_EmptiesAllTables(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	store.CreateTask(ctx, &models.Task{Description: "Task"})
	store.CreateDiaryEntry(ctx, &models.DiaryEntry{Name: "Alice", Content: "Entry"})
	store.CreateMovie(ctx, &models.Movie{Title: "Movie"})

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil || len(tasks) != 0 {
		t.Errorf("expected no tasks after reset, got %d (err %v)", len(tasks), err)
	}
	entries, err := store.ListDiaryEntries(ctx)
	if err != nil || len(entries) != 0 {
		t.Errorf("expected no diary entries after reset, got %d (err %v)", len(entries), err)
	}
	movies, err := store.ListMovies(ctx)
	if err != nil || len(movies) != 0 {
		t.Errorf("expected no movies after reset, got %d (err %v)", len(movies), err)
	}

	// Tables are usable again straight after the reset.
	task := &models.Task{Description: "After reset"}
	if err := store.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask after reset failed: %v", err)
	}
	if task.ID == 0 {
		t.Error("expected task ID to be set after reset")
	}
}

func TestPing(t *testing.T) {
	store := setupTestDB(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}
