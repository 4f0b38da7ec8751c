package service

import (
	"context"
	"fmt"

	"ourspace/internal/models"
)

// AddTask stores a new open task.
func (s *Service) AddTask(ctx context.Context, description string) (*models.Task, error) {
	task := &models.Task{Description: description}
	if err := task.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "task added", "task_id", task.ID)

	return task, nil
}

// ListTasks returns every task.
func (s *Service) ListTasks(ctx context.Context) ([]models.Task, error) {
	return s.store.ListTasks(ctx)
}

// CompleteTask marks the task done. There is no way back to open.
func (s *Service) CompleteTask(ctx context.Context, id int64) error {
	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	task.Completed = true
	if err := s.store.UpdateTask(ctx, task); err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	return nil
}

// DeleteTask removes the task.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	if err := s.store.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
