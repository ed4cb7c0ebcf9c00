package repository

import (
	"context"
	"errors"

	"llm-personal-assistant/internal/model"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("task record not found")

// ListOptions defines pagination for task listings.
type ListOptions struct {
	Skip  int
	Limit int
}

// TaskRepository is the interface for task data access operations.
type TaskRepository interface {
	Create(ctx context.Context, task model.Task) (model.Task, error)
	Get(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, int64, error)
	Update(ctx context.Context, task model.Task) (model.Task, error)
	Delete(ctx context.Context, id string) error
}
