package task

import (
	"context"
	"time"

	"llm-personal-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create persists a new task. Title must be non-empty.
	Create(ctx context.Context, input CreateTaskInput) (model.Task, error)

	// CreateFromIntent is the pipeline write path: it applies the
	// "Untitled Task" fallback and returns the new task's ID.
	CreateFromIntent(ctx context.Context, title, description string, dueDate *time.Time) (string, error)

	// List returns tasks with pagination.
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)

	// Detail returns a single task by ID.
	Detail(ctx context.Context, id string) (model.Task, error)

	// Update applies a partial update to an existing task.
	Update(ctx context.Context, input UpdateTaskInput) (model.Task, error)

	// Delete removes a task by ID.
	Delete(ctx context.Context, id string) error
}
