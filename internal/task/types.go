package task

import (
	"time"

	"llm-personal-assistant/internal/model"
)

// CreateTaskInput is the input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// UpdateTaskInput carries optional fields for a partial update.
// Nil pointers leave the stored value untouched.
type UpdateTaskInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
}

// ListTasksInput is the input for listing tasks with pagination.
type ListTasksInput struct {
	Skip  int
	Limit int
}

// ListTasksOutput is the result of a task listing.
type ListTasksOutput struct {
	Tasks []model.Task
	Total int64
	Skip  int
	Limit int
}
