package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/task"
	"llm-personal-assistant/internal/task/repository"
	"llm-personal-assistant/pkg/ticktick"
)

// Create persists a new task and mirrors it to the third-party task service
// when one is configured. Mirror failure is logged, never escalated.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	created, err := uc.repo.Create(ctx, model.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
	})
	if err != nil {
		return model.Task{}, err
	}

	uc.mirrorCreate(ctx, created)
	return created, nil
}

// CreateFromIntent is the dispatcher's write path. An empty title falls back
// to "Untitled Task" instead of failing the item.
func (uc *implUseCase) CreateFromIntent(ctx context.Context, title, description string, dueDate *time.Time) (string, error) {
	if strings.TrimSpace(title) == "" {
		title = "Untitled Task"
	}

	created, err := uc.repo.Create(ctx, model.Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
	})
	if err != nil {
		return "", err
	}

	uc.mirrorCreate(ctx, created)
	return created.ID, nil
}

func (uc *implUseCase) mirrorCreate(ctx context.Context, t model.Task) {
	if uc.mirror == nil {
		return
	}
	_, err := uc.mirror.CreateTask(ctx, ticktick.CreateTaskRequest{
		Title:   t.Title,
		Content: t.Description,
		DueDate: t.DueDate,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task usecase: ticktick mirror failed for %q (non-fatal): %v", t.Title, err)
	}
}

func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}

	tasks, total, err := uc.repo.List(ctx, repository.ListOptions{Skip: skip, Limit: limit})
	if err != nil {
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks: tasks,
		Total: total,
		Skip:  skip,
		Limit: limit,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, err
	}
	return t, nil
}

func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (model.Task, error) {
	current, err := uc.repo.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
		current.Title = *input.Title
	}
	if input.Description != nil {
		current.Description = *input.Description
	}
	if input.DueDate != nil {
		current.DueDate = input.DueDate
	}
	if input.Completed != nil {
		current.Completed = *input.Completed
	}

	updated, err := uc.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, err
	}
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrNotFound
		}
		return err
	}
	return nil
}
