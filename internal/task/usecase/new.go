package usecase

import (
	"context"

	"llm-personal-assistant/internal/task"
	"llm-personal-assistant/internal/task/repository"
	pkgLog "llm-personal-assistant/pkg/log"
	"llm-personal-assistant/pkg/ticktick"
)

// TaskMirror pushes local task creates to a third-party task service.
// *ticktick.Client satisfies it.
type TaskMirror interface {
	CreateTask(ctx context.Context, req ticktick.CreateTaskRequest) (*ticktick.Task, error)
}

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.TaskRepository
	mirror TaskMirror // optional, nil when TickTick is not configured
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository, mirror TaskMirror) task.UseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		mirror: mirror,
	}
}
