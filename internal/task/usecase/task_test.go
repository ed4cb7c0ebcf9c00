package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/task"
	"llm-personal-assistant/internal/task/repository"
	"llm-personal-assistant/pkg/ticktick"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeRepo struct {
	tasks     map[string]model.Task
	nextID    int
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: map[string]model.Task{}}
}

func (f *fakeRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	if f.createErr != nil {
		return model.Task{}, f.createErr
	}
	f.nextID++
	t.ID = string(rune('a' + f.nextID - 1))
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (model.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (f *fakeRepo) List(ctx context.Context, opts repository.ListOptions) ([]model.Task, int64, error) {
	var out []model.Task
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, int64(len(f.tasks)), nil
}

func (f *fakeRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	if _, ok := f.tasks[t.ID]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

type fakeMirror struct {
	requests []ticktick.CreateTaskRequest
	err      error
}

func (f *fakeMirror) CreateTask(ctx context.Context, req ticktick.CreateTaskRequest) (*ticktick.Task, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &ticktick.Task{ID: "tt-1", Title: req.Title}, nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid task is persisted and mirrored", func(t *testing.T) {
		repo := newFakeRepo()
		mirror := &fakeMirror{}
		uc := New(&mockLogger{}, repo, mirror)

		created, err := uc.Create(ctx, task.CreateTaskInput{Title: "Write report", Description: "Q2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Errorf("expected an ID to be assigned")
		}
		if len(mirror.requests) != 1 || mirror.requests[0].Title != "Write report" {
			t.Errorf("mirror requests = %+v", mirror.requests)
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		uc := New(&mockLogger{}, newFakeRepo(), nil)

		_, err := uc.Create(ctx, task.CreateTaskInput{Title: "   "})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("mirror failure does not fail the create", func(t *testing.T) {
		repo := newFakeRepo()
		mirror := &fakeMirror{err: errors.New("ticktick down")}
		uc := New(&mockLogger{}, repo, mirror)

		created, err := uc.Create(ctx, task.CreateTaskInput{Title: "Local only"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.tasks[created.ID]; !ok {
			t.Errorf("task not persisted locally")
		}
	})

	t.Run("nil mirror is fine", func(t *testing.T) {
		uc := New(&mockLogger{}, newFakeRepo(), nil)

		if _, err := uc.Create(ctx, task.CreateTaskInput{Title: "No mirror"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCreateFromIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("empty title falls back instead of failing", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(&mockLogger{}, repo, nil)

		id, err := uc.CreateFromIntent(ctx, "", "desc", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.tasks[id].Title != "Untitled Task" {
			t.Errorf("title = %q, want Untitled Task", repo.tasks[id].Title)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = errors.New("db gone")
		uc := New(&mockLogger{}, repo, nil)

		if _, err := uc.CreateFromIntent(ctx, "X", "", nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := New(&mockLogger{}, repo, nil)
	repo.Create(ctx, model.Task{Title: "one"})
	repo.Create(ctx, model.Task{Title: "two"})

	t.Run("defaults applied", func(t *testing.T) {
		out, err := uc.List(ctx, task.ListTasksInput{Skip: -3, Limit: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Skip != 0 || out.Limit != 20 {
			t.Errorf("skip=%d limit=%d, want 0 and 20", out.Skip, out.Limit)
		}
		if out.Total != 2 {
			t.Errorf("total = %d, want 2", out.Total)
		}
	})

	t.Run("oversized limit clamped", func(t *testing.T) {
		out, _ := uc.List(ctx, task.ListTasksInput{Limit: 9999})
		if out.Limit != 20 {
			t.Errorf("limit = %d, want 20", out.Limit)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeRepo, task.UseCase, model.Task) {
		repo := newFakeRepo()
		uc := New(&mockLogger{}, repo, nil)
		created, _ := repo.Create(ctx, model.Task{Title: "original"})
		return repo, uc, created
	}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		_, uc, created := setup()
		done := true

		updated, err := uc.Update(ctx, task.UpdateTaskInput{ID: created.ID, Completed: &done})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "original" || !updated.Completed {
			t.Errorf("updated = %+v", updated)
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		_, uc, created := setup()
		blank := "  "

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: created.ID, Title: &blank})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, uc, _ := setup()

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "nope"})
		if !errors.Is(err, task.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDetailAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := New(&mockLogger{}, repo, nil)
	created, _ := repo.Create(ctx, model.Task{Title: "keep"})

	if _, err := uc.Detail(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Detail(ctx, "missing"); !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(ctx, created.ID); !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
