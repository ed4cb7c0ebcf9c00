package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/task/repository"
)

func (r *implRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&task).Error; err != nil {
		r.l.Errorf(ctx, "task repository: create failed: %v", err)
		return model.Task{}, err
	}
	return task, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Task{}, repository.ErrNotFound
		}
		return model.Task{}, err
	}
	return task, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, int64, error) {
	var tasks []model.Task
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Task{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Due-soonest first, tasks without a due date last.
	err := query.
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC").
		Offset(opt.Skip).Limit(opt.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *implRepository) Update(ctx context.Context, task model.Task) (model.Task, error) {
	task.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", task.ID).Updates(map[string]any{
		"title":       task.Title,
		"description": task.Description,
		"due_date":    task.DueDate,
		"completed":   task.Completed,
		"updated_at":  task.UpdatedAt,
	})
	if res.Error != nil {
		return model.Task{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return task, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
