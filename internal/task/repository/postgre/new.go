package postgre

import (
	"context"

	"gorm.io/gorm"

	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/task/repository"
	pkgLog "llm-personal-assistant/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  pkgLog.Logger
}

// New creates a new GORM-backed task repository and migrates its table.
func New(db *gorm.DB, l pkgLog.Logger) repository.TaskRepository {
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		l.Errorf(context.Background(), "task repository migration failed: %v", err)
	}
	return &implRepository{db: db, l: l}
}
