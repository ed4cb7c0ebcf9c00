package postgre

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"gorm.io/gorm"

	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/prompt/repository"
	pkgLog "llm-personal-assistant/pkg/log"
)

const promptCacheSize = 128

type implRepository struct {
	db    *gorm.DB
	l     pkgLog.Logger
	cache *lru.Cache[string, model.Prompt]
}

// New creates a new GORM-backed prompt repository and migrates its tables.
// Prompts are read-mostly, so lookups go through a small LRU cache.
func New(db *gorm.DB, l pkgLog.Logger) repository.PromptRepository {
	if err := db.AutoMigrate(&model.Prompt{}, &model.PromptResponse{}); err != nil {
		l.Errorf(context.Background(), "prompt repository migration failed: %v", err)
	}
	cache, _ := lru.New[string, model.Prompt](promptCacheSize)
	return &implRepository{db: db, l: l, cache: cache}
}
