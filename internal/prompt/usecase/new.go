package usecase

import (
	"context"
	"time"

	"llm-personal-assistant/internal/intent"
	"llm-personal-assistant/internal/prompt"
	"llm-personal-assistant/internal/prompt/repository"
	pkgLog "llm-personal-assistant/pkg/log"
)

// Analyzer turns a prompt answer into a structured intent document.
// intent.Extractor satisfies it.
type Analyzer interface {
	Extract(ctx context.Context, question, responseText string) (intent.Document, error)
}

// Dispatcher executes an intent document against the downstream stores.
// intent.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, doc intent.Document) []intent.ItemResult
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.PromptRepository
	analyzer   Analyzer
	dispatcher Dispatcher
	now        func() time.Time
}

// New creates a new prompt usecase.
func New(l pkgLog.Logger, repo repository.PromptRepository, analyzer Analyzer, dispatcher Dispatcher) prompt.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		analyzer:   analyzer,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}
