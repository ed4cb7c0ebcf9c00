package repository

import (
	"context"
	"errors"

	"llm-personal-assistant/internal/model"
)

var ErrNotFound = errors.New("record not found")

// PromptRepository is the persistence contract for the prompt catalog and
// the responses recorded against it.
type PromptRepository interface {
	// Seed inserts the default prompt catalog when the table is empty.
	Seed(ctx context.Context) error

	GetPrompt(ctx context.Context, id string) (model.Prompt, error)
	ListByCadence(ctx context.Context, cadence model.Cadence) ([]model.Prompt, error)

	CreateResponse(ctx context.Context, resp model.PromptResponse) (model.PromptResponse, error)
	ListResponses(ctx context.Context, promptID string) ([]model.PromptResponse, error)
}
