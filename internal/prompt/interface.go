package prompt

import (
	"context"

	"llm-personal-assistant/internal/model"
)

// UseCase defines the business logic interface for the prompt domain.
type UseCase interface {
	// ListByCadence returns the catalog prompts for a cadence.
	ListByCadence(ctx context.Context, cadence model.Cadence) ([]model.Prompt, error)

	// Respond records an answer to a prompt and runs it through the
	// intent pipeline. Item-level dispatch failures do not fail the call.
	Respond(ctx context.Context, input RespondInput) (RespondOutput, error)
}
