package usecase

import (
	"context"
	"errors"
	"strings"

	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/prompt"
	"llm-personal-assistant/internal/prompt/repository"
)

func (uc *implUseCase) ListByCadence(ctx context.Context, cadence model.Cadence) ([]model.Prompt, error) {
	if !cadence.Valid() {
		return nil, prompt.ErrInvalidCadence
	}
	return uc.repo.ListByCadence(ctx, cadence)
}

func (uc *implUseCase) Respond(ctx context.Context, input prompt.RespondInput) (prompt.RespondOutput, error) {
	if strings.TrimSpace(input.Response) == "" {
		return prompt.RespondOutput{}, prompt.ErrEmptyResponse
	}

	p, err := uc.repo.GetPrompt(ctx, input.PromptID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return prompt.RespondOutput{}, prompt.ErrNotFound
		}
		uc.l.Errorf(ctx, "usecase.Respond: get prompt: %v", err)
		return prompt.RespondOutput{}, err
	}

	// The raw answer is recorded before analysis so a pipeline failure
	// never loses what the user wrote.
	stored, err := uc.repo.CreateResponse(ctx, model.PromptResponse{
		PromptID:  p.ID,
		Response:  input.Response,
		Timestamp: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Respond: save response: %v", err)
		return prompt.RespondOutput{}, err
	}

	doc, err := uc.analyzer.Extract(ctx, p.Question, input.Response)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Respond: extract: %v", err)
		return prompt.RespondOutput{}, err
	}

	results := uc.dispatcher.Dispatch(ctx, doc)

	return prompt.RespondOutput{
		Response: stored,
		Analysis: doc,
		Results:  results,
	}, nil
}
