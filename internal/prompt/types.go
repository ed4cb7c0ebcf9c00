package prompt

import (
	"llm-personal-assistant/internal/intent"
	"llm-personal-assistant/internal/model"
)

type RespondInput struct {
	PromptID string
	Response string
}

// RespondOutput carries the stored answer plus everything the pipeline
// derived from it. Results is always populated, even when some items failed.
type RespondOutput struct {
	Response model.PromptResponse
	Analysis intent.Document
	Results  []intent.ItemResult
}
