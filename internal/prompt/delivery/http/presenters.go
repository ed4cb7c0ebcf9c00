package http

import (
	"time"

	"llm-personal-assistant/internal/intent"
	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/prompt"
)

// --- Request DTOs ---

type respondReq struct {
	PromptID string `json:"prompt_id" binding:"required"`
	Response string `json:"response"  binding:"required"`
}

func (r respondReq) toInput() prompt.RespondInput {
	return prompt.RespondInput{
		PromptID: r.PromptID,
		Response: r.Response,
	}
}

// --- Response DTOs ---

type promptResp struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Cadence  string `json:"cadence"`
}

func newPromptResp(p model.Prompt) promptResp {
	return promptResp{
		ID:       p.ID,
		Question: p.Question,
		Cadence:  string(p.Cadence),
	}
}

type promptListResp struct {
	Prompts []promptResp `json:"prompts"`
}

func newPromptListResp(prompts []model.Prompt) promptListResp {
	out := promptListResp{Prompts: make([]promptResp, len(prompts))}
	for i, p := range prompts {
		out.Prompts[i] = newPromptResp(p)
	}
	return out
}

type responseResp struct {
	ID        string    `json:"id"`
	PromptID  string    `json:"prompt_id"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type itemResult struct {
	Kind    string `json:"kind"`
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Created bool   `json:"created"`
	Reason  string `json:"reason,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

type respondResp struct {
	Response responseResp    `json:"response"`
	Analysis intent.Document `json:"analysis"`
	Results  []itemResult    `json:"results"`
}

func newRespondResp(out prompt.RespondOutput) respondResp {
	results := make([]itemResult, len(out.Results))
	for i, r := range out.Results {
		results[i] = itemResult{
			Kind:    string(r.Kind),
			Index:   r.Index,
			Title:   r.Title,
			Created: r.Created,
			Reason:  string(r.Reason),
			Detail:  r.Detail,
		}
	}
	return respondResp{
		Response: responseResp{
			ID:        out.Response.ID,
			PromptID:  out.Response.PromptID,
			Response:  out.Response.Response,
			Timestamp: out.Response.Timestamp,
		},
		Analysis: out.Analysis,
		Results:  results,
	}
}
