package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	pkgLog "llm-personal-assistant/pkg/log"
)

// Completer is the completion-service contract the extractor depends on.
// *anthropic.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// systemInstruction frames the completion service as an assistant extracting
// actionable tasks and events for someone managing personal scheduling.
const systemInstruction = `You are an AI assistant helping to manage tasks and schedules for someone with ADHD.
Analyze the following prompt and response, then suggest tasks to be added to their to-do list
and events to be added to their calendar. Format your answer as a JSON object with a 'tasks'
list and an 'events' list. Each task has 'title', 'description' and 'due_date' (natural
language, e.g. "tomorrow"). Each event has 'title', plus 'start_date'/'end_date' (or a shared
'date') and 'start_time'/'end_time' fields, all as natural-language strings.`

// Extractor turns a (prompt, response) pair into a Document via a single
// completion-service call, with defensive parsing of the service's output.
type Extractor struct {
	llm Completer
	l   pkgLog.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(l pkgLog.Logger, llm Completer) *Extractor {
	return &Extractor{llm: llm, l: l}
}

// Extract makes exactly one completion call and parses its free-form output
// into a Document. No retry happens here; retry policy belongs to the
// transport layer.
func (e *Extractor) Extract(ctx context.Context, question, responseText string) (Document, error) {
	userText := fmt.Sprintf("Prompt: %s\nResponse: %s", question, responseText)

	raw, err := e.llm.Complete(ctx, systemInstruction, userText)
	if err != nil {
		// Surfaced, not swallowed: a failed call still incurred cost.
		return Document{}, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	candidate, err := extractJSONObject(raw)
	if err != nil {
		e.l.Warnf(ctx, "intent extractor: no JSON in completion output: %q", truncate(raw, 200))
		return Document{}, err
	}

	var doc Document
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		e.l.Warnf(ctx, "intent extractor: malformed JSON candidate: %q", truncate(candidate, 200))
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	if doc.Tasks == nil {
		doc.Tasks = []json.RawMessage{}
	}
	if doc.Events == nil {
		doc.Events = []json.RawMessage{}
	}

	e.l.Infof(ctx, "intent extractor: parsed %d tasks, %d events", len(doc.Tasks), len(doc.Events))
	return doc, nil
}

// extractJSONObject returns the substring from the first '{' to the last '}'
// inclusive. Completion services wrap JSON in prose often enough that this
// deliberate tolerance beats strict parsing; keep the heuristic explicit.
func extractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONFound
	}
	return text[start : end+1], nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
