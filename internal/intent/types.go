package intent

import "encoding/json"

// Document is the structured output of analyzing a (prompt, response) pair.
// It is transient: it exists only within a single pipeline invocation.
// Items are kept raw so a malformed item fails at dispatch as an item-level
// diagnostic instead of failing the whole document.
type Document struct {
	Tasks  []json.RawMessage `json:"tasks"`
	Events []json.RawMessage `json:"events"`
}

// TaskIntent is a task suggestion extracted from free text.
// DueDate is a natural-language string; there is deliberately NO fallback to
// a generic "date" field here, unlike events.
type TaskIntent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// EventIntent is a calendar event suggestion. Date and time components
// arrive as separate natural-language strings, and the date may come from
// either dedicated start/end fields or a shared "date" field.
type EventIntent struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ItemKind tags a dispatch result as a task or an event.
type ItemKind string

const (
	KindTask  ItemKind = "task"
	KindEvent ItemKind = "event"
)

// FailureReason classifies why a single item could not be dispatched.
type FailureReason string

const (
	ReasonMalformedItem         FailureReason = "malformed_item"
	ReasonUnresolvableStartTime FailureReason = "unresolvable_start_time"
	ReasonStoreUnavailable      FailureReason = "store_unavailable"
)

// ItemResult is the tagged per-item outcome of a dispatch. Results keep
// document order so callers can render partial-failure detail.
type ItemResult struct {
	Kind    ItemKind      `json:"kind"`
	Index   int           `json:"index"`
	Title   string        `json:"title,omitempty"`
	Created bool          `json:"created"`
	Reason  FailureReason `json:"reason,omitempty"`
	Detail  string        `json:"detail,omitempty"`
}
