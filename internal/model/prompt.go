package model

import "time"

// Cadence is the recurrence bucket of a prompt.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// Valid reports whether c is a known cadence.
func (c Cadence) Valid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	}
	return false
}

// Prompt is a question tied to a cadence. Prompts are seeded once at startup
// and never deleted in normal operation.
type Prompt struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	Question string  `json:"question" gorm:"not null"`
	Cadence  Cadence `json:"cadence" gorm:"not null;index"`
}

// PromptResponse is a user's free-text answer to a Prompt at a point in time.
// Immutable after creation, retained indefinitely.
type PromptResponse struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PromptID  string    `json:"prompt_id" gorm:"not null;index"`
	Response  string    `json:"response" gorm:"not null"`
	Timestamp time.Time `json:"timestamp"`
}
