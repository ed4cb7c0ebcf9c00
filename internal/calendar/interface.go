package calendar

import (
	"context"
	"time"

	"llm-personal-assistant/pkg/gcalendar"
)

// UseCase defines the business logic interface for the calendar domain.
type UseCase interface {
	// CreateEvent schedules an event between two UTC instants and returns
	// a link to it. The intent dispatcher writes events through this.
	CreateEvent(ctx context.Context, summary string, start, end time.Time) (string, error)

	// ListUpcoming returns events starting within the next N days,
	// soonest first. days <= 0 means the 7-day default.
	ListUpcoming(ctx context.Context, days int) ([]gcalendar.Event, error)
}
