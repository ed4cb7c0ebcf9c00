package usecase

import (
	"context"

	"llm-personal-assistant/internal/calendar"
	"llm-personal-assistant/pkg/gcalendar"
	pkgLog "llm-personal-assistant/pkg/log"
)

// CalendarAPI is the slice of the Google Calendar client the usecase needs.
type CalendarAPI interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListUpcoming(ctx context.Context, calendarID string, days int) ([]gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	api        CalendarAPI
	calendarID string
}

// New creates a new calendar usecase. calendarID empty means "primary".
func New(l pkgLog.Logger, api CalendarAPI, calendarID string) calendar.UseCase {
	return &implUseCase{
		l:          l,
		api:        api,
		calendarID: calendarID,
	}
}
