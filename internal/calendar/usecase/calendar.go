package usecase

import (
	"context"
	"time"

	"llm-personal-assistant/pkg/gcalendar"
)

func (uc *implUseCase) CreateEvent(ctx context.Context, summary string, start, end time.Time) (string, error) {
	event, err := uc.api.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    summary,
		StartTime:  start,
		EndTime:    end,
		Timezone:   "UTC",
	})
	if err != nil {
		return "", err
	}

	link := event.HtmlLink
	if link == "" {
		link = event.ID
	}
	uc.l.Infof(ctx, "usecase.CreateEvent: scheduled %q %s", summary, link)
	return link, nil
}

func (uc *implUseCase) ListUpcoming(ctx context.Context, days int) ([]gcalendar.Event, error) {
	return uc.api.ListUpcoming(ctx, uc.calendarID, days)
}
