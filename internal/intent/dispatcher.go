package intent

import (
	"context"
	"encoding/json"
	"time"

	"llm-personal-assistant/pkg/datemath"
	pkgLog "llm-personal-assistant/pkg/log"
)

// TaskCreator is the task-store contract the dispatcher writes through.
// The task domain's UseCase satisfies it.
type TaskCreator interface {
	CreateFromIntent(ctx context.Context, title, description string, dueDate *time.Time) (string, error)
}

// EventCreator is the calendar-store contract. Start and end instants are
// UTC; implementations stamp "UTC" as the timezone label on the wire.
type EventCreator interface {
	CreateEvent(ctx context.Context, summary string, start, end time.Time) (string, error)
}

// Dispatcher turns a Document into concrete writes against the task store
// and calendar store, one item at a time, in document order. Tasks are fully
// processed before events. One failing item never aborts the batch.
type Dispatcher struct {
	l      pkgLog.Logger
	tasks  TaskCreator
	events EventCreator
	dates  *datemath.Parser
	now    func() time.Time
}

// NewDispatcher creates a new Dispatcher. events may be nil when no calendar
// is configured; event items then fail individually instead of panicking.
func NewDispatcher(l pkgLog.Logger, tasks TaskCreator, events EventCreator, dates *datemath.Parser) *Dispatcher {
	return &Dispatcher{
		l:      l,
		tasks:  tasks,
		events: events,
		dates:  dates,
		now:    time.Now,
	}
}

// SetNow overrides the dispatch-time clock for testing purposes.
func (d *Dispatcher) SetNow(now func() time.Time) { d.now = now }

// Dispatch issues create operations for every item in doc and returns the
// ordered per-item outcomes.
func (d *Dispatcher) Dispatch(ctx context.Context, doc Document) []ItemResult {
	results := make([]ItemResult, 0, len(doc.Tasks)+len(doc.Events))

	for i, raw := range doc.Tasks {
		results = append(results, d.dispatchTask(ctx, i, raw))
	}
	for i, raw := range doc.Events {
		results = append(results, d.dispatchEvent(ctx, i, raw))
	}

	return results
}

func (d *Dispatcher) dispatchTask(ctx context.Context, index int, raw json.RawMessage) ItemResult {
	res := ItemResult{Kind: KindTask, Index: index}

	var ti TaskIntent
	if err := json.Unmarshal(raw, &ti); err != nil {
		d.l.Warnf(ctx, "dispatch: skipping malformed task item %d: %v", index, err)
		res.Reason = ReasonMalformedItem
		res.Detail = err.Error()
		return res
	}

	title := ti.Title
	if title == "" {
		title = "Untitled Task"
	}
	res.Title = title

	// due_date only — no fallback to a shared "date" field for tasks.
	var due *time.Time
	if t, ok := d.dates.ParseDate(ti.DueDate, d.now()); ok {
		due = &t
	} else if ti.DueDate != "" {
		d.l.Warnf(ctx, "dispatch: task %d: could not interpret due date %q, creating without one", index, ti.DueDate)
	}

	id, err := d.tasks.CreateFromIntent(ctx, title, ti.Description, due)
	if err != nil {
		d.l.Errorf(ctx, "dispatch: task %d %q: store call failed: %v", index, title, err)
		res.Reason = ReasonStoreUnavailable
		res.Detail = err.Error()
		return res
	}

	res.Created = true
	res.Detail = id
	return res
}

func (d *Dispatcher) dispatchEvent(ctx context.Context, index int, raw json.RawMessage) ItemResult {
	res := ItemResult{Kind: KindEvent, Index: index}

	var ei EventIntent
	if err := json.Unmarshal(raw, &ei); err != nil {
		d.l.Warnf(ctx, "dispatch: skipping malformed event item %d: %v", index, err)
		res.Reason = ReasonMalformedItem
		res.Detail = err.Error()
		return res
	}

	title := ei.Title
	if title == "" {
		title = "Untitled Event"
	}
	res.Title = title

	if d.events == nil {
		res.Reason = ReasonStoreUnavailable
		res.Detail = "calendar not configured"
		return res
	}

	now := d.now()

	// Start date: start_date, then date, then today (at dispatch time).
	startDate, ok := d.resolveDate(now, ei.StartDate, ei.Date)
	if !ok {
		startDate, _ = d.dates.ParseDate("today", now)
	}

	// End date: end_date, then date, then the resolved start date.
	endDate, ok := d.resolveDate(now, ei.EndDate, ei.Date)
	if !ok {
		endDate = startDate
	}

	// Start time is required: without it the event is not creatable.
	startClock, ok := d.dates.ParseTime(ei.StartTime)
	if !ok {
		d.l.Warnf(ctx, "dispatch: event %d %q: unable to determine start time, skipping", index, title)
		res.Reason = ReasonUnresolvableStartTime
		res.Detail = "unable to determine start time"
		return res
	}

	start := d.dates.Combine(startDate, startClock)

	// End time defaults to exactly one hour after the start instant.
	var end time.Time
	if endClock, ok := d.dates.ParseTime(ei.EndTime); ok {
		end = d.dates.Combine(endDate, endClock)
	} else {
		end = start.Add(time.Hour)
	}

	link, err := d.events.CreateEvent(ctx, title, start.UTC(), end.UTC())
	if err != nil {
		d.l.Errorf(ctx, "dispatch: event %d %q: calendar call failed: %v", index, title, err)
		res.Reason = ReasonStoreUnavailable
		res.Detail = err.Error()
		return res
	}

	res.Created = true
	res.Detail = link
	return res
}

// resolveDate returns the first candidate that parses as a date.
func (d *Dispatcher) resolveDate(base time.Time, candidates ...string) (time.Time, bool) {
	for _, text := range candidates {
		if t, ok := d.dates.ParseDate(text, base); ok {
			return t, true
		}
	}
	return time.Time{}, false
}
