package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts natural-language date and time fragments into calendar
// values. Date and time are parsed independently because upstream intent
// documents supply them as separate fields.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// explicit date layouts tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2",
	"Jan 2",
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// ParseDate interprets text as a calendar date relative to base.
// Empty or blank text returns (zero, false) without attempting any parsing.
// Unparseable text also returns (zero, false): parse failure is recoverable
// and never surfaces as an error to the caller.
func (p *Parser) ParseDate(text string, base time.Time) (time.Time, bool) {
	raw := strings.TrimSpace(text)
	text = strings.ToLower(raw)
	if text == "" {
		return time.Time{}, false
	}

	switch text {
	case "today", "tonight":
		return p.startOfDay(base), true
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), true
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), true
	}

	// "in X days/weeks/months"
	if m := inDurationRe.FindStringSubmatch(text); len(m) == 3 {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return p.startOfDay(base.AddDate(0, 0, amount)), true
		case strings.HasPrefix(m[2], "week"):
			return p.startOfDay(base.AddDate(0, 0, amount*7)), true
		case strings.HasPrefix(m[2], "month"):
			return p.startOfDay(base.AddDate(0, amount, 0)), true
		}
	}

	// "next <weekday>" or a bare weekday name
	dayName := strings.TrimPrefix(text, "next ")
	if wd, ok := weekdays[dayName]; ok {
		daysUntil := int(wd - base.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return p.startOfDay(base.AddDate(0, 0, daysUntil)), true
	}

	// Explicit dates (month names are case-sensitive in time.Parse, so use raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, p.location); err == nil {
			// Year-less layouts parse as year 0: pin them to the base year.
			if t.Year() == 0 {
				t = time.Date(base.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
			}
			return p.startOfDay(t), true
		}
	}

	return time.Time{}, false
}

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// ParseTime interprets text as a time-of-day component.
// Same contract as ParseDate: empty or unparseable text returns (Clock{}, false).
func (p *Parser) ParseTime(text string) (Clock, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Clock{}, false
	}

	switch text {
	case "noon", "midday":
		return Clock{Hour: 12}, true
	case "midnight":
		return Clock{}, true
	}

	m := clockRe.FindStringSubmatch(text)
	if m == nil {
		return Clock{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}

// Combine stamps a time-of-day onto a date in the parser's timezone.
func (p *Parser) Combine(date time.Time, c Clock) time.Time {
	date = date.In(p.location)
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, p.location)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
