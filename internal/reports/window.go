package reports

import (
	"strings"
	"time"

	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
)

// Range names a preset reporting window.
type Range string

const (
	RangeToday     Range = "today"
	RangeYesterday Range = "yesterday"
	Range7Days     Range = "7days"
	Range30Days    Range = "30days"
)

var validRanges = []Range{RangeToday, RangeYesterday, Range7Days, Range30Days}

// Granularity selects the bucket width of a trend.
type Granularity string

const (
	GranularityHourly Granularity = "hourly"
	GranularityDaily  Granularity = "daily"
)

// Window is an inclusive [Start, End] interval in the location of the clock
// that produced it. End is always the last millisecond of its calendar day.
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveRange maps a preset name onto a window around now. An empty name is
// treated as today.
func ResolveRange(name string, now time.Time) (Window, error) {
	value := normalizeRange(name)
	today := startOfDay(now)
	switch value {
	case RangeToday:
		return Window{Start: today, End: endOfDay(today)}, nil
	case RangeYesterday:
		start := today.AddDate(0, 0, -1)
		return Window{Start: start, End: endOfDay(start)}, nil
	case Range7Days:
		return Window{Start: today.AddDate(0, 0, -7), End: endOfDay(today)}, nil
	case Range30Days:
		return Window{Start: today.AddDate(0, 0, -30), End: endOfDay(today)}, nil
	default:
		return Window{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid range").
			WithDetails(map[string]any{"range": name, "allowed": validRanges})
	}
}

func normalizeRange(name string) Range {
	value := Range(strings.ToLower(strings.TrimSpace(name)))
	if value == "" {
		return RangeToday
	}
	return value
}

// Days counts the calendar days the window touches.
func (w Window) Days() int {
	days := 0
	for d := startOfDay(w.Start); !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// Previous returns the window of equal day count ending the day before Start.
func (w Window) Previous() Window {
	days := w.Days()
	start := startOfDay(w.Start)
	return Window{
		Start: start.AddDate(0, 0, -days),
		End:   endOfDay(start.AddDate(0, 0, -1)),
	}
}

// Granularity is hourly for single-day windows and daily otherwise.
func (w Window) Granularity() Granularity {
	if w.Days() <= 1 {
		return GranularityHourly
	}
	return GranularityDaily
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Location is the zone the window was resolved in.
func (w Window) Location() *time.Location {
	return w.Start.Location()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
