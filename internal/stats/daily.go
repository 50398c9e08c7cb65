package stats

import (
	"fmt"
	"time"

	"dashboard/internal/domain"
)

// DayLayout is the calendar-day wire format for from/to parameters and
// DailyStat dates.
const DayLayout = "2006-01-02"

// Default window configuration. The chart shows the last WindowDays calendar
// days ending today at the platform day boundary; the boundary follows the
// platform's home timezone (UTC+9).
const (
	DefaultWindowDays     = 30
	DefaultBoundaryOffset = 9 * time.Hour
)

// Aggregator buckets raw activity into calendar days.
type Aggregator struct {
	BoundaryOffset time.Duration
	WindowDays     int
}

func NewAggregator(boundaryOffsetHours, windowDays int) Aggregator {
	a := Aggregator{
		BoundaryOffset: time.Duration(boundaryOffsetHours) * time.Hour,
		WindowDays:     windowDays,
	}
	if a.WindowDays <= 0 {
		a.WindowDays = DefaultWindowDays
	}
	return a
}

// ParseDay parses a YYYY-MM-DD calendar date.
func ParseDay(s string) (time.Time, error) {
	day, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, domain.ErrInvalidRange)
	}
	return day, nil
}

// Today returns the current calendar day at the platform day boundary.
func (a Aggregator) Today(now time.Time) time.Time {
	shifted := now.UTC().Add(a.BoundaryOffset)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// DefaultWindow is the window served when the caller supplies no range:
// WindowDays days ending today, both ends inclusive.
func (a Aggregator) DefaultWindow(now time.Time) (from, to time.Time) {
	to = a.Today(now)
	from = to.AddDate(0, 0, -(a.WindowDays - 1))
	return from, to
}

// Fill expands sparse per-day rows into one entry per calendar day of the
// inclusive [from, to] range, ascending, zero-filling days without activity.
// The chart renders a fixed-width time axis, so empty days must not be
// skipped. from after to yields an empty sequence.
func (a Aggregator) Fill(from, to time.Time, rows []domain.DailyStat) []domain.DailyStat {
	byDay := make(map[string]domain.DailyStat, len(rows))
	for _, row := range rows {
		byDay[row.Date] = row
	}
	out := []domain.DailyStat{}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayLayout)
		if row, ok := byDay[key]; ok {
			out = append(out, row)
			continue
		}
		out = append(out, domain.DailyStat{Date: key})
	}
	return out
}
