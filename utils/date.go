package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02" // yyyy-MM-dd
	ClockLayout = "15:04"      // HH:MM
)

// TodayUTC returns the current calendar date in UTC. Attendance uses UTC
// as the "today" reference so behavior near midnight does not depend on
// the server's local zone.
func TodayUTC() string {
	return time.Now().UTC().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// ParseClockOnDate combines an HH:MM clock value with a calendar date.
func ParseClockOnDate(date time.Time, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(ClockLayout, clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, use HH:MM: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
