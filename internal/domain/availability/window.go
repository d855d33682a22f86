package availability

import (
	"fmt"
	"time"

	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	day = 24 * time.Hour
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseDate reads a calendar day and normalizes it to midnight UTC, the
// form dates are stored in.
func ParseDate(field, s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, httperr.Validation(field, fmt.Sprintf("%s must be a date in YYYY-MM-DD form", field))
	}
	return d, nil
}

// ParseClock reads a time of day as an offset from midnight. Seconds are
// accepted and truncated. "24:00" is the end of the day, so a window can
// close at midnight.
func ParseClock(field, s string) (time.Duration, error) {
	if s == "24:00" || s == "24:00:00" {
		return day, nil
	}

	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
	}
	if err != nil {
		return 0, httperr.Validation(field, fmt.Sprintf("%s must be a time of day in HH:MM form", field))
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func FormatClock(d time.Duration) string {
	d = d.Truncate(time.Minute)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly drops the clock part while keeping the calendar day as seen in
// t's own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ===============================
// Window
// ===============================

type Window struct {
	Start  time.Duration
	End    time.Duration
	Status Status
}

func WindowOf(m models.PanelistAvailability) (Window, error) {
	start, err := ParseClock("start_time", m.StartTime)
	if err != nil {
		return Window{}, err
	}
	end, err := ParseClock("end_time", m.EndTime)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end, Status: Status(m.Status)}, nil
}

// Covers is true when [start, end) lies fully inside the window.
func (w Window) Covers(start, end time.Duration) bool {
	return w.Start <= start && end <= w.End
}

func (w Window) Slot() TimeSlot {
	return TimeSlot{Start: FormatClock(w.Start), End: FormatClock(w.End)}
}

func ValidateRange(start, end time.Duration) error {
	if start >= end {
		return httperr.Validation("end_time", "end_time must be after start_time")
	}
	return nil
}
