package interview

import (
	"time"

	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

const (
	DefaultDurationMinutes = 60
	DefaultRound           = 1
	DefaultType            = "Technical"
)

// ===============================
// Domain Actions
// ===============================

// Complete reports whether the interview changed. An already completed
// interview keeps its original completion time.
func Complete(iv *models.Interview, now time.Time) bool {
	if Status(iv.Status) == StatusCompleted {
		return false
	}

	iv.Status = string(StatusCompleted)
	iv.CompletedAt = &now
	return true
}

func Cancel(iv *models.Interview) (bool, error) {
	current := Status(iv.Status)
	if current == StatusCancelled {
		return false, nil
	}
	if err := CanCancel(current); err != nil {
		return false, err
	}

	iv.Status = string(StatusCancelled)
	return true, nil
}

// Reschedule marks iv as replaced and returns its Scheduled successor.
func Reschedule(iv *models.Interview, start time.Time, durationMinutes int) (*models.Interview, error) {
	if err := CanReschedule(Status(iv.Status)); err != nil {
		return nil, err
	}

	iv.Status = string(StatusRescheduled)
	originalID := iv.ID

	next := &models.Interview{
		ApplicationID:     iv.ApplicationID,
		Round:             iv.Round,
		Title:             iv.Title,
		Type:              iv.Type,
		ScheduledAt:       start,
		DurationMinutes:   durationMinutes,
		MeetingLink:       iv.MeetingLink,
		Location:          iv.Location,
		Status:            string(InitialStatus()),
		InterviewerID:     iv.InterviewerID,
		Notes:             iv.Notes,
		RescheduledFromID: &originalID,
	}
	return next, nil
}

// Elapsed is true once the scheduled end is strictly in the past.
func Elapsed(iv models.Interview, now time.Time) bool {
	return iv.EndsAt().Before(now)
}

// AutoComplete is the sweeper transition: completion is backdated to the
// scheduled end.
func AutoComplete(iv *models.Interview) {
	end := iv.EndsAt()
	iv.Status = string(StatusCompleted)
	iv.CompletedAt = &end
}

// ===============================
// Input normalization
// ===============================

func ResolveDuration(minutes *int) (int, error) {
	if minutes == nil {
		return DefaultDurationMinutes, nil
	}
	if *minutes <= 0 {
		return 0, httperr.Validation("duration_minutes", "duration_minutes must be positive")
	}
	return *minutes, nil
}

func ResolveRound(round *int) (int, error) {
	if round == nil {
		return DefaultRound, nil
	}
	if *round < 1 {
		return 0, httperr.Validation("round", "round must be a positive integer")
	}
	return *round, nil
}

// ParseStart accepts RFC 3339, or a zone-less "2006-01-02T15:04[:05]"
// interpreted in loc.
func ParseStart(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, httperr.Validation("scheduled_at", "scheduled_at must be an RFC 3339 timestamp")
}
