package interview

import (
	"strings"

	"github.com/winhire/interview-engine/internal/httperr"
)

// ===============================
// Interview Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "Scheduled"
	StatusCompleted   Status = "Completed"
	StatusCancelled   Status = "Cancelled"
	StatusRescheduled Status = "Rescheduled"
)

var statuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled}

func InitialStatus() Status {
	return StatusScheduled
}

// ParseStatus is a value check only. Any known status may replace any
// other through Update.
func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", httperr.Validation("status", "status must be one of Scheduled, Completed, Cancelled, Rescheduled")
}

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	switch current {
	case StatusCompleted:
		return httperr.Conflict("interview_completed", "a completed interview cannot be cancelled")
	case StatusRescheduled:
		return httperr.Conflict("interview_rescheduled", "a rescheduled interview cannot be cancelled; cancel its replacement")
	}
	return nil
}

func CanReschedule(current Status) error {
	if current != StatusScheduled {
		return httperr.Conflict("interview_not_scheduled", "only a scheduled interview can be rescheduled")
	}
	return nil
}
