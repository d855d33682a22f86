package availability

import (
	"strings"

	"github.com/winhire/interview-engine/internal/httperr"
)

// ===============================
// Window Status
// ===============================

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusBooked      Status = "Booked"
	StatusUnavailable Status = "Unavailable"
)

var statuses = []Status{StatusAvailable, StatusBooked, StatusUnavailable}

// ParseStatus defaults an empty value to Available and matches known
// statuses case-insensitively.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusAvailable, nil
	}
	for _, st := range statuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", httperr.Validation("status", "status must be one of Available, Booked, Unavailable")
}
