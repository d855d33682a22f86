package dto

import (
	"time"

	domain "github.com/winhire/interview-engine/internal/domain/availability"
	"github.com/winhire/interview-engine/internal/models"
	ucAvailability "github.com/winhire/interview-engine/internal/usecase/availability"
)

// WindowDTO renders the calendar date without a time component.
type WindowDTO struct {
	ID            uint      `json:"id"`
	PanelistID    uint      `json:"panelist_id"`
	AvailableDate string    `json:"available_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func Window(w models.PanelistAvailability) WindowDTO {
	return WindowDTO{
		ID:            w.ID,
		PanelistID:    w.PanelistID,
		AvailableDate: domain.FormatDate(w.AvailableDate),
		StartTime:     w.StartTime,
		EndTime:       w.EndTime,
		Status:        w.Status,
		Notes:         w.Notes,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func Windows(ws []models.PanelistAvailability) []WindowDTO {
	out := make([]WindowDTO, 0, len(ws))
	for _, w := range ws {
		out = append(out, Window(w))
	}
	return out
}

type AvailablePanelistDTO struct {
	AvailabilityID uint   `json:"availability_id"`
	PanelistID     uint   `json:"panelist_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

func AvailablePanelists(in []ucAvailability.AvailablePanelist) []AvailablePanelistDTO {
	out := make([]AvailablePanelistDTO, 0, len(in))
	for _, p := range in {
		out = append(out, AvailablePanelistDTO{
			AvailabilityID: p.WindowID,
			PanelistID:     p.PanelistID,
			Name:           p.Name,
			Email:          p.Email,
			Department:     p.Department,
			Date:           p.Date,
			StartTime:      p.StartTime,
			EndTime:        p.EndTime,
		})
	}
	return out
}

type SlotCheckDTO struct {
	Valid            bool              `json:"valid"`
	Reason           string            `json:"reason,omitempty"`
	Date             string            `json:"date"`
	AvailableWindows []domain.TimeSlot `json:"available_windows"`
}

func SlotCheck(r ucAvailability.SlotCheck) SlotCheckDTO {
	slots := r.AvailableWindows
	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	return SlotCheckDTO{
		Valid:            r.Valid,
		Reason:           r.Reason,
		Date:             r.Date,
		AvailableWindows: slots,
	}
}
