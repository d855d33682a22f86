package availability

import (
	"context"

	"github.com/winhire/interview-engine/internal/audit"
	domain "github.com/winhire/interview-engine/internal/domain/availability"
	"github.com/winhire/interview-engine/internal/domain/identity"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type DeclareAvailabilityInput struct {
	Actor identity.Actor

	// PanelistID defaults to the actor.
	PanelistID uint

	Date      string
	StartTime string
	EndTime   string
	Status    string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type DeclareAvailability struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeclareAvailability(
	repo domain.Repository,
	audit audit.Sink,
) *DeclareAvailability {
	return &DeclareAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeclareAvailability) Execute(
	ctx context.Context,
	in DeclareAvailabilityInput,
) (*models.PanelistAvailability, error) {

	panelistID := in.PanelistID
	if panelistID == 0 {
		panelistID = in.Actor.UserID
	}
	if !in.Actor.Owns(panelistID) {
		return nil, httperr.Forbidden("only the panelist or an admin may declare this availability")
	}

	// --------------------------------------------------
	// Parsing
	// --------------------------------------------------
	date, err := domain.ParseDate("available_date", in.Date)
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseClock("start_time", in.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock("end_time", in.EndTime)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateRange(start, end); err != nil {
		return nil, err
	}
	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetPanelist(ctx, panelistID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	w := &models.PanelistAvailability{
		PanelistID:    panelistID,
		AvailableDate: date,
		StartTime:     domain.FormatClock(start),
		EndTime:       domain.FormatClock(end),
		Status:        string(status),
		Notes:         in.Notes,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(in.Actor.UserID),
		Action:   "availability_declared",
		Entity:   "availability_window",
		EntityID: audit.Ptr(w.ID),
		Metadata: map[string]any{
			"panelist_id": panelistID,
			"date":        domain.FormatDate(date),
			"start_time":  w.StartTime,
			"end_time":    w.EndTime,
		},
	})

	return w, nil
}
