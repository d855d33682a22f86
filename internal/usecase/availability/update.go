package availability

import (
	"context"

	"github.com/winhire/interview-engine/internal/audit"
	domain "github.com/winhire/interview-engine/internal/domain/availability"
	"github.com/winhire/interview-engine/internal/domain/identity"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

// UpdateAvailabilityInput is a partial update; nil fields are kept.
type UpdateAvailabilityInput struct {
	Actor identity.Actor
	ID    uint

	Date      *string
	StartTime *string
	EndTime   *string
	Status    *string
	Notes     *string
}

type UpdateAvailability struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdateAvailability(
	repo domain.Repository,
	audit audit.Sink,
) *UpdateAvailability {
	return &UpdateAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAvailability) Execute(
	ctx context.Context,
	in UpdateAvailabilityInput,
) (*models.PanelistAvailability, error) {

	w, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if !in.Actor.Owns(w.PanelistID) {
		return nil, httperr.Forbidden("only the panelist or an admin may change this availability")
	}

	if in.Date != nil {
		date, err := domain.ParseDate("available_date", *in.Date)
		if err != nil {
			return nil, err
		}
		w.AvailableDate = date
	}

	start, err := domain.ParseClock("start_time", pick(in.StartTime, w.StartTime))
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock("end_time", pick(in.EndTime, w.EndTime))
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateRange(start, end); err != nil {
		return nil, err
	}
	w.StartTime = domain.FormatClock(start)
	w.EndTime = domain.FormatClock(end)

	if in.Status != nil {
		status, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		w.Status = string(status)
	}
	if in.Notes != nil {
		w.Notes = *in.Notes
	}

	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(in.Actor.UserID),
		Action:   "availability_updated",
		Entity:   "availability_window",
		EntityID: audit.Ptr(w.ID),
	})

	return w, nil
}

func pick(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}
