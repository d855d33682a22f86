package availability

import (
	"context"

	"github.com/winhire/interview-engine/internal/audit"
	domain "github.com/winhire/interview-engine/internal/domain/availability"
	"github.com/winhire/interview-engine/internal/domain/identity"
	"github.com/winhire/interview-engine/internal/httperr"
)

type DeleteAvailability struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteAvailability(
	repo domain.Repository,
	audit audit.Sink,
) *DeleteAvailability {
	return &DeleteAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAvailability) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
) error {

	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Owns(w.PanelistID) {
		return httperr.Forbidden("only the panelist or an admin may delete this availability")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(actor.UserID),
		Action:   "availability_deleted",
		Entity:   "availability_window",
		EntityID: audit.Ptr(id),
	})
	return nil
}
