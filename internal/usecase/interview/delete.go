package interview

import (
	"context"

	"github.com/winhire/interview-engine/internal/audit"
	"github.com/winhire/interview-engine/internal/domain/identity"
	domain "github.com/winhire/interview-engine/internal/domain/interview"
)

type DeleteInterview struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteInterview(
	repo domain.Repository,
	audit audit.Sink,
) *DeleteInterview {
	return &DeleteInterview{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes the interview together with its feedback.
func (uc *DeleteInterview) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(actor.UserID),
		Action:   "interview_deleted",
		Entity:   "interview",
		EntityID: audit.Ptr(id),
	})
	return nil
}
