package feedback

import (
	"context"

	"github.com/winhire/interview-engine/internal/audit"
	domain "github.com/winhire/interview-engine/internal/domain/feedback"
	"github.com/winhire/interview-engine/internal/domain/identity"
	"github.com/winhire/interview-engine/internal/httperr"
)

type DeleteFeedback struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteFeedback(
	repo domain.Repository,
	audit audit.Sink,
) *DeleteFeedback {
	return &DeleteFeedback{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteFeedback) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
) error {

	fb, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Owns(fb.ProvidedByUserID) {
		return httperr.Forbidden("only the rater or an admin may delete this feedback")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(actor.UserID),
		Action:   "feedback_deleted",
		Entity:   "feedback",
		EntityID: audit.Ptr(id),
	})
	return nil
}
