package feedback

import (
	"context"

	"github.com/winhire/interview-engine/internal/audit"
	domain "github.com/winhire/interview-engine/internal/domain/feedback"
	"github.com/winhire/interview-engine/internal/domain/identity"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

// UpdateFeedbackInput is a partial update; a nil rating keeps the stored
// score.
type UpdateFeedbackInput struct {
	Actor identity.Actor
	ID    uint

	Ratings        domain.Ratings
	Comments       *string
	Recommendation *string
}

type UpdateFeedback struct {
	repo   domain.Repository
	policy domain.Policy
	audit  audit.Sink
}

func NewUpdateFeedback(
	repo domain.Repository,
	policy domain.Policy,
	audit audit.Sink,
) *UpdateFeedback {
	return &UpdateFeedback{
		repo:   repo,
		policy: policy,
		audit:  audit,
	}
}

func (uc *UpdateFeedback) Execute(
	ctx context.Context,
	in UpdateFeedbackInput,
) (*models.Feedback, error) {

	fb, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if !in.Actor.Owns(fb.ProvidedByUserID) {
		return nil, httperr.Forbidden("only the rater or an admin may change this feedback")
	}

	ratings := merge(domain.RatingsOf(*fb), in.Ratings)
	if err := uc.policy.ValidateRatings(ratings); err != nil {
		return nil, err
	}
	domain.ApplyRatings(fb, ratings)

	if in.Comments != nil {
		if err := domain.ValidateComments(*in.Comments); err != nil {
			return nil, err
		}
		fb.Comments = *in.Comments
	}
	if in.Recommendation != nil {
		rec, err := uc.policy.NormalizeRecommendation(*in.Recommendation)
		if err != nil {
			return nil, err
		}
		fb.Recommendation = rec
	}

	if err := uc.repo.Update(ctx, fb); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(in.Actor.UserID),
		Action:   "feedback_updated",
		Entity:   "feedback",
		EntityID: audit.Ptr(fb.ID),
	})

	return fb, nil
}

func merge(stored, patch domain.Ratings) domain.Ratings {
	if patch.Technical != nil {
		stored.Technical = patch.Technical
	}
	if patch.ProblemSolving != nil {
		stored.ProblemSolving = patch.ProblemSolving
	}
	if patch.Communication != nil {
		stored.Communication = patch.Communication
	}
	if patch.CulturalFit != nil {
		stored.CulturalFit = patch.CulturalFit
	}
	if patch.Overall != nil {
		stored.Overall = patch.Overall
	}
	return stored
}
