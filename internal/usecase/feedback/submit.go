package feedback

import (
	"context"

	"github.com/winhire/interview-engine/internal/audit"
	domain "github.com/winhire/interview-engine/internal/domain/feedback"
	"github.com/winhire/interview-engine/internal/domain/identity"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// SubmitFeedbackInput targets an interview, or an application for general
// feedback. The rater is always the actor.
type SubmitFeedbackInput struct {
	Actor identity.Actor

	InterviewID   *uint
	ApplicationID *uint

	Ratings        domain.Ratings
	Comments       string
	Recommendation string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitFeedback struct {
	repo   domain.Repository
	policy domain.Policy
	audit  audit.Sink
}

func NewSubmitFeedback(
	repo domain.Repository,
	policy domain.Policy,
	audit audit.Sink,
) *SubmitFeedback {
	return &SubmitFeedback{
		repo:   repo,
		policy: policy,
		audit:  audit,
	}
}

// Execute stores the feedback. Interview feedback replaces the rater's
// earlier submission for the same interview; general feedback is appended.
func (uc *SubmitFeedback) Execute(
	ctx context.Context,
	in SubmitFeedbackInput,
) (*models.Feedback, error) {

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	if err := domain.ValidateComments(in.Comments); err != nil {
		return nil, err
	}
	if err := uc.policy.ValidateRatings(in.Ratings); err != nil {
		return nil, err
	}
	recommendation, err := uc.policy.NormalizeRecommendation(in.Recommendation)
	if err != nil {
		return nil, err
	}
	if in.InterviewID == nil && in.ApplicationID == nil {
		return nil, httperr.Validation("interview_id", "interview_id or application_id is required")
	}

	fb := &models.Feedback{
		ProvidedByUserID: in.Actor.UserID,
		Comments:         in.Comments,
		Recommendation:   recommendation,
	}
	domain.ApplyRatings(fb, in.Ratings)

	// --------------------------------------------------
	// Interview feedback
	// --------------------------------------------------
	if in.InterviewID != nil {
		iv, err := uc.repo.GetInterview(ctx, *in.InterviewID)
		if err != nil {
			return nil, err
		}
		if in.ApplicationID != nil && *in.ApplicationID != iv.ApplicationID {
			return nil, httperr.Validation("application_id", "application_id does not match the interview's application")
		}

		appID, round := iv.ApplicationID, iv.Round
		fb.InterviewID = &iv.ID
		fb.ApplicationID = &appID
		fb.Round = &round

		if err := uc.repo.Upsert(ctx, fb); err != nil {
			return nil, err
		}
		uc.dispatch(in.Actor, fb)
		return fb, nil
	}

	// --------------------------------------------------
	// General feedback
	// --------------------------------------------------
	app, err := uc.repo.GetApplication(ctx, *in.ApplicationID)
	if err != nil {
		return nil, err
	}
	fb.ApplicationID = &app.ID

	if err := uc.repo.Create(ctx, fb); err != nil {
		return nil, err
	}
	uc.dispatch(in.Actor, fb)
	return fb, nil
}

func (uc *SubmitFeedback) dispatch(actor identity.Actor, fb *models.Feedback) {
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(actor.UserID),
		Action:   "feedback_submitted",
		Entity:   "feedback",
		EntityID: audit.Ptr(fb.ID),
		Metadata: map[string]any{
			"interview_id":   fb.InterviewID,
			"application_id": fb.ApplicationID,
			"recommendation": fb.Recommendation,
		},
	})
}
