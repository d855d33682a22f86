package interview

import (
	"context"

	"github.com/winhire/interview-engine/internal/audit"
	"github.com/winhire/interview-engine/internal/domain/identity"
	domain "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/models"
	"github.com/winhire/interview-engine/internal/timezone"
)

// ===============================
// Update status
// ===============================

type UpdateInterviewStatus struct {
	repo  domain.Repository
	clock timezone.Clock
	audit audit.Sink
}

func NewUpdateInterviewStatus(
	repo domain.Repository,
	clock timezone.Clock,
	audit audit.Sink,
) *UpdateInterviewStatus {
	return &UpdateInterviewStatus{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *UpdateInterviewStatus) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
	status string,
) (*models.Interview, error) {

	iv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := iv.Status
	if err := setStatus(iv, status, uc.clock); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, iv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(actor.UserID),
		Action:   "interview_status_changed",
		Entity:   "interview",
		EntityID: audit.Ptr(iv.ID),
		Metadata: map[string]any{
			"from": previous,
			"to":   iv.Status,
		},
	})

	return iv, nil
}

// ===============================
// Complete
// ===============================

type CompleteInterview struct {
	repo  domain.Repository
	clock timezone.Clock
	audit audit.Sink
}

func NewCompleteInterview(
	repo domain.Repository,
	clock timezone.Clock,
	audit audit.Sink,
) *CompleteInterview {
	return &CompleteInterview{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

// Execute is a no-op on an already completed interview.
func (uc *CompleteInterview) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
) (*models.Interview, error) {

	iv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.Complete(iv, uc.clock.Now()) {
		return iv, nil
	}

	if err := uc.repo.Update(ctx, iv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(actor.UserID),
		Action:   "interview_completed",
		Entity:   "interview",
		EntityID: audit.Ptr(iv.ID),
	})

	return iv, nil
}

// ===============================
// Cancel
// ===============================

type CancelInterview struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCancelInterview(
	repo domain.Repository,
	audit audit.Sink,
) *CancelInterview {
	return &CancelInterview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelInterview) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
) (*models.Interview, error) {

	iv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := domain.Cancel(iv)
	if err != nil {
		return nil, err
	}
	if !changed {
		return iv, nil
	}

	if err := uc.repo.Update(ctx, iv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(actor.UserID),
		Action:   "interview_cancelled",
		Entity:   "interview",
		EntityID: audit.Ptr(iv.ID),
	})

	return iv, nil
}
