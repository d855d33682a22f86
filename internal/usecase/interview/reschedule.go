package interview

import (
	"context"
	"time"

	"github.com/winhire/interview-engine/internal/audit"
	"github.com/winhire/interview-engine/internal/domain/identity"
	domain "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/models"
)

type RescheduleInterviewInput struct {
	Actor identity.Actor
	ID    uint

	ScheduledAt string
	// DurationMinutes defaults to the original interview's duration.
	DurationMinutes *int
	Force           bool
}

type RescheduleInterview struct {
	repo    domain.Repository
	checker SlotChecker
	audit   audit.Sink
	log     logger.Logger
}

func NewRescheduleInterview(
	repo domain.Repository,
	checker SlotChecker,
	audit audit.Sink,
	log logger.Logger,
) *RescheduleInterview {
	return &RescheduleInterview{
		repo:    repo,
		checker: checker,
		audit:   audit,
		log:     log,
	}
}

// Execute returns the replacement interview. The original is kept with
// status Rescheduled.
func (uc *RescheduleInterview) Execute(
	ctx context.Context,
	in RescheduleInterviewInput,
) (*models.Interview, error) {

	iv, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanReschedule(domain.Status(iv.Status)); err != nil {
		return nil, err
	}

	start, err := domain.ParseStart(in.ScheduledAt, uc.checker.Location())
	if err != nil {
		return nil, err
	}
	duration := iv.DurationMinutes
	if in.DurationMinutes != nil {
		if duration, err = domain.ResolveDuration(in.DurationMinutes); err != nil {
			return nil, err
		}
	}

	if iv.InterviewerID != nil {
		if err := checkSlot(
			ctx,
			uc.checker,
			uc.log,
			*iv.InterviewerID,
			start,
			time.Duration(duration)*time.Minute,
			in.Force,
		); err != nil {
			return nil, err
		}
	}

	next, err := domain.Reschedule(iv, start, duration)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Replace(ctx, iv, next); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(in.Actor.UserID),
		Action:   "interview_rescheduled",
		Entity:   "interview",
		EntityID: audit.Ptr(iv.ID),
		Metadata: map[string]any{
			"replacement_id": next.ID,
			"scheduled_at":   start,
			"forced":         in.Force,
		},
	})

	return next, nil
}
