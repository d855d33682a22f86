package interview

import (
	"context"
	"strings"

	"github.com/winhire/interview-engine/internal/audit"
	"github.com/winhire/interview-engine/internal/domain/identity"
	domain "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
	"github.com/winhire/interview-engine/internal/timezone"
)

// UpdateInterviewInput is a partial update. Status may be set to any known
// value; no transition rules apply on this path.
type UpdateInterviewInput struct {
	Actor identity.Actor
	ID    uint

	Title           *string
	Type            *string
	Round           *int
	ScheduledAt     *string
	DurationMinutes *int
	InterviewerID   *uint
	MeetingLink     *string
	Location        *string
	Notes           *string
	Status          *string
}

type UpdateInterview struct {
	repo    domain.Repository
	checker SlotChecker
	clock   timezone.Clock
	audit   audit.Sink
}

func NewUpdateInterview(
	repo domain.Repository,
	checker SlotChecker,
	clock timezone.Clock,
	audit audit.Sink,
) *UpdateInterview {
	return &UpdateInterview{
		repo:    repo,
		checker: checker,
		clock:   clock,
		audit:   audit,
	}
}

func (uc *UpdateInterview) Execute(
	ctx context.Context,
	in UpdateInterviewInput,
) (*models.Interview, error) {

	iv, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		iv.Title = strings.TrimSpace(*in.Title)
	}
	if in.Type != nil {
		iv.Type = strings.TrimSpace(*in.Type)
	}
	if in.Round != nil {
		round, err := domain.ResolveRound(in.Round)
		if err != nil {
			return nil, err
		}
		iv.Round = round
	}
	if in.ScheduledAt != nil {
		start, err := domain.ParseStart(*in.ScheduledAt, uc.checker.Location())
		if err != nil {
			return nil, err
		}
		iv.ScheduledAt = start
	}
	if in.DurationMinutes != nil {
		d, err := domain.ResolveDuration(in.DurationMinutes)
		if err != nil {
			return nil, err
		}
		iv.DurationMinutes = d
	}
	if in.InterviewerID != nil {
		if _, err := uc.repo.GetPanelist(ctx, *in.InterviewerID); err != nil {
			return nil, err
		}
		iv.InterviewerID = in.InterviewerID
	}
	if in.MeetingLink != nil {
		iv.MeetingLink = in.MeetingLink
	}
	if in.Location != nil {
		iv.Location = in.Location
	}
	if in.Notes != nil {
		iv.Notes = in.Notes
	}
	if in.Status != nil {
		if err := setStatus(iv, *in.Status, uc.clock); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, iv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(in.Actor.UserID),
		Action:   "interview_updated",
		Entity:   "interview",
		EntityID: audit.Ptr(iv.ID),
	})

	return iv, nil
}

// setStatus applies any known status. Moving into Completed stamps the
// completion time when none is recorded; any other status clears it.
func setStatus(iv *models.Interview, raw string, clock timezone.Clock) error {
	if strings.TrimSpace(raw) == "" {
		return httperr.Validation("status", "status is required")
	}
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return err
	}

	iv.Status = string(status)
	switch {
	case status != domain.StatusCompleted:
		iv.CompletedAt = nil
	case iv.CompletedAt == nil:
		now := clock.Now()
		iv.CompletedAt = &now
	}
	return nil
}
