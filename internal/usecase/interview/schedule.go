package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/winhire/interview-engine/internal/audit"
	"github.com/winhire/interview-engine/internal/domain/identity"
	domain "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleInterviewInput struct {
	Actor identity.Actor

	ApplicationID   uint
	Round           *int
	InterviewerID   *uint
	ScheduledAt     string
	DurationMinutes *int

	Title       string
	Type        string
	MeetingLink *string
	Location    *string
	Notes       *string

	// Force books the slot even when it falls outside the panelist's
	// declared availability.
	Force bool
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleInterview struct {
	repo    domain.Repository
	checker SlotChecker
	audit   audit.Sink
	log     logger.Logger
}

func NewScheduleInterview(
	repo domain.Repository,
	checker SlotChecker,
	audit audit.Sink,
	log logger.Logger,
) *ScheduleInterview {
	return &ScheduleInterview{
		repo:    repo,
		checker: checker,
		audit:   audit,
		log:     log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ScheduleInterview) Execute(
	ctx context.Context,
	in ScheduleInterviewInput,
) (*models.Interview, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	start, err := domain.ParseStart(in.ScheduledAt, uc.checker.Location())
	if err != nil {
		return nil, err
	}
	duration, err := domain.ResolveDuration(in.DurationMinutes)
	if err != nil {
		return nil, err
	}
	round, err := domain.ResolveRound(in.Round)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Parties
	// --------------------------------------------------
	app, err := uc.repo.GetApplication(ctx, in.ApplicationID)
	if err != nil {
		return nil, err
	}

	if in.InterviewerID != nil {
		if _, err := uc.repo.GetPanelist(ctx, *in.InterviewerID); err != nil {
			return nil, err
		}

		// --------------------------------------------------
		// Availability
		// --------------------------------------------------
		if err := checkSlot(
			ctx,
			uc.checker,
			uc.log,
			*in.InterviewerID,
			start,
			time.Duration(duration)*time.Minute,
			in.Force,
		); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	ivType := strings.TrimSpace(in.Type)
	if ivType == "" {
		ivType = domain.DefaultType
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = fmt.Sprintf("Round %d %s interview", round, ivType)
	}

	iv := &models.Interview{
		ApplicationID:   app.ID,
		Round:           round,
		Title:           title,
		Type:            ivType,
		ScheduledAt:     start,
		DurationMinutes: duration,
		MeetingLink:     in.MeetingLink,
		Location:        in.Location,
		Status:          string(domain.InitialStatus()),
		InterviewerID:   in.InterviewerID,
		Notes:           in.Notes,
	}
	if err := uc.repo.Schedule(ctx, iv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(in.Actor.UserID),
		Action:   "interview_scheduled",
		Entity:   "interview",
		EntityID: audit.Ptr(iv.ID),
		Metadata: map[string]any{
			"application_id": app.ID,
			"round":          round,
			"scheduled_at":   start,
			"forced":         in.Force,
		},
	})

	return iv, nil
}
