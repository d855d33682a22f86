package feedback

import (
	"context"
	"sort"

	domain "github.com/winhire/interview-engine/internal/domain/feedback"
	ivdomain "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/models"
)

type QueryFeedback struct {
	repo domain.Repository
}

func NewQueryFeedback(repo domain.Repository) *QueryFeedback {
	return &QueryFeedback{repo: repo}
}

func (uc *QueryFeedback) Get(ctx context.Context, id uint) (*models.Feedback, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *QueryFeedback) ByInterview(ctx context.Context, interviewID uint) ([]models.Feedback, error) {
	if _, err := uc.repo.GetInterview(ctx, interviewID); err != nil {
		return nil, err
	}
	return uc.repo.ListByInterview(ctx, interviewID)
}

// ByApplication includes both interview-attached and general feedback.
func (uc *QueryFeedback) ByApplication(ctx context.Context, applicationID uint) ([]models.Feedback, error) {
	if _, err := uc.repo.GetApplication(ctx, applicationID); err != nil {
		return nil, err
	}
	return uc.repo.ListByApplication(ctx, applicationID)
}

// ===============================
// Round summary
// ===============================

type InterviewFeedback struct {
	Interview models.Interview
	Feedback  []models.Feedback
}

// Round groups one round's interviews. Ratings are never averaged; each
// rater's recommendation stays as submitted.
type Round struct {
	Round        int
	HasCompleted bool
	Interviews   []InterviewFeedback
}

type RoundSummary struct {
	ApplicationID uint
	Status        string
	CurrentRound  *int
	Rounds        []Round

	// General holds feedback not attached to an interview.
	General []models.Feedback
}

// RoundSummary is the input a human hiring decision consumes.
func (uc *QueryFeedback) RoundSummary(ctx context.Context, applicationID uint) (*RoundSummary, error) {
	app, err := uc.repo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	interviews, err := uc.repo.ListInterviewsByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	feedback, err := uc.repo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	byInterview := map[uint][]models.Feedback{}
	summary := &RoundSummary{
		ApplicationID: app.ID,
		Status:        app.Status,
		CurrentRound:  app.CurrentRound,
		General:       []models.Feedback{},
	}
	for _, fb := range feedback {
		if fb.InterviewID == nil {
			summary.General = append(summary.General, fb)
			continue
		}
		byInterview[*fb.InterviewID] = append(byInterview[*fb.InterviewID], fb)
	}

	rounds := map[int]*Round{}
	for _, iv := range interviews {
		r, ok := rounds[iv.Round]
		if !ok {
			r = &Round{Round: iv.Round}
			rounds[iv.Round] = r
		}
		if iv.Status == string(ivdomain.StatusCompleted) {
			r.HasCompleted = true
		}
		fbs := byInterview[iv.ID]
		if fbs == nil {
			fbs = []models.Feedback{}
		}
		r.Interviews = append(r.Interviews, InterviewFeedback{Interview: iv, Feedback: fbs})
	}

	summary.Rounds = make([]Round, 0, len(rounds))
	for _, r := range rounds {
		summary.Rounds = append(summary.Rounds, *r)
	}
	sort.Slice(summary.Rounds, func(i, j int) bool {
		return summary.Rounds[i].Round < summary.Rounds[j].Round
	})

	return summary, nil
}
