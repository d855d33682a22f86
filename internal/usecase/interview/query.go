package interview

import (
	"context"

	domain "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/models"
)

type QueryInterviews struct {
	repo domain.Repository
}

func NewQueryInterviews(repo domain.Repository) *QueryInterviews {
	return &QueryInterviews{repo: repo}
}

func (uc *QueryInterviews) Get(ctx context.Context, id uint) (*models.Interview, error) {
	return uc.repo.GetByID(ctx, id)
}

// List filters on status and type when given. An unknown status is a
// validation error, not an empty result.
func (uc *QueryInterviews) List(ctx context.Context, f domain.ListFilter) ([]models.Interview, error) {
	if f.Status != "" {
		status, err := domain.ParseStatus(f.Status)
		if err != nil {
			return nil, err
		}
		f.Status = string(status)
	}
	return uc.repo.List(ctx, f)
}

func (uc *QueryInterviews) ByApplication(ctx context.Context, applicationID uint) ([]models.Interview, error) {
	if _, err := uc.repo.GetApplication(ctx, applicationID); err != nil {
		return nil, err
	}
	return uc.repo.ListByApplication(ctx, applicationID)
}

func (uc *QueryInterviews) ByInterviewer(ctx context.Context, interviewerID uint) ([]models.Interview, error) {
	if _, err := uc.repo.GetPanelist(ctx, interviewerID); err != nil {
		return nil, err
	}
	return uc.repo.ListByInterviewer(ctx, interviewerID)
}
