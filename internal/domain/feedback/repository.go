package feedback

import (
	"context"

	"github.com/winhire/interview-engine/internal/models"
)

type Repository interface {
	// Upsert writes interview feedback keyed by (interview, rater); a second
	// submission by the same rater replaces the first.
	Upsert(ctx context.Context, fb *models.Feedback) error
	// Create appends general application feedback.
	Create(ctx context.Context, fb *models.Feedback) error

	GetByID(ctx context.Context, id uint) (*models.Feedback, error)
	Update(ctx context.Context, fb *models.Feedback) error
	Delete(ctx context.Context, id uint) error

	ListByInterview(ctx context.Context, interviewID uint) ([]models.Feedback, error)
	// ListByApplication returns general feedback and feedback on any of the
	// application's interviews.
	ListByApplication(ctx context.Context, applicationID uint) ([]models.Feedback, error)

	GetInterview(ctx context.Context, id uint) (*models.Interview, error)
	GetApplication(ctx context.Context, id uint) (*models.Application, error)
	ListInterviewsByApplication(ctx context.Context, applicationID uint) ([]models.Interview, error)
}
