package interview

import (
	"context"
	"time"

	"github.com/winhire/interview-engine/internal/models"
)

type ListFilter struct {
	Status string
	Type   string
}

type Repository interface {
	// -------- Interview --------
	// Schedule stores a new interview and raises the application's
	// current round to iv.Round atomically.
	Schedule(ctx context.Context, iv *models.Interview) error
	GetByID(ctx context.Context, id uint) (*models.Interview, error)
	Update(ctx context.Context, iv *models.Interview) error

	// Replace persists the rescheduled original and its successor atomically.
	Replace(ctx context.Context, original *models.Interview, next *models.Interview) error

	// Delete removes the interview and the feedback attached to it.
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, f ListFilter) ([]models.Interview, error)
	ListByApplication(ctx context.Context, applicationID uint) ([]models.Interview, error)
	ListByInterviewer(ctx context.Context, interviewerID uint) ([]models.Interview, error)

	// -------- Sweeper --------
	ListElapsedScheduled(ctx context.Context, now time.Time) ([]models.Interview, error)

	// CompleteIfScheduled writes Completed only while the row is still
	// Scheduled and reports whether it did.
	CompleteIfScheduled(ctx context.Context, id uint, completedAt time.Time) (bool, error)

	// -------- Application --------
	GetApplication(ctx context.Context, id uint) (*models.Application, error)
	GetPanelist(ctx context.Context, id uint) (*models.User, error)
}
