package application

import (
	"context"
	"time"

	"github.com/winhire/interview-engine/internal/models"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	// GetWithParties preloads the candidate and the job.
	GetWithParties(ctx context.Context, id uint) (*models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status string, at time.Time) error
	HasCompletedInterview(ctx context.Context, applicationID uint) (bool, error)
}
