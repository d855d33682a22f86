package availability

import (
	"context"
	"time"

	"github.com/winhire/interview-engine/internal/models"
)

// PanelistWindow is an Available window joined with its panelist.
type PanelistWindow struct {
	Window   models.PanelistAvailability
	Panelist models.User
}

type Repository interface {
	Create(ctx context.Context, w *models.PanelistAvailability) error
	GetByID(ctx context.Context, id uint) (*models.PanelistAvailability, error)
	Update(ctx context.Context, w *models.PanelistAvailability) error
	Delete(ctx context.Context, id uint) error

	// ListByPanelist is ordered by date, then start time.
	ListByPanelist(ctx context.Context, panelistID uint) ([]models.PanelistAvailability, error)
	ListAll(ctx context.Context) ([]models.PanelistAvailability, error)
	ListByPanelistAndDate(ctx context.Context, panelistID uint, date time.Time) ([]models.PanelistAvailability, error)
	ListAvailableOnDate(ctx context.Context, date time.Time) ([]PanelistWindow, error)

	GetPanelist(ctx context.Context, id uint) (*models.User, error)
}
