package availability

import (
	"context"

	domain "github.com/winhire/interview-engine/internal/domain/availability"
	"github.com/winhire/interview-engine/internal/models"
)

type ListAvailability struct {
	repo domain.Repository
}

func NewListAvailability(repo domain.Repository) *ListAvailability {
	return &ListAvailability{repo: repo}
}

func (uc *ListAvailability) All(ctx context.Context) ([]models.PanelistAvailability, error) {
	return uc.repo.ListAll(ctx)
}

// ByPanelist fails with NotFound for an unknown panelist rather than
// returning an empty list.
func (uc *ListAvailability) ByPanelist(
	ctx context.Context,
	panelistID uint,
) ([]models.PanelistAvailability, error) {

	if _, err := uc.repo.GetPanelist(ctx, panelistID); err != nil {
		return nil, err
	}
	return uc.repo.ListByPanelist(ctx, panelistID)
}
