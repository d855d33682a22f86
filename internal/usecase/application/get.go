package application

import (
	"context"

	domain "github.com/winhire/interview-engine/internal/domain/application"
	"github.com/winhire/interview-engine/internal/models"
)

type GetApplication struct {
	repo domain.Repository
}

func NewGetApplication(repo domain.Repository) *GetApplication {
	return &GetApplication{repo: repo}
}

// Execute loads the application with its candidate and job.
func (uc *GetApplication) Execute(ctx context.Context, id uint) (*models.Application, error) {
	return uc.repo.GetWithParties(ctx, id)
}
