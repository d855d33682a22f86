package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/winhire/interview-engine/internal/domain/application"
	interview "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

const entityApplication = "application"

type ApplicationGormRepository struct {
	db *gorm.DB
}

func NewApplicationGormRepository(db *gorm.DB) *ApplicationGormRepository {
	return &ApplicationGormRepository{db: db}
}

func (r *ApplicationGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Application, error) {
	return getApplication(ctx, r.db, id)
}

func (r *ApplicationGormRepository) GetWithParties(
	ctx context.Context,
	id uint,
) (*models.Application, error) {

	var app models.Application
	if err := r.db.WithContext(ctx).
		Preload("Candidate").
		Preload("Job").
		First(&app, id).Error; err != nil {
		return nil, translate(err, "get", entityApplication, id)
	}
	return &app, nil
}

func (r *ApplicationGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status string,
	at time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       status,
			"last_updated": at,
		})
	if res.Error != nil {
		return translate(res.Error, "update", entityApplication, id)
	}
	if res.RowsAffected == 0 {
		return httperr.NotFound(entityApplication, id)
	}
	return nil
}

func (r *ApplicationGormRepository) HasCompletedInterview(
	ctx context.Context,
	applicationID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Interview{}).
		Where("application_id = ? AND status = ?", applicationID, string(interview.StatusCompleted)).
		Count(&count).Error; err != nil {
		return false, translate(err, "count", entityInterview, applicationID)
	}
	return count > 0, nil
}

func getApplication(ctx context.Context, db *gorm.DB, id uint) (*models.Application, error) {
	var app models.Application
	if err := db.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, translate(err, "get", entityApplication, id)
	}
	return &app, nil
}

// Compile-time check
var _ domain.Repository = (*ApplicationGormRepository)(nil)
