package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/winhire/interview-engine/internal/domain/feedback"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

const entityFeedback = "feedback"

// Columns a resubmission by the same rater replaces.
var feedbackUpsertColumns = []string{
	"application_id",
	"round",
	"technical_rating",
	"problem_solving_rating",
	"communication_rating",
	"cultural_fit_rating",
	"overall_rating",
	"comments",
	"recommendation",
	"updated_at",
}

type FeedbackGormRepository struct {
	db *gorm.DB
}

func NewFeedbackGormRepository(db *gorm.DB) *FeedbackGormRepository {
	return &FeedbackGormRepository{db: db}
}

// --------------------------------------------------
// Feedback
// --------------------------------------------------

func (r *FeedbackGormRepository) Upsert(
	ctx context.Context,
	fb *models.Feedback,
) error {

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "interview_id"},
				{Name: "provided_by_user_id"},
			},
			DoUpdates: clause.AssignmentColumns(feedbackUpsertColumns),
		}).
		Create(fb).Error
	if err != nil {
		return translate(err, "upsert", entityFeedback, 0)
	}

	// created_at stays with the first submission; reload it.
	return translate(r.db.WithContext(ctx).First(fb, fb.ID).Error, "get", entityFeedback, fb.ID)
}

func (r *FeedbackGormRepository) Create(
	ctx context.Context,
	fb *models.Feedback,
) error {
	return translate(r.db.WithContext(ctx).Create(fb).Error, "create", entityFeedback, 0)
}

func (r *FeedbackGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Feedback, error) {

	var fb models.Feedback
	if err := r.db.WithContext(ctx).First(&fb, id).Error; err != nil {
		return nil, translate(err, "get", entityFeedback, id)
	}
	return &fb, nil
}

func (r *FeedbackGormRepository) Update(
	ctx context.Context,
	fb *models.Feedback,
) error {
	return translate(r.db.WithContext(ctx).Save(fb).Error, "update", entityFeedback, fb.ID)
}

func (r *FeedbackGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Feedback{}, id)
	if res.Error != nil {
		return translate(res.Error, "delete", entityFeedback, id)
	}
	if res.RowsAffected == 0 {
		return httperr.NotFound(entityFeedback, id)
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *FeedbackGormRepository) ListByInterview(
	ctx context.Context,
	interviewID uint,
) ([]models.Feedback, error) {

	var out []models.Feedback
	if err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err, "list", entityFeedback, interviewID)
	}
	return out, nil
}

func (r *FeedbackGormRepository) ListByApplication(
	ctx context.Context,
	applicationID uint,
) ([]models.Feedback, error) {

	interviews := r.db.
		Model(&models.Interview{}).
		Select("id").
		Where("application_id = ?", applicationID)

	var out []models.Feedback
	if err := r.db.WithContext(ctx).
		Where("application_id = ? OR interview_id IN (?)", applicationID, interviews).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err, "list", entityFeedback, applicationID)
	}
	return out, nil
}

// --------------------------------------------------
// Interview / Application
// --------------------------------------------------

func (r *FeedbackGormRepository) GetInterview(
	ctx context.Context,
	id uint,
) (*models.Interview, error) {

	var iv models.Interview
	if err := r.db.WithContext(ctx).First(&iv, id).Error; err != nil {
		return nil, translate(err, "get", entityInterview, id)
	}
	return &iv, nil
}

func (r *FeedbackGormRepository) GetApplication(
	ctx context.Context,
	id uint,
) (*models.Application, error) {
	return getApplication(ctx, r.db, id)
}

func (r *FeedbackGormRepository) ListInterviewsByApplication(
	ctx context.Context,
	applicationID uint,
) ([]models.Interview, error) {

	var out []models.Interview
	if err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("round ASC, scheduled_at ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err, "list", entityInterview, applicationID)
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*FeedbackGormRepository)(nil)
