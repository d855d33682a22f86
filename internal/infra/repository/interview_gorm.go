package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/models"
)

const entityInterview = "interview"

type InterviewGormRepository struct {
	db *gorm.DB
}

func NewInterviewGormRepository(db *gorm.DB) *InterviewGormRepository {
	return &InterviewGormRepository{db: db}
}

// --------------------------------------------------
// Interview
// --------------------------------------------------

// Schedule inserts the interview and raises its application's current
// round in one transaction.
func (r *InterviewGormRepository) Schedule(
	ctx context.Context,
	iv *models.Interview,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(iv).Error; err != nil {
			return err
		}
		return tx.Model(&models.Application{}).
			Where("id = ? AND (current_round IS NULL OR current_round < ?)", iv.ApplicationID, iv.Round).
			Update("current_round", iv.Round).Error
	})
	return translate(err, "schedule", entityInterview, 0)
}

func (r *InterviewGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Interview, error) {

	var iv models.Interview
	if err := r.db.WithContext(ctx).First(&iv, id).Error; err != nil {
		return nil, translate(err, "get", entityInterview, id)
	}
	return &iv, nil
}

func (r *InterviewGormRepository) Update(
	ctx context.Context,
	iv *models.Interview,
) error {
	return translate(r.db.WithContext(ctx).Save(iv).Error, "update", entityInterview, iv.ID)
}

func (r *InterviewGormRepository) Replace(
	ctx context.Context,
	original *models.Interview,
	next *models.Interview,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(original).Error; err != nil {
			return err
		}
		return tx.Create(next).Error
	})
	return translate(err, "reschedule", entityInterview, original.ID)
}

// Delete cascades interview-attached feedback; general application
// feedback has a NULL interview_id and is untouched.
func (r *InterviewGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("interview_id = ?", id).
			Delete(&models.Feedback{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Interview{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err, "delete", entityInterview, id)
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *InterviewGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Interview, error) {

	q := r.db.WithContext(ctx).Model(&models.Interview{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var out []models.Interview
	if err := q.Order("scheduled_at ASC").Find(&out).Error; err != nil {
		return nil, translate(err, "list", entityInterview, 0)
	}
	return out, nil
}

func (r *InterviewGormRepository) ListByApplication(
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

func (r *InterviewGormRepository) ListByInterviewer(
	ctx context.Context,
	interviewerID uint,
) ([]models.Interview, error) {

	var out []models.Interview
	if err := r.db.WithContext(ctx).
		Where("interviewer_id = ?", interviewerID).
		Order("scheduled_at ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err, "list", entityInterview, interviewerID)
	}
	return out, nil
}

// --------------------------------------------------
// Sweeper
// --------------------------------------------------

func (r *InterviewGormRepository) ListElapsedScheduled(
	ctx context.Context,
	now time.Time,
) ([]models.Interview, error) {

	var out []models.Interview
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND scheduled_at + (duration_minutes * INTERVAL '1 minute') < ?",
			string(domain.StatusScheduled),
			now,
		).
		Order("scheduled_at ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err, "scan", entityInterview, 0)
	}
	return out, nil
}

func (r *InterviewGormRepository) CompleteIfScheduled(
	ctx context.Context,
	id uint,
	completedAt time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Interview{}).
		Where("id = ? AND status = ?", id, string(domain.StatusScheduled)).
		Updates(map[string]any{
			"status":       string(domain.StatusCompleted),
			"completed_at": completedAt,
		})
	if res.Error != nil {
		return false, translate(res.Error, "complete", entityInterview, id)
	}
	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Application / Panelist
// --------------------------------------------------

func (r *InterviewGormRepository) GetApplication(
	ctx context.Context,
	id uint,
) (*models.Application, error) {
	return getApplication(ctx, r.db, id)
}

func (r *InterviewGormRepository) GetPanelist(
	ctx context.Context,
	id uint,
) (*models.User, error) {
	return getUser(ctx, r.db, id)
}

// Compile-time check
var _ domain.Repository = (*InterviewGormRepository)(nil)
