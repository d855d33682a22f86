package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/winhire/interview-engine/internal/domain/availability"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

const entityWindow = "availability_window"

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Window
// --------------------------------------------------

func (r *AvailabilityGormRepository) Create(
	ctx context.Context,
	w *models.PanelistAvailability,
) error {
	return translate(r.db.WithContext(ctx).Create(w).Error, "create", entityWindow, 0)
}

func (r *AvailabilityGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.PanelistAvailability, error) {

	var w models.PanelistAvailability
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		return nil, translate(err, "get", entityWindow, id)
	}
	return &w, nil
}

func (r *AvailabilityGormRepository) Update(
	ctx context.Context,
	w *models.PanelistAvailability,
) error {
	return translate(r.db.WithContext(ctx).Save(w).Error, "update", entityWindow, w.ID)
}

func (r *AvailabilityGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.PanelistAvailability{}, id)
	if res.Error != nil {
		return translate(res.Error, "delete", entityWindow, id)
	}
	if res.RowsAffected == 0 {
		return httperr.NotFound(entityWindow, id)
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AvailabilityGormRepository) ListByPanelist(
	ctx context.Context,
	panelistID uint,
) ([]models.PanelistAvailability, error) {

	var out []models.PanelistAvailability
	if err := r.db.WithContext(ctx).
		Where("panelist_id = ?", panelistID).
		Order("available_date ASC, start_time ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err, "list", entityWindow, panelistID)
	}
	return out, nil
}

func (r *AvailabilityGormRepository) ListAll(
	ctx context.Context,
) ([]models.PanelistAvailability, error) {

	var out []models.PanelistAvailability
	if err := r.db.WithContext(ctx).
		Order("available_date ASC, panelist_id ASC, start_time ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err, "list", entityWindow, 0)
	}
	return out, nil
}

// Dates are compared as "YYYY-MM-DD" literals so the session time zone
// never shifts the calendar day.
func (r *AvailabilityGormRepository) ListByPanelistAndDate(
	ctx context.Context,
	panelistID uint,
	date time.Time,
) ([]models.PanelistAvailability, error) {

	var out []models.PanelistAvailability
	if err := r.db.WithContext(ctx).
		Where("panelist_id = ? AND available_date = ?", panelistID, domain.FormatDate(date)).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err, "list", entityWindow, panelistID)
	}
	return out, nil
}

func (r *AvailabilityGormRepository) ListAvailableOnDate(
	ctx context.Context,
	date time.Time,
) ([]domain.PanelistWindow, error) {

	var rows []models.PanelistAvailability
	if err := r.db.WithContext(ctx).
		Preload("Panelist").
		Where("available_date = ? AND status = ?", domain.FormatDate(date), string(domain.StatusAvailable)).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, translate(err, "list", entityWindow, 0)
	}

	out := make([]domain.PanelistWindow, 0, len(rows))
	for _, w := range rows {
		if w.Panelist == nil {
			continue
		}
		out = append(out, domain.PanelistWindow{Window: w, Panelist: *w.Panelist})
	}
	return out, nil
}

// --------------------------------------------------
// Panelist
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetPanelist(
	ctx context.Context,
	id uint,
) (*models.User, error) {
	return getUser(ctx, r.db, id)
}

func getUser(ctx context.Context, db *gorm.DB, id uint) (*models.User, error) {
	var u models.User
	if err := db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "get", "panelist", id)
	}
	return &u, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
