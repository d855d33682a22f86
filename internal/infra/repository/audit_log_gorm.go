package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/winhire/interview-engine/internal/models"
)

// AuditLogFilter narrows an audit listing. Zero fields are ignored; To is
// exclusive.
type AuditLogFilter struct {
	Action   string
	Entity   string
	EntityID *uint
	From     *time.Time
	To       *time.Time

	Limit  int
	Offset int
}

type AuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

// List returns one page, newest first, and the total matching rows.
func (r *AuditLogGormRepository) List(
	ctx context.Context,
	f AuditLogFilter,
) ([]models.AuditLog, int64, error) {

	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count", "audit_log", 0)
	}

	var logs []models.AuditLog
	err := r.filtered(ctx, f).
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, translate(err, "list", "audit_log", 0)
	}
	return logs, total, nil
}

func (r *AuditLogGormRepository) filtered(ctx context.Context, f AuditLogFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != nil {
		q = q.Where("entity_id = ?", *f.EntityID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}
	return q
}
