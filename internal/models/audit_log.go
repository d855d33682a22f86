package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint  `json:"user_id"`
	Action string `gorm:"size:50;not null;index" json:"action"`

	Entity   string `gorm:"size:50;index:idx_audit_entity,priority:1" json:"entity"`
	EntityID *uint  `gorm:"index:idx_audit_entity,priority:2" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
