package models

import "time"

// User is a staff member: recruiter, hiring manager, panelist or admin.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Role       string `gorm:"size:30;not null" json:"role"`
	Department string `gorm:"size:100" json:"department"`
	IsActive   bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
