package models

import "time"

type Candidate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone       string `gorm:"size:20" json:"phone"`
	RoleApplied string `gorm:"size:100" json:"role_applied"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
