package models

import "time"

type Job struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title      string `gorm:"size:200;not null" json:"title"`
	Department string `gorm:"size:100" json:"department"`
	Location   string `gorm:"size:100" json:"location"`
	IsActive   bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
