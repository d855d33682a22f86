package models

import "time"

// PanelistAvailability is a declared window on one calendar day.
// StartTime/EndTime are "15:04" offsets from the start of AvailableDate.
type PanelistAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PanelistID uint  `gorm:"not null;index:idx_availability_panelist_date,priority:1" json:"panelist_id"`
	Panelist   *User `gorm:"foreignKey:PanelistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AvailableDate time.Time `gorm:"type:date;not null;index:idx_availability_panelist_date,priority:2" json:"available_date"`
	StartTime     string    `gorm:"size:5;not null" json:"start_time"`
	EndTime       string    `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;not null" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PanelistAvailability) TableName() string {
	return "panelist_availabilities"
}
