package models

import "time"

type Interview struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ApplicationID uint `gorm:"not null;index" json:"application_id"`
	Round         int  `gorm:"not null" json:"round"`

	Title string `gorm:"size:200" json:"title"`
	Type  string `gorm:"size:50" json:"type"`

	ScheduledAt     time.Time `gorm:"not null;index:idx_interviews_status_scheduled,priority:2" json:"scheduled_at"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`

	MeetingLink *string `gorm:"size:500" json:"meeting_link"`
	Location    *string `gorm:"size:200" json:"location"`

	Status string `gorm:"size:20;not null;index:idx_interviews_status_scheduled,priority:1" json:"status"`

	InterviewerID *uint   `gorm:"index" json:"interviewer_id"`
	Notes         *string `gorm:"type:text" json:"notes"`

	RescheduledFromID *uint `json:"rescheduled_from_id,omitempty"`

	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EndsAt is the scheduled start plus the duration.
func (i Interview) EndsAt() time.Time {
	return i.ScheduledAt.Add(time.Duration(i.DurationMinutes) * time.Minute)
}
