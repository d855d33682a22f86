package models

import "time"

type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CandidateID uint       `gorm:"not null;index" json:"candidate_id"`
	Candidate   *Candidate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"candidate,omitempty"`

	JobID uint `gorm:"not null;index" json:"job_id"`
	Job   *Job `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"job,omitempty"`

	Status       string `gorm:"size:30;not null" json:"status"`
	CurrentRound *int   `json:"current_round"`

	AppliedDate time.Time  `json:"applied_date"`
	LastUpdated *time.Time `json:"last_updated"`

	RecruiterID *uint   `json:"recruiter_id"`
	ResumeURL   *string `gorm:"size:500" json:"resume_url"`
	CoverLetter *string `gorm:"type:text" json:"cover_letter"`
	Notes       *string `gorm:"type:text" json:"notes"`
}
