package models

import "time"

// Feedback is one rater's assessment. InterviewID set means
// interview-attached feedback; otherwise it is general application feedback.
type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InterviewID      *uint `gorm:"uniqueIndex:idx_feedback_interview_rater,priority:1" json:"interview_id"`
	ApplicationID    *uint `gorm:"index" json:"application_id"`
	ProvidedByUserID uint  `gorm:"not null;uniqueIndex:idx_feedback_interview_rater,priority:2" json:"provided_by_user_id"`
	Round            *int  `json:"round"`

	TechnicalRating      *int `json:"technical_rating"`
	ProblemSolvingRating *int `json:"problem_solving_rating"`
	CommunicationRating  *int `json:"communication_rating"`
	CulturalFitRating    *int `json:"cultural_fit_rating"`
	OverallRating        *int `json:"overall_rating"`

	Comments       string `gorm:"type:text;not null" json:"comments"`
	Recommendation string `gorm:"size:30;not null" json:"recommendation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
