package dto

import (
	"github.com/winhire/interview-engine/internal/models"
	ucFeedback "github.com/winhire/interview-engine/internal/usecase/feedback"
)

type InterviewFeedbackDTO struct {
	Interview models.Interview  `json:"interview"`
	Feedback  []models.Feedback `json:"feedback"`
}

type RoundDTO struct {
	Round        int                    `json:"round"`
	HasCompleted bool                   `json:"has_completed"`
	Interviews   []InterviewFeedbackDTO `json:"interviews"`
}

type RoundSummaryDTO struct {
	ApplicationID   uint              `json:"application_id"`
	Status          string            `json:"status"`
	CurrentRound    *int              `json:"current_round"`
	Rounds          []RoundDTO        `json:"rounds"`
	GeneralFeedback []models.Feedback `json:"general_feedback"`
}

func RoundSummary(s *ucFeedback.RoundSummary) RoundSummaryDTO {
	out := RoundSummaryDTO{
		ApplicationID:   s.ApplicationID,
		Status:          s.Status,
		CurrentRound:    s.CurrentRound,
		Rounds:          make([]RoundDTO, 0, len(s.Rounds)),
		GeneralFeedback: s.General,
	}
	for _, r := range s.Rounds {
		round := RoundDTO{
			Round:        r.Round,
			HasCompleted: r.HasCompleted,
			Interviews:   make([]InterviewFeedbackDTO, 0, len(r.Interviews)),
		}
		for _, iv := range r.Interviews {
			round.Interviews = append(round.Interviews, InterviewFeedbackDTO{
				Interview: iv.Interview,
				Feedback:  iv.Feedback,
			})
		}
		out.Rounds = append(out.Rounds, round)
	}
	return out
}
