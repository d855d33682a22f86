package feedback

import (
	"fmt"
	"strings"

	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

const RecommendationPending = "Pending"

// Ratings holds the five optional scores. A nil score was not given.
type Ratings struct {
	Technical      *int
	ProblemSolving *int
	Communication  *int
	CulturalFit    *int
	Overall        *int
}

// Policy is the configured rating bound and recommendation label set.
type Policy struct {
	RatingMin       int
	RatingMax       int
	Recommendations []string
}

func NewPolicy(min, max int, labels []string) Policy {
	return Policy{RatingMin: min, RatingMax: max, Recommendations: labels}
}

// ===============================
// Validations
// ===============================

func (p Policy) ValidateRatings(r Ratings) error {
	fields := []struct {
		name  string
		value *int
	}{
		{"technical_rating", r.Technical},
		{"problem_solving_rating", r.ProblemSolving},
		{"communication_rating", r.Communication},
		{"cultural_fit_rating", r.CulturalFit},
		{"overall_rating", r.Overall},
	}

	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if *f.value < p.RatingMin || *f.value > p.RatingMax {
			return httperr.Validation(f.name,
				fmt.Sprintf("%s must be between %d and %d", f.name, p.RatingMin, p.RatingMax))
		}
	}
	return nil
}

func ValidateComments(comments string) error {
	if strings.TrimSpace(comments) == "" {
		return httperr.Validation("comments", "comments are required")
	}
	return nil
}

// NormalizeRecommendation maps input onto the configured label, matching
// case-insensitively. Empty input means Pending.
func (p Policy) NormalizeRecommendation(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RecommendationPending, nil
	}
	for _, label := range p.Recommendations {
		if strings.EqualFold(s, label) {
			return label, nil
		}
	}
	return "", httperr.Validation("recommendation",
		fmt.Sprintf("recommendation must be one of %s", strings.Join(p.Recommendations, ", ")))
}

// ===============================
// Mapping
// ===============================

func ApplyRatings(fb *models.Feedback, r Ratings) {
	fb.TechnicalRating = r.Technical
	fb.ProblemSolvingRating = r.ProblemSolving
	fb.CommunicationRating = r.Communication
	fb.CulturalFitRating = r.CulturalFit
	fb.OverallRating = r.Overall
}

func RatingsOf(fb models.Feedback) Ratings {
	return Ratings{
		Technical:      fb.TechnicalRating,
		ProblemSolving: fb.ProblemSolvingRating,
		Communication:  fb.CommunicationRating,
		CulturalFit:    fb.CulturalFitRating,
		Overall:        fb.OverallRating,
	}
}
