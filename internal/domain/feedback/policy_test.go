package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winhire/interview-engine/internal/httperr"
)

func intp(v int) *int { return &v }

var tenPoint = NewPolicy(1, 10, []string{"Pending", "StrongHire", "Hire", "Maybe", "NoHire"})

func TestValidateRatings(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		ratings   Ratings
		wantField string
	}{
		{"all empty", tenPoint, Ratings{}, ""},
		{"bounds inclusive", tenPoint, Ratings{Technical: intp(1), Overall: intp(10)}, ""},
		{"overall too high", tenPoint, Ratings{Overall: intp(11)}, "overall_rating"},
		{"zero is below bound", tenPoint, Ratings{Communication: intp(0)}, "communication_rating"},
		{"five point scale", NewPolicy(1, 5, nil), Ratings{CulturalFit: intp(6)}, "cultural_fit_rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.ValidateRatings(tt.ratings)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			e, ok := httperr.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, e.Field)
		})
	}
}

func TestValidateComments(t *testing.T) {
	assert.NoError(t, ValidateComments("Strong on fundamentals"))
	assert.True(t, httperr.IsValidation(ValidateComments("")))
	assert.True(t, httperr.IsValidation(ValidateComments("   \n")))
}

func TestNormalizeRecommendation(t *testing.T) {
	got, err := tenPoint.NormalizeRecommendation("")
	require.NoError(t, err)
	assert.Equal(t, RecommendationPending, got)

	got, err = tenPoint.NormalizeRecommendation("stronghire")
	require.NoError(t, err)
	assert.Equal(t, "StrongHire", got)

	_, err = tenPoint.NormalizeRecommendation("Definitely")
	assert.True(t, httperr.IsValidation(err))
}
