package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/winhire/interview-engine/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to  Status
		completed bool
		wantCode  string
	}{
		{StatusApplied, StatusScreening, false, ""},
		{StatusScreening, StatusInterview, false, ""},
		{StatusInterview, StatusOffered, false, ""},
		{StatusInterview, StatusRejected, false, ""},
		{StatusOffered, StatusAccepted, false, ""},
		{StatusInterview, StatusSelected, true, ""},
		{StatusInterview, StatusOnHold, true, ""},
		{StatusOnHold, StatusSelected, true, ""},
		{StatusSelected, StatusOffered, false, ""},

		{StatusInterview, StatusSelected, false, "no_completed_interview"},
		{StatusInterview, StatusOnHold, false, "no_completed_interview"},
		{StatusApplied, StatusOffered, false, "invalid_transition"},
		{StatusAccepted, StatusRejected, false, "invalid_transition"},
		{StatusRejected, StatusApplied, true, "invalid_transition"},
		{Status("Ghosted"), StatusScreening, false, "invalid_transition"},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, tt.completed)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsConflict(err))
			assert.True(t, httperr.IsCode(err, tt.wantCode))
		})
	}
}

func TestDecisionTarget(t *testing.T) {
	d, err := ParseDecision("select")
	assert.NoError(t, err)
	assert.Equal(t, StatusSelected, d.Target())

	d, _ = ParseDecision("Hold")
	assert.Equal(t, StatusOnHold, d.Target())

	d, _ = ParseDecision("REJECT")
	assert.Equal(t, StatusRejected, d.Target())

	_, err = ParseDecision("Maybe")
	assert.True(t, httperr.IsValidation(err))
}

func TestEntersSelected(t *testing.T) {
	assert.True(t, EntersSelected("Interview", "Selected"))
	assert.False(t, EntersSelected("Selected", "Selected"))
	assert.False(t, EntersSelected("Interview", "Offered"))
}

func TestNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]Status{StatusOffered, StatusRejected, StatusSelected, StatusOnHold},
		NextStatuses(StatusInterview))
	assert.Empty(t, NextStatuses(StatusAccepted))
}
