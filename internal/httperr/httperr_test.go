package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, err)
	return w
}

func TestRespond_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", Validation("comments", "comments are required"), http.StatusBadRequest, "invalid_comments"},
		{"not found", NotFound("interview", 7), http.StatusNotFound, "interview_not_found"},
		{"state conflict", Conflict("interview_cancelled", "cancelled"), http.StatusConflict, "interview_cancelled"},
		{"scheduling conflict", SchedulingConflict("outside windows", nil), http.StatusBadRequest, "scheduling_conflict"},
		{"forbidden", Forbidden("not yours"), http.StatusForbidden, "forbidden"},
		{"wrapped", fmt.Errorf("usecase: %w", NotFound("feedback", 1)), http.StatusNotFound, "feedback_not_found"},
		{"unknown", errors.New("db exploded"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respond(tt.err)
			assert.Equal(t, tt.wantCode, w.Code)

			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Code)
			assert.NotContains(t, w.Body.String(), "db exploded")
		})
	}
}

func TestRespond_DetailsCarryFieldAndWindows(t *testing.T) {
	windows := []map[string]string{{"start": "09:00", "end": "12:00"}}
	w := respond(SchedulingConflict("outside declared availability windows on 2025-03-10",
		map[string]any{"available_windows": windows}))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	details := body["details"].(map[string]any)
	assert.Len(t, details["available_windows"], 1)

	w = respond(Validation("overall_rating", "out of range"))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "overall_rating", body["details"].(map[string]any)["field"])
}

func TestMatchers(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Conflict("interview_completed", "done"))

	assert.True(t, IsConflict(err))
	assert.True(t, IsCode(err, "interview_completed"))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidation(errors.New("plain")))
}
