package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/winhire/interview-engine/internal/audit"
	avdomain "github.com/winhire/interview-engine/internal/domain/availability"
	fbdomain "github.com/winhire/interview-engine/internal/domain/feedback"
	"github.com/winhire/interview-engine/internal/domain/identity"
	ivdomain "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/httperr"
	infraRepo "github.com/winhire/interview-engine/internal/infra/repository"
	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/middleware"
	"github.com/winhire/interview-engine/internal/models"
	"github.com/winhire/interview-engine/internal/timezone"
	ucAvailability "github.com/winhire/interview-engine/internal/usecase/availability"
	ucFeedback "github.com/winhire/interview-engine/internal/usecase/feedback"
	ucInterview "github.com/winhire/interview-engine/internal/usecase/interview"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==========================
// Stubs
// ==========================

var march10 = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type availabilityStub struct {
	avdomain.Repository
}

func (availabilityStub) ListByPanelistAndDate(_ context.Context, panelistID uint, date time.Time) ([]models.PanelistAvailability, error) {
	if panelistID != 7 || !date.Equal(march10) {
		return nil, nil
	}
	return []models.PanelistAvailability{{
		ID:            1,
		PanelistID:    7,
		AvailableDate: march10,
		StartTime:     "09:00",
		EndTime:       "12:00",
		Status:        "Available",
	}}, nil
}

func (availabilityStub) GetPanelist(_ context.Context, id uint) (*models.User, error) {
	if id != 7 {
		return nil, httperr.NotFound("panelist", id)
	}
	return &models.User{ID: 7}, nil
}

func (availabilityStub) GetByID(_ context.Context, id uint) (*models.PanelistAvailability, error) {
	return nil, httperr.NotFound("availability_window", id)
}

type interviewStub struct {
	ivdomain.Repository
	created []*models.Interview
}

func (s *interviewStub) GetApplication(_ context.Context, id uint) (*models.Application, error) {
	if id != 10 {
		return nil, httperr.NotFound("application", id)
	}
	return &models.Application{ID: 10, Status: "Interview"}, nil
}

func (s *interviewStub) GetPanelist(ctx context.Context, id uint) (*models.User, error) {
	return availabilityStub{}.GetPanelist(ctx, id)
}

func (s *interviewStub) Schedule(_ context.Context, iv *models.Interview) error {
	iv.ID = uint(len(s.created) + 1)
	s.created = append(s.created, iv)
	return nil
}

func (s *interviewStub) GetByID(_ context.Context, id uint) (*models.Interview, error) {
	return nil, httperr.NotFound("interview", id)
}

type feedbackStub struct {
	fbdomain.Repository
}

// ==========================
// Router
// ==========================

func withActor(actor identity.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextActor, actor)
		c.Next()
	}
}

type fixture struct {
	router     *gin.Engine
	interviews *interviewStub
}

func newFixture(t *testing.T, db *gorm.DB, actor identity.Actor) fixture {
	avRepo := availabilityStub{}
	ivRepo := &interviewStub{}
	checker := avdomain.NewChecker(avRepo, time.UTC)
	clock := timezone.NewFixedClock(march10.Add(8 * time.Hour))
	log := logger.NewTestLogger(t)
	sink := audit.Discard{}
	policy := fbdomain.NewPolicy(1, 10, []string{"Pending", "Hire", "NoHire"})

	availability := NewAvailabilityHandler(
		ucAvailability.NewDeclareAvailability(avRepo, sink),
		ucAvailability.NewUpdateAvailability(avRepo, sink),
		ucAvailability.NewDeleteAvailability(avRepo, sink),
		ucAvailability.NewListAvailability(avRepo),
		ucAvailability.NewValidateSlot(avRepo, checker),
		ucAvailability.NewFindAvailablePanelists(avRepo),
	)
	interviews := NewInterviewHandler(
		ucInterview.NewScheduleInterview(ivRepo, checker, sink, log),
		ucInterview.NewUpdateInterview(ivRepo, checker, clock, sink),
		ucInterview.NewUpdateInterviewStatus(ivRepo, clock, sink),
		ucInterview.NewCompleteInterview(ivRepo, clock, sink),
		ucInterview.NewCancelInterview(ivRepo, sink),
		ucInterview.NewRescheduleInterview(ivRepo, checker, sink, log),
		ucInterview.NewDeleteInterview(ivRepo, sink),
		ucInterview.NewQueryInterviews(ivRepo),
	)
	fbRepo := feedbackStub{}
	feedback := NewFeedbackHandler(
		ucFeedback.NewSubmitFeedback(fbRepo, policy, sink),
		ucFeedback.NewUpdateFeedback(fbRepo, policy, sink),
		ucFeedback.NewDeleteFeedback(fbRepo, sink),
		ucFeedback.NewQueryFeedback(fbRepo),
	)

	r := gin.New()
	api := r.Group("/api", withActor(actor))
	api.GET("/availability/validate", availability.Validate)
	api.DELETE("/availability/:id", availability.Delete)
	api.POST("/interviews", interviews.Create)
	api.POST("/interviews/:id/complete", interviews.Complete)
	api.POST("/feedback", feedback.Create)
	if db != nil {
		api.GET("/audit-logs", NewAuditLogsHandler(infraRepo.NewAuditLogGormRepository(db)).List)
		api.GET("/me", NewMeHandler(db).GetMe)
	}

	return fixture{router: r, interviews: ivRepo}
}

var recruiter = identity.Actor{UserID: 3, Role: identity.RoleRecruiter}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Code    string         `json:"error_code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// ==========================
// Interviews
// ==========================

func TestCreateInterview_Scheduled(t *testing.T) {
	f := newFixture(t, nil, recruiter)

	w := do(f.router, http.MethodPost, "/api/interviews", map[string]any{
		"application_id": 10,
		"interviewer_id": 7,
		"scheduled_at":   "2025-03-10T10:00:00Z",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var iv models.Interview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &iv))
	assert.Equal(t, "Scheduled", iv.Status)
	assert.Equal(t, 60, iv.DurationMinutes)
	assert.Len(t, f.interviews.created, 1)
}

func TestCreateInterview_ConflictListsWindows(t *testing.T) {
	f := newFixture(t, nil, recruiter)

	w := do(f.router, http.MethodPost, "/api/interviews", map[string]any{
		"application_id": 10,
		"interviewer_id": 7,
		"scheduled_at":   "2025-03-10T11:30:00Z",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "scheduling_conflict", body.Code)
	assert.Equal(t, "outside declared availability windows on 2025-03-10", body.Message)
	assert.Equal(t, []any{map[string]any{"start": "09:00", "end": "12:00"}}, body.Details["available_windows"])
	assert.Empty(t, f.interviews.created)
}

func TestCreateInterview_MissingFieldIsNamed(t *testing.T) {
	f := newFixture(t, nil, recruiter)

	w := do(f.router, http.MethodPost, "/api/interviews", map[string]any{"application_id": 10})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "scheduled_at", decodeError(t, w).Details["field"])
}

func TestCompleteInterview_NotFound(t *testing.T) {
	f := newFixture(t, nil, recruiter)

	w := do(f.router, http.MethodPost, "/api/interviews/42/complete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "interview_not_found", decodeError(t, w).Code)
}

// ==========================
// Availability
// ==========================

func TestValidateSlot_ReportsConflictInBody(t *testing.T) {
	f := newFixture(t, nil, recruiter)

	w := do(f.router, http.MethodGet, "/api/availability/validate?panelist_id=7&date=2025-03-10&start=11:30&end=12:30", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"valid": false,
		"reason": "outside declared availability windows on 2025-03-10",
		"date": "2025-03-10",
		"available_windows": [{"start": "09:00", "end": "12:00"}]
	}`, w.Body.String())

	w = do(f.router, http.MethodGet, "/api/availability/validate?panelist_id=7&date=2025-03-10&start=10:00&end=11:00", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)

	w = do(f.router, http.MethodGet, "/api/availability/validate?date=2025-03-10&start=10:00&end=11:00", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAvailability_BadID(t *testing.T) {
	f := newFixture(t, nil, recruiter)

	w := do(f.router, http.MethodDelete, "/api/availability/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id", decodeError(t, w).Details["field"])

	w = do(f.router, http.MethodDelete, "/api/availability/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ==========================
// Feedback
// ==========================

func TestSubmitFeedback_EmptyComments(t *testing.T) {
	f := newFixture(t, nil, recruiter)

	w := do(f.router, http.MethodPost, "/api/feedback", map[string]any{
		"interview_id":   3,
		"overall_rating": 8,
		"comments":       "",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "invalid_comments", body.Code)
	assert.Equal(t, "comments", body.Details["field"])
}

// ==========================
// Audit logs
// ==========================

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestAuditLogs(t *testing.T) {
	db, mock := setupMockDB(t)

	w := do(newFixture(t, db, recruiter).router, http.MethodGet, "/api/audit-logs", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" WHERE action = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .* FROM "audit_logs" WHERE action = \$1 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "entity", "entity_id"}).
			AddRow(1, "interview_scheduled", "interview", 5))

	admin := identity.Actor{UserID: 1, Role: identity.RoleAdmin}
	w = do(newFixture(t, db, admin).router, http.MethodGet, "/api/audit-logs?action=interview_scheduled", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), `"limit":50`)
	assert.NoError(t, mock.ExpectationsWereMet())

	w = do(newFixture(t, db, admin).router, http.MethodGet, "/api/audit-logs?from=last-week", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "from", decodeError(t, w).Details["field"])
}

func TestGetMe(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newFixture(t, db, identity.Actor{UserID: 7, Role: identity.RolePanelist}).router

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "department", "is_active"}).
			AddRow(7, "Meera Iyer", "meera@winhire.example", "Panelist", "Platform", true))

	w := do(router, http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"token_role":"Panelist"`)
	assert.Contains(t, w.Body.String(), `"department":"Platform"`)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w = do(router, http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
