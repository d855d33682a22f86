package feedback

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winhire/interview-engine/internal/audit"
	domain "github.com/winhire/interview-engine/internal/domain/feedback"
	"github.com/winhire/interview-engine/internal/domain/identity"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

// ==========================
// Fake repository
// ==========================

type fakeRepo struct {
	mu         sync.Mutex
	nextID     uint
	feedback   map[uint]*models.Feedback
	interviews map[uint]models.Interview
	apps       map[uint]models.Application
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		feedback: map[uint]*models.Feedback{},
		interviews: map[uint]models.Interview{
			3: {ID: 3, ApplicationID: 10, Round: 1, Status: "Completed"},
			4: {ID: 4, ApplicationID: 10, Round: 2, Status: "Scheduled"},
			5: {ID: 5, ApplicationID: 10, Round: 1, Status: "Cancelled"},
		},
		apps: map[uint]models.Application{10: {ID: 10, Status: "Interview"}},
	}
}

func (r *fakeRepo) Upsert(_ context.Context, fb *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.feedback {
		if existing.InterviewID != nil && *existing.InterviewID == *fb.InterviewID &&
			existing.ProvidedByUserID == fb.ProvidedByUserID {
			fb.ID = id
			fb.CreatedAt = existing.CreatedAt
			cp := *fb
			r.feedback[id] = &cp
			return nil
		}
	}
	r.nextID++
	fb.ID = r.nextID
	cp := *fb
	r.feedback[fb.ID] = &cp
	return nil
}

func (r *fakeRepo) Create(_ context.Context, fb *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	fb.ID = r.nextID
	cp := *fb
	r.feedback[fb.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fb, ok := r.feedback[id]
	if !ok {
		return nil, httperr.NotFound("feedback", id)
	}
	cp := *fb
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, fb *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *fb
	r.feedback[fb.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.feedback[id]; !ok {
		return httperr.NotFound("feedback", id)
	}
	delete(r.feedback, id)
	return nil
}

func (r *fakeRepo) where(keep func(models.Feedback) bool) []models.Feedback {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Feedback
	for id := uint(1); id <= r.nextID; id++ {
		if fb, ok := r.feedback[id]; ok && keep(*fb) {
			out = append(out, *fb)
		}
	}
	return out
}

func (r *fakeRepo) ListByInterview(_ context.Context, interviewID uint) ([]models.Feedback, error) {
	return r.where(func(fb models.Feedback) bool {
		return fb.InterviewID != nil && *fb.InterviewID == interviewID
	}), nil
}

func (r *fakeRepo) ListByApplication(_ context.Context, applicationID uint) ([]models.Feedback, error) {
	return r.where(func(fb models.Feedback) bool {
		if fb.ApplicationID != nil && *fb.ApplicationID == applicationID {
			return true
		}
		return fb.InterviewID != nil && r.interviews[*fb.InterviewID].ApplicationID == applicationID
	}), nil
}

func (r *fakeRepo) GetInterview(_ context.Context, id uint) (*models.Interview, error) {
	iv, ok := r.interviews[id]
	if !ok {
		return nil, httperr.NotFound("interview", id)
	}
	return &iv, nil
}

func (r *fakeRepo) GetApplication(_ context.Context, id uint) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, httperr.NotFound("application", id)
	}
	return &app, nil
}

func (r *fakeRepo) ListInterviewsByApplication(_ context.Context, applicationID uint) ([]models.Interview, error) {
	var out []models.Interview
	for id := uint(1); id <= 10; id++ {
		if iv, ok := r.interviews[id]; ok && iv.ApplicationID == applicationID {
			out = append(out, iv)
		}
	}
	return out, nil
}

var policy = domain.NewPolicy(1, 10, []string{"Pending", "StrongHire", "Hire", "Maybe", "NoHire"})

func rater(id uint) identity.Actor {
	return identity.Actor{UserID: id, Role: identity.RolePanelist}
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

func submit(t *testing.T, repo *fakeRepo, in SubmitFeedbackInput) *models.Feedback {
	t.Helper()
	fb, err := NewSubmitFeedback(repo, policy, audit.Discard{}).Execute(context.Background(), in)
	require.NoError(t, err)
	return fb
}

// ==========================
// Submit
// ==========================

func TestSubmit_TwoRatersBothStored(t *testing.T) {
	repo := newFakeRepo()

	submit(t, repo, SubmitFeedbackInput{
		Actor:          rater(21),
		InterviewID:    uintPtr(3),
		Ratings:        domain.Ratings{Overall: intPtr(8)},
		Comments:       "Strong system design",
		Recommendation: "hire",
	})
	submit(t, repo, SubmitFeedbackInput{
		Actor:          rater(22),
		InterviewID:    uintPtr(3),
		Ratings:        domain.Ratings{Overall: intPtr(4)},
		Comments:       "Struggled with concurrency",
		Recommendation: "NoHire",
	})

	got, err := NewQueryFeedback(repo).ByInterview(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 8, *got[0].OverallRating)
	assert.Equal(t, "Hire", got[0].Recommendation)
	assert.Equal(t, 4, *got[1].OverallRating)
	assert.Equal(t, "NoHire", got[1].Recommendation)
}

func TestSubmit_InheritsApplicationAndRound(t *testing.T) {
	fb := submit(t, newFakeRepo(), SubmitFeedbackInput{
		Actor:       rater(21),
		InterviewID: uintPtr(4),
		Comments:    "ok",
	})

	assert.Equal(t, uint(10), *fb.ApplicationID)
	assert.Equal(t, 2, *fb.Round)
	assert.Equal(t, uint(21), fb.ProvidedByUserID)
	assert.Equal(t, "Pending", fb.Recommendation)
}

func TestSubmit_SameRaterReplacesEarlierSubmission(t *testing.T) {
	repo := newFakeRepo()
	first := submit(t, repo, SubmitFeedbackInput{Actor: rater(21), InterviewID: uintPtr(3), Comments: "draft", Ratings: domain.Ratings{Overall: intPtr(5)}})
	second := submit(t, repo, SubmitFeedbackInput{Actor: rater(21), InterviewID: uintPtr(3), Comments: "final", Ratings: domain.Ratings{Overall: intPtr(7)}})

	assert.Equal(t, first.ID, second.ID)
	got, _ := NewQueryFeedback(repo).ByInterview(context.Background(), 3)
	require.Len(t, got, 1)
	assert.Equal(t, "final", got[0].Comments)
}

func TestSubmit_GeneralFeedbackAppends(t *testing.T) {
	repo := newFakeRepo()
	in := SubmitFeedbackInput{Actor: rater(21), ApplicationID: uintPtr(10), Comments: "great portfolio"}
	submit(t, repo, in)
	submit(t, repo, in)

	got, err := NewQueryFeedback(repo).ByApplication(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Nil(t, got[0].InterviewID)
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name      string
		in        SubmitFeedbackInput
		wantField string
	}{
		{"empty comments", SubmitFeedbackInput{InterviewID: uintPtr(3), Comments: "  "}, "comments"},
		{"rating above bound", SubmitFeedbackInput{InterviewID: uintPtr(3), Comments: "x", Ratings: domain.Ratings{Technical: intPtr(11)}}, "technical_rating"},
		{"rating below bound", SubmitFeedbackInput{InterviewID: uintPtr(3), Comments: "x", Ratings: domain.Ratings{Overall: intPtr(0)}}, "overall_rating"},
		{"unknown recommendation", SubmitFeedbackInput{InterviewID: uintPtr(3), Comments: "x", Recommendation: "Definitely"}, "recommendation"},
		{"no target", SubmitFeedbackInput{Comments: "x"}, "interview_id"},
		{"mismatched application", SubmitFeedbackInput{InterviewID: uintPtr(3), ApplicationID: uintPtr(11), Comments: "x"}, "application_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			tt.in.Actor = rater(21)
			_, err := NewSubmitFeedback(repo, policy, audit.Discard{}).Execute(context.Background(), tt.in)

			e, ok := httperr.As(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, httperr.KindValidation, e.Kind)
			assert.Equal(t, tt.wantField, e.Field)
			assert.Empty(t, repo.feedback)
		})
	}
}

func TestSubmit_UnknownTargets(t *testing.T) {
	uc := NewSubmitFeedback(newFakeRepo(), policy, audit.Discard{})

	_, err := uc.Execute(context.Background(), SubmitFeedbackInput{Actor: rater(21), InterviewID: uintPtr(99), Comments: "x"})
	assert.True(t, httperr.IsNotFound(err))

	_, err = uc.Execute(context.Background(), SubmitFeedbackInput{Actor: rater(21), ApplicationID: uintPtr(99), Comments: "x"})
	assert.True(t, httperr.IsNotFound(err))
}

// ==========================
// Update / Delete
// ==========================

func TestUpdate_MergesAndValidates(t *testing.T) {
	repo := newFakeRepo()
	fb := submit(t, repo, SubmitFeedbackInput{
		Actor:       rater(21),
		InterviewID: uintPtr(3),
		Comments:    "solid",
		Ratings:     domain.Ratings{Technical: intPtr(6), Overall: intPtr(7)},
	})
	uc := NewUpdateFeedback(repo, policy, audit.Discard{})

	rec := "StrongHire"
	got, err := uc.Execute(context.Background(), UpdateFeedbackInput{
		Actor:          rater(21),
		ID:             fb.ID,
		Ratings:        domain.Ratings{Overall: intPtr(9)},
		Recommendation: &rec,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, *got.TechnicalRating)
	assert.Equal(t, 9, *got.OverallRating)
	assert.Equal(t, "StrongHire", got.Recommendation)

	blank := ""
	_, err = uc.Execute(context.Background(), UpdateFeedbackInput{Actor: rater(21), ID: fb.ID, Comments: &blank})
	assert.True(t, httperr.IsValidation(err))

	_, err = uc.Execute(context.Background(), UpdateFeedbackInput{Actor: rater(22), ID: fb.ID, Ratings: domain.Ratings{Overall: intPtr(1)}})
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestDelete_RaterOrAdmin(t *testing.T) {
	repo := newFakeRepo()
	fb := submit(t, repo, SubmitFeedbackInput{Actor: rater(21), InterviewID: uintPtr(3), Comments: "x"})
	uc := NewDeleteFeedback(repo, audit.Discard{})

	assert.True(t, httperr.IsKind(uc.Execute(context.Background(), rater(22), fb.ID), httperr.KindForbidden))
	assert.NoError(t, uc.Execute(context.Background(), identity.Actor{UserID: 1, Role: identity.RoleAdmin}, fb.ID))
	assert.True(t, httperr.IsNotFound(uc.Execute(context.Background(), rater(21), fb.ID)))
}

// ==========================
// Round summary
// ==========================

func TestRoundSummary(t *testing.T) {
	repo := newFakeRepo()
	submit(t, repo, SubmitFeedbackInput{Actor: rater(21), InterviewID: uintPtr(3), Comments: "r1 a", Recommendation: "Hire"})
	submit(t, repo, SubmitFeedbackInput{Actor: rater(22), InterviewID: uintPtr(3), Comments: "r1 b", Recommendation: "NoHire"})
	submit(t, repo, SubmitFeedbackInput{Actor: rater(23), ApplicationID: uintPtr(10), Comments: "general"})

	s, err := NewQueryFeedback(repo).RoundSummary(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, s.Rounds, 2)
	assert.Equal(t, 1, s.Rounds[0].Round)
	assert.True(t, s.Rounds[0].HasCompleted)
	require.Len(t, s.Rounds[0].Interviews, 2)
	assert.Len(t, s.Rounds[0].Interviews[0].Feedback, 2)
	assert.Empty(t, s.Rounds[0].Interviews[1].Feedback)

	assert.Equal(t, 2, s.Rounds[1].Round)
	assert.False(t, s.Rounds[1].HasCompleted)

	require.Len(t, s.General, 1)
	assert.Equal(t, "general", s.General[0].Comments)

	_, err = NewQueryFeedback(repo).RoundSummary(context.Background(), 99)
	assert.True(t, httperr.IsNotFound(err))
}
