package handlers

import (
	"github.com/gin-gonic/gin"

	fbdomain "github.com/winhire/interview-engine/internal/domain/feedback"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/httpresp"
	"github.com/winhire/interview-engine/internal/middleware"
	ucFeedback "github.com/winhire/interview-engine/internal/usecase/feedback"
)

type FeedbackHandler struct {
	submit *ucFeedback.SubmitFeedback
	update *ucFeedback.UpdateFeedback
	remove *ucFeedback.DeleteFeedback
	query  *ucFeedback.QueryFeedback
}

func NewFeedbackHandler(
	submit *ucFeedback.SubmitFeedback,
	update *ucFeedback.UpdateFeedback,
	remove *ucFeedback.DeleteFeedback,
	query *ucFeedback.QueryFeedback,
) *FeedbackHandler {
	return &FeedbackHandler{
		submit: submit,
		update: update,
		remove: remove,
		query:  query,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RatingsRequest struct {
	TechnicalRating      *int `json:"technical_rating"`
	ProblemSolvingRating *int `json:"problem_solving_rating"`
	CommunicationRating  *int `json:"communication_rating"`
	CulturalFitRating    *int `json:"cultural_fit_rating"`
	OverallRating        *int `json:"overall_rating"`
}

func (r RatingsRequest) ratings() fbdomain.Ratings {
	return fbdomain.Ratings{
		Technical:      r.TechnicalRating,
		ProblemSolving: r.ProblemSolvingRating,
		Communication:  r.CommunicationRating,
		CulturalFit:    r.CulturalFitRating,
		Overall:        r.OverallRating,
	}
}

// SubmitFeedbackRequest has no rater field; the rater is the caller.
type SubmitFeedbackRequest struct {
	InterviewID   *uint `json:"interview_id"`
	ApplicationID *uint `json:"application_id"`
	RatingsRequest
	Comments       string `json:"comments"`
	Recommendation string `json:"recommendation"`
}

type UpdateFeedbackRequest struct {
	RatingsRequest
	Comments       *string `json:"comments"`
	Recommendation *string `json:"recommendation"`
}

// ======================================================
// WRITE
// ======================================================

func (h *FeedbackHandler) Create(c *gin.Context) {
	var req SubmitFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	fb, err := h.submit.Execute(c.Request.Context(), ucFeedback.SubmitFeedbackInput{
		Actor:          middleware.ActorFrom(c),
		InterviewID:    req.InterviewID,
		ApplicationID:  req.ApplicationID,
		Ratings:        req.ratings(),
		Comments:       req.Comments,
		Recommendation: req.Recommendation,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, fb)
}

func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	fb, err := h.update.Execute(c.Request.Context(), ucFeedback.UpdateFeedbackInput{
		Actor:          middleware.ActorFrom(c),
		ID:             id,
		Ratings:        req.ratings(),
		Comments:       req.Comments,
		Recommendation: req.Recommendation,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, fb)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// READ
// ======================================================

func (h *FeedbackHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	fb, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, fb)
}

func (h *FeedbackHandler) ListByInterview(c *gin.Context) {
	interviewID, ok := pathID(c, "interviewId")
	if !ok {
		return
	}

	fbs, err := h.query.ByInterview(c.Request.Context(), interviewID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, fbs)
}

func (h *FeedbackHandler) ListByApplication(c *gin.Context) {
	appID, ok := pathID(c, "applicationId")
	if !ok {
		return
	}

	fbs, err := h.query.ByApplication(c.Request.Context(), appID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, fbs)
}
