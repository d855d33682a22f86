package handlers

import (
	"github.com/gin-gonic/gin"

	ivdomain "github.com/winhire/interview-engine/internal/domain/interview"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/httpresp"
	"github.com/winhire/interview-engine/internal/middleware"
	ucInterview "github.com/winhire/interview-engine/internal/usecase/interview"
)

// ======================================================
// HANDLER
// ======================================================

type InterviewHandler struct {
	schedule     *ucInterview.ScheduleInterview
	update       *ucInterview.UpdateInterview
	updateStatus *ucInterview.UpdateInterviewStatus
	complete     *ucInterview.CompleteInterview
	cancel       *ucInterview.CancelInterview
	reschedule   *ucInterview.RescheduleInterview
	remove       *ucInterview.DeleteInterview
	query        *ucInterview.QueryInterviews
}

func NewInterviewHandler(
	schedule *ucInterview.ScheduleInterview,
	update *ucInterview.UpdateInterview,
	updateStatus *ucInterview.UpdateInterviewStatus,
	complete *ucInterview.CompleteInterview,
	cancel *ucInterview.CancelInterview,
	reschedule *ucInterview.RescheduleInterview,
	remove *ucInterview.DeleteInterview,
	query *ucInterview.QueryInterviews,
) *InterviewHandler {
	return &InterviewHandler{
		schedule:     schedule,
		update:       update,
		updateStatus: updateStatus,
		complete:     complete,
		cancel:       cancel,
		reschedule:   reschedule,
		remove:       remove,
		query:        query,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleInterviewRequest struct {
	ApplicationID   uint    `json:"application_id" binding:"required"`
	Round           *int    `json:"round"`
	InterviewerID   *uint   `json:"interviewer_id"`
	ScheduledAt     string  `json:"scheduled_at" binding:"required"`
	DurationMinutes *int    `json:"duration_minutes"`
	Title           string  `json:"title"`
	Type            string  `json:"type"`
	MeetingLink     *string `json:"meeting_link"`
	Location        *string `json:"location"`
	Notes           *string `json:"notes"`
	Force           bool    `json:"force"`
}

type UpdateInterviewRequest struct {
	Title           *string `json:"title"`
	Type            *string `json:"type"`
	Round           *int    `json:"round"`
	ScheduledAt     *string `json:"scheduled_at"`
	DurationMinutes *int    `json:"duration_minutes"`
	InterviewerID   *uint   `json:"interviewer_id"`
	MeetingLink     *string `json:"meeting_link"`
	Location        *string `json:"location"`
	Notes           *string `json:"notes"`
	Status          *string `json:"status"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleInterviewRequest struct {
	ScheduledAt     string `json:"scheduled_at" binding:"required"`
	DurationMinutes *int   `json:"duration_minutes"`
	Force           bool   `json:"force"`
}

// ======================================================
// WRITE
// ======================================================

func (h *InterviewHandler) Create(c *gin.Context) {
	var req ScheduleInterviewRequest
	if !bindJSON(c, &req) {
		return
	}

	iv, err := h.schedule.Execute(c.Request.Context(), ucInterview.ScheduleInterviewInput{
		Actor:           middleware.ActorFrom(c),
		ApplicationID:   req.ApplicationID,
		Round:           req.Round,
		InterviewerID:   req.InterviewerID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Title:           req.Title,
		Type:            req.Type,
		MeetingLink:     req.MeetingLink,
		Location:        req.Location,
		Notes:           req.Notes,
		Force:           req.Force,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, iv)
}

func (h *InterviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateInterviewRequest
	if !bindJSON(c, &req) {
		return
	}

	iv, err := h.update.Execute(c.Request.Context(), ucInterview.UpdateInterviewInput{
		Actor:           middleware.ActorFrom(c),
		ID:              id,
		Title:           req.Title,
		Type:            req.Type,
		Round:           req.Round,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		InterviewerID:   req.InterviewerID,
		MeetingLink:     req.MeetingLink,
		Location:        req.Location,
		Notes:           req.Notes,
		Status:          req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, iv)
}

func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	iv, err := h.updateStatus.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, iv)
}

func (h *InterviewHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	iv, err := h.complete.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, iv)
}

func (h *InterviewHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	iv, err := h.cancel.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, iv)
}

func (h *InterviewHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RescheduleInterviewRequest
	if !bindJSON(c, &req) {
		return
	}

	next, err := h.reschedule.Execute(c.Request.Context(), ucInterview.RescheduleInterviewInput{
		Actor:           middleware.ActorFrom(c),
		ID:              id,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Force:           req.Force,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, next)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
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

func (h *InterviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	iv, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, iv)
}

// List accepts optional ?status= and ?type= filters.
func (h *InterviewHandler) List(c *gin.Context) {
	ivs, err := h.query.List(c.Request.Context(), ivdomain.ListFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, ivs)
}

func (h *InterviewHandler) ListByApplication(c *gin.Context) {
	appID, ok := pathID(c, "applicationId")
	if !ok {
		return
	}

	ivs, err := h.query.ByApplication(c.Request.Context(), appID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, ivs)
}

func (h *InterviewHandler) ListByInterviewer(c *gin.Context) {
	interviewerID, ok := pathID(c, "interviewerId")
	if !ok {
		return
	}

	ivs, err := h.query.ByInterviewer(c.Request.Context(), interviewerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, ivs)
}
