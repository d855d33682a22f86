package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	appdomain "github.com/winhire/interview-engine/internal/domain/application"
	"github.com/winhire/interview-engine/internal/dto"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/httpresp"
	"github.com/winhire/interview-engine/internal/middleware"
	ucApplication "github.com/winhire/interview-engine/internal/usecase/application"
	ucFeedback "github.com/winhire/interview-engine/internal/usecase/feedback"
)

type ApplicationHandler struct {
	get          *ucApplication.GetApplication
	updateStatus *ucApplication.UpdateApplicationStatus
	transition   *ucApplication.TransitionApplication
	decide       *ucApplication.DecideApplication
	feedback     *ucFeedback.QueryFeedback
}

func NewApplicationHandler(
	get *ucApplication.GetApplication,
	updateStatus *ucApplication.UpdateApplicationStatus,
	transition *ucApplication.TransitionApplication,
	decide *ucApplication.DecideApplication,
	feedback *ucFeedback.QueryFeedback,
) *ApplicationHandler {
	return &ApplicationHandler{
		get:          get,
		updateStatus: updateStatus,
		transition:   transition,
		decide:       decide,
		feedback:     feedback,
	}
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"application":   app,
		"next_statuses": appdomain.NextStatuses(appdomain.Status(app.Status)),
	})
}

// Rounds returns per-round interviews with their raw feedback, the input
// to a hiring decision.
func (h *ApplicationHandler) Rounds(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := h.feedback.RoundSummary(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.RoundSummary(summary))
}

// UpdateStatus is the permissive path: any status is accepted.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.updateStatus.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, app)
}

func (h *ApplicationHandler) Transition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.transition.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		id,
		appdomain.Status(strings.TrimSpace(req.Status)),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, app)
}

func (h *ApplicationHandler) Decide(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req DecisionRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.decide.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Decision)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, app)
}
