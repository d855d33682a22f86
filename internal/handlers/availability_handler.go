package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/winhire/interview-engine/internal/dto"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/httpresp"
	"github.com/winhire/interview-engine/internal/middleware"
	ucAvailability "github.com/winhire/interview-engine/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	declare  *ucAvailability.DeclareAvailability
	update   *ucAvailability.UpdateAvailability
	remove   *ucAvailability.DeleteAvailability
	list     *ucAvailability.ListAvailability
	validate *ucAvailability.ValidateSlot
	find     *ucAvailability.FindAvailablePanelists
}

func NewAvailabilityHandler(
	declare *ucAvailability.DeclareAvailability,
	update *ucAvailability.UpdateAvailability,
	remove *ucAvailability.DeleteAvailability,
	list *ucAvailability.ListAvailability,
	validate *ucAvailability.ValidateSlot,
	find *ucAvailability.FindAvailablePanelists,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		declare:  declare,
		update:   update,
		remove:   remove,
		list:     list,
		validate: validate,
		find:     find,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type DeclareAvailabilityRequest struct {
	PanelistID    uint   `json:"panelist_id"`
	AvailableDate string `json:"available_date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

type UpdateAvailabilityRequest struct {
	AvailableDate *string `json:"available_date"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
}

// ======================================================
// WRITE
// ======================================================

func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req DeclareAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	w, err := h.declare.Execute(c.Request.Context(), ucAvailability.DeclareAvailabilityInput{
		Actor:      middleware.ActorFrom(c),
		PanelistID: req.PanelistID,
		Date:       req.AvailableDate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.Window(*w))
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	w, err := h.update.Execute(c.Request.Context(), ucAvailability.UpdateAvailabilityInput{
		Actor:     middleware.ActorFrom(c),
		ID:        id,
		Date:      req.AvailableDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Window(*w))
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
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

func (h *AvailabilityHandler) List(c *gin.Context) {
	ws, err := h.list.All(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.Windows(ws))
}

func (h *AvailabilityHandler) ListByPanelist(c *gin.Context) {
	panelistID, ok := pathID(c, "panelistId")
	if !ok {
		return
	}

	ws, err := h.list.ByPanelist(c.Request.Context(), panelistID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.Windows(ws))
}

// Available lists panelists with an Available window covering
// ?date=&start=&end=.
func (h *AvailabilityHandler) Available(c *gin.Context) {
	found, err := h.find.Execute(c.Request.Context(), ucAvailability.FindAvailablePanelistsInput{
		Date:      c.Query("date"),
		StartTime: c.Query("start"),
		EndTime:   c.Query("end"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.AvailablePanelists(found))
}

// Validate pre-checks a slot. A conflict is reported in the body with 200.
func (h *AvailabilityHandler) Validate(c *gin.Context) {
	panelistID, ok := queryID(c, "panelist_id")
	if !ok {
		return
	}

	res, err := h.validate.Execute(c.Request.Context(), ucAvailability.ValidateSlotInput{
		PanelistID: panelistID,
		Date:       c.Query("date"),
		StartTime:  c.Query("start"),
		EndTime:    c.Query("end"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.SlotCheck(res))
}
