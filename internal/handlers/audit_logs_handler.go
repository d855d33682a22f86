package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/httpresp"
	infraRepo "github.com/winhire/interview-engine/internal/infra/repository"
	"github.com/winhire/interview-engine/internal/middleware"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditLogsHandler struct {
	repo *infraRepo.AuditLogGormRepository
}

func NewAuditLogsHandler(repo *infraRepo.AuditLogGormRepository) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

// List pages through the audit trail. Admin only.
//
// Query: action, entity, entity_id, from, to (YYYY-MM-DD, inclusive),
// page, limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	if !middleware.ActorFrom(c).IsAdmin() {
		httperr.Respond(c, httperr.Forbidden("audit logs are restricted to admins"))
		return
	}

	f, page, ok := auditFilter(c)
	if !ok {
		return
	}

	logs, total, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, logs, total, page, f.Limit)
}

func auditFilter(c *gin.Context) (infraRepo.AuditLogFilter, int, bool) {
	f := infraRepo.AuditLogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  defaultAuditLimit,
	}

	if raw := c.Query("entity_id"); raw != "" {
		id, ok := queryID(c, "entity_id")
		if !ok {
			return f, 0, false
		}
		f.EntityID = &id
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httperr.Respond(c, httperr.Validation("from", "from must be YYYY-MM-DD"))
			return f, 0, false
		}
		f.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httperr.Respond(c, httperr.Validation("to", "to must be YYYY-MM-DD"))
			return f, 0, false
		}
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit <= maxAuditLimit {
		f.Limit = limit
	}
	f.Offset = (page - 1) * f.Limit

	return f, page, true
}
