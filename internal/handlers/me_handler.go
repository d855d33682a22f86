package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/middleware"
	"github.com/winhire/interview-engine/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the caller's user record and the role the token grants.
func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, actor.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.NotFound("user", actor.UserID))
			return
		}
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"role":       user.Role,
			"department": user.Department,
			"is_active":  user.IsActive,
		},
		"token_role": actor.Role,
	})
}
