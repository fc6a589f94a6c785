package handlers

import (
	"net/http"

	"coachly/models"
	"coachly/services/sessiontype"

	"github.com/gin-gonic/gin"
)

// SessionTypeHandler serves the session-type catalogue: read access is
// public, mutation is admin-only.
type SessionTypeHandler struct {
	Service sessiontype.SessionTypeService
}

func NewSessionTypeHandler(svc sessiontype.SessionTypeService) *SessionTypeHandler {
	return &SessionTypeHandler{Service: svc}
}

// ListSessionTypes handles GET /api/session-types.
func (h *SessionTypeHandler) ListSessionTypes(c *gin.Context) {
	types, err := h.Service.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionTypes": types})
}

// UpsertSessionType handles PUT /api/admin/session-types.
func (h *SessionTypeHandler) UpsertSessionType(c *gin.Context) {
	var req models.UpsertSessionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	st, err := h.Service.Upsert(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionType": st})
}

// DeleteSessionType handles DELETE /api/admin/session-types/:key.
func (h *SessionTypeHandler) DeleteSessionType(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session type key in path"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), key); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session type deleted"})
}
