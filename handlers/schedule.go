package handlers

import (
	"net/http"

	"coachly/models"
	"coachly/services/scheduling"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the admin CRUD surface for recurring rules and
// exception intervals.
type ScheduleHandler struct {
	Service scheduling.ScheduleService
}

func NewScheduleHandler(svc scheduling.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// CreateRule handles POST /api/admin/rules.
func (h *ScheduleHandler) CreateRule(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid rule request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	rule, err := h.Service.CreateRule(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rule": rule})
}

// ListRules handles GET /api/admin/rules/:coachID.
func (h *ScheduleHandler) ListRules(c *gin.Context) {
	coachID := c.Param("coachID")
	if coachID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing coach ID in path"})
		return
	}

	rules, err := h.Service.ListRules(c.Request.Context(), coachID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// UpdateRule handles PATCH /api/admin/rules/:ruleID.
func (h *ScheduleHandler) UpdateRule(c *gin.Context) {
	ruleID := c.Param("ruleID")
	if ruleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing rule ID in path"})
		return
	}

	var req models.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	rule, err := h.Service.UpdateRule(c.Request.Context(), ruleID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rule": rule})
}

// DeleteRule handles DELETE /api/admin/rules/:ruleID.
func (h *ScheduleHandler) DeleteRule(c *gin.Context) {
	ruleID := c.Param("ruleID")
	if ruleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing rule ID in path"})
		return
	}

	if err := h.Service.DeleteRule(c.Request.Context(), ruleID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rule deleted"})
}

// CreateException handles POST /api/admin/exceptions.
func (h *ScheduleHandler) CreateException(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid exception request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ex, err := h.Service.CreateException(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"exception": ex})
}

// ListExceptions handles GET /api/admin/exceptions/:coachID?date=...
func (h *ScheduleHandler) ListExceptions(c *gin.Context) {
	coachID := c.Param("coachID")
	date := c.Query("date")
	if coachID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coachID and date are required"})
		return
	}

	exceptions, err := h.Service.ListExceptionsForDay(c.Request.Context(), coachID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exceptions": exceptions})
}

// DeleteException handles DELETE /api/admin/exceptions/:exceptionID.
func (h *ScheduleHandler) DeleteException(c *gin.Context) {
	exceptionID := c.Param("exceptionID")
	if exceptionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing exception ID in path"})
		return
	}

	if err := h.Service.DeleteException(c.Request.Context(), exceptionID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exception deleted"})
}
