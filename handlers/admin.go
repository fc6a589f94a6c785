package handlers

import (
	"net/http"
	"strings"

	"coachly/services/admin"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves login/logout for the single operator account.
type AdminHandler struct {
	Service admin.AuthService
}

func NewAdminHandler(svc admin.AuthService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	token, err := h.Service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Admin sign-in rejected", zap.String("email", req.Email))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(admin.TokenTTL.Seconds())})
}

// Logout handles POST /api/admin/logout. Revokes the presented token.
func (h *AdminHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing bearer token"})
		return
	}

	if err := h.Service.Revoke(c.Request.Context(), token); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
