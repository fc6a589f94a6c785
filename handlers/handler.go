package handlers

import (
	"errors"
	"net/http"

	"coachly/services/admin"
	"coachly/services/availability"
	"coachly/services/booking"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandlerBundle aggregates every route handler for registration.
type HandlerBundle struct {
	// Availability and booking endpoints.
	GetAvailableSlotsHandler gin.HandlerFunc
	CreateBookingHandler     gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	ListBookingsHandler      gin.HandlerFunc

	// Session-type catalogue endpoints.
	ListSessionTypesHandler  gin.HandlerFunc
	UpsertSessionTypeHandler gin.HandlerFunc
	DeleteSessionTypeHandler gin.HandlerFunc

	// Schedule administration endpoints.
	CreateRuleHandler      gin.HandlerFunc
	ListRulesHandler       gin.HandlerFunc
	UpdateRuleHandler      gin.HandlerFunc
	DeleteRuleHandler      gin.HandlerFunc
	CreateExceptionHandler gin.HandlerFunc
	ListExceptionsHandler  gin.HandlerFunc
	DeleteExceptionHandler gin.HandlerFunc

	// Admin auth endpoints.
	AdminLoginHandler  gin.HandlerFunc
	AdminLogoutHandler gin.HandlerFunc
}

// respondServiceError maps service-layer failures onto HTTP statuses: invalid
// arguments to 400, unknown records to 404, booking conflicts to 409, bad
// credentials to 401, everything else to 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case availability.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, booking.ErrSlotUnavailable), errors.Is(err, booking.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, admin.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
