package handlers

import (
	"net/http"

	"coachly/models"
	"coachly/services/booking"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves availability queries and the booking lifecycle.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// GetAvailableSlots handles GET /api/availability/:coachID?date=...&sessionType=...
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	coachID := c.Param("coachID")
	date := c.Query("date")
	sessionType := c.Query("sessionType")
	if coachID == "" || date == "" || sessionType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coachID, date and sessionType are required"})
		return
	}

	resp, err := h.Service.GetAvailableSlots(c.Request.Context(), coachID, date, sessionType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.ConfirmBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CancelBooking handles DELETE /api/bookings/:bookingID.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking ID in path"})
		return
	}

	if err := h.Service.CancelBooking(c.Request.Context(), bookingID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// ListBookings handles GET /api/admin/bookings/:coachID?date=...
func (h *BookingHandler) ListBookings(c *gin.Context) {
	coachID := c.Param("coachID")
	date := c.Query("date")
	if coachID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coachID and date are required"})
		return
	}

	bookings, err := h.Service.ListBookingsForDay(c.Request.Context(), coachID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
