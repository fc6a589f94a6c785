package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a confirmed coaching session. Its occupied interval is mirrored
// into an ExceptionInterval (Reason "booked") so the availability engine sees
// it; ExceptionID links the pair so cancellation can remove both.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	CoachID       string    `bson:"coachId" json:"coachId"`
	SessionType   string    `bson:"sessionType" json:"sessionType"`
	Start         time.Time `bson:"start" json:"start"`
	End           time.Time `bson:"end" json:"end"`
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerEmail string    `bson:"customerEmail" json:"customerEmail"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"` // e.g., a replay link
	Status        string    `bson:"status" json:"status"`
	ExceptionID   string    `bson:"exceptionId" json:"exceptionId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateBookingRequest defines the payload for booking a slot.
type CreateBookingRequest struct {
	CoachID       string    `json:"coachId" binding:"required"`
	SessionType   string    `json:"sessionType" binding:"required"`
	Start         time.Time `json:"start" binding:"required"`
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerEmail string    `json:"customerEmail" binding:"required,email"`
	Notes         string    `json:"notes"`
}

// BookingConfirmationResponse is returned once a booking has been persisted.
type BookingConfirmationResponse struct {
	Booking     Booking `json:"booking"`
	DisplayTime string  `json:"displayTime"` // start formatted in the reference timezone
}
