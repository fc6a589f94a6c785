package models

import "time"

// Exception reasons. The availability engine treats all three identically as
// "unavailable"; the distinction is metadata for the admin UI.
const (
	ExceptionReasonBlocked = "blocked"
	ExceptionReasonHoliday = "holiday"
	ExceptionReasonBooked  = "booked"
)

// ExceptionInterval is an ad-hoc blackout: a manual block or holiday entered
// by an admin, or the occupied interval of a confirmed booking. Start and End
// are absolute instants (stored UTC), Start < End.
type ExceptionInterval struct {
	ID        string    `bson:"id" json:"id"`
	CoachID   string    `bson:"coachId" json:"coachId"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
	Reason    string    `bson:"reason" json:"reason"`
	BookingID string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"` // set when Reason is "booked"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateExceptionRequest defines the payload for an admin-created blackout.
// Only "blocked" and "holiday" are accepted here; "booked" exceptions are
// written by the booking flow.
type CreateExceptionRequest struct {
	CoachID string    `json:"coachId" binding:"required"`
	Start   time.Time `json:"start" binding:"required"`
	End     time.Time `json:"end" binding:"required"`
	Reason  string    `json:"reason" binding:"required"`
}
