package models

// ReminderPayload is the asynq task payload for a session reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Target    string `json:"target"` // "customer" or "coach"
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"` // RFC 3339
}
