package models

import "time"

// AvailableSlot is one bookable start instant plus its client-facing display
// form in the reference timezone.
type AvailableSlot struct {
	Start       time.Time `json:"start"`       // absolute instant, UTC
	DisplayTime string    `json:"displayTime"` // e.g., "9:00 AM"
}

// AvailableSlotsResponse is the payload returned for an availability query.
// An empty Slots list is a valid outcome, not an error.
type AvailableSlotsResponse struct {
	CoachID     string          `json:"coachId"`
	Date        string          `json:"date"` // civil date, "2006-01-02"
	SessionType string          `json:"sessionType"`
	Timezone    string          `json:"timezone"`
	Slots       []AvailableSlot `json:"slots"`
}
