package models

import "time"

// RecurringRule is a coach's standing weekly availability window. Times are
// wall-clock ("HH:MM", 24h) in the site's reference timezone; DayOfWeek is the
// civil weekday in that zone (0 = Sunday).
type RecurringRule struct {
	ID           string    `bson:"id" json:"id"`
	CoachID      string    `bson:"coachId" json:"coachId"`
	DayOfWeek    int       `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime    string    `bson:"startTime" json:"startTime"` // e.g., "09:00"
	EndTime      string    `bson:"endTime" json:"endTime"`     // e.g., "17:00"
	SessionType  string    `bson:"sessionType" json:"sessionType"`
	SlotDuration int       `bson:"slotDuration" json:"slotDuration"` // minutes between offered start times
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateRuleRequest defines the payload for creating a recurring rule.
type CreateRuleRequest struct {
	CoachID      string `json:"coachId" binding:"required"`
	DayOfWeek    *int   `json:"dayOfWeek" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
	SessionType  string `json:"sessionType" binding:"required"`
	SlotDuration int    `json:"slotDuration"`
	IsActive     *bool  `json:"isActive"`
}

// UpdateRuleRequest carries partial updates for a recurring rule.
type UpdateRuleRequest struct {
	DayOfWeek    *int    `json:"dayOfWeek,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	SessionType  *string `json:"sessionType,omitempty"`
	SlotDuration *int    `json:"slotDuration,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}
