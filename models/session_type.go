package models

import "time"

// SessionType describes one kind of coaching session offered on the site,
// e.g. a replay review or a live 1-on-1.
type SessionType struct {
	Key             string    `bson:"key" json:"key"` // e.g., "vod-review"
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	PriceCents      int64     `bson:"priceCents" json:"priceCents"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UpsertSessionTypeRequest defines the payload for creating or replacing a
// session type in the catalogue.
type UpsertSessionTypeRequest struct {
	Key             string `json:"key" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	PriceCents      int64  `json:"priceCents"`
	Active          *bool  `json:"active"`
}
