package models

import (
	"time"
)

// Model is the base for resources with a database-assigned ID.
//
// IDs are sequential integers, so they double as insertion order.
type Model struct {
	ID uint `json:"id" example:"17"` // Sequential ID of the resource
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically to
// enable other primary keys than ID.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-17T20:14:01.048145Z"` // Last time the resource was updated
}
