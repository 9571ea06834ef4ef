package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/constants"
)

// Notification represents one farmer-facing message for data transfer
// between layers.
type Notification struct {
	ID        uuid.UUID                  `json:"id"`
	FarmerID  uuid.UUID                  `json:"farmer_id"`
	Title     string                     `json:"title"`
	Message   string                     `json:"message"`
	Type      constants.NotificationType `json:"notification_type"`
	Read      bool                       `json:"read"`
	CreatedAt time.Time                  `json:"created_at"`
}
