package entity

import (
	"time"

	"github.com/google/uuid"
)

// Farmer represents an applicant profile for data transfer between layers.
type Farmer struct {
	ID         uuid.UUID `json:"id"`
	FarmerCode string    `json:"farmer_code"`
	Name       string    `json:"name"`
	Phone      *string   `json:"phone,omitempty"`
	Village    *string   `json:"village,omitempty"`
	District   *string   `json:"district,omitempty"`
	AutoApply  bool      `json:"auto_apply"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
