package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Scheme represents a government benefit program for data transfer between layers.
type Scheme struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Description       *string         `json:"description,omitempty"`
	BenefitAmount     float64         `json:"benefit_amount"`
	Criteria          json.RawMessage `json:"criteria,omitempty"`
	RequiredDocuments []string        `json:"required_documents,omitempty"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
