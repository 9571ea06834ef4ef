package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/constants"
)

// StatusChange is one entry in an application's append-only history log.
type StatusChange struct {
	Status         constants.ApplicationStatus `json:"status"`
	Timestamp      time.Time                   `json:"timestamp"`
	ApprovedAmount *float64                    `json:"approved_amount,omitempty"`
}

// Application represents one farmer's request for a scheme's benefit,
// for data transfer between layers.
type Application struct {
	ID             uuid.UUID                   `json:"id"`
	ApplicationID  string                      `json:"application_id"`
	FarmerID       uuid.UUID                   `json:"farmer_id"`
	SchemeID       uuid.UUID                   `json:"scheme_id"`
	Status         constants.ApplicationStatus `json:"status"`
	Source         constants.ApplicationSource `json:"source"`
	AppliedAmount  *float64                    `json:"applied_amount,omitempty"`
	ApprovedAmount *float64                    `json:"approved_amount,omitempty"`
	Eligibility    json.RawMessage             `json:"eligibility,omitempty"`
	StatusHistory  []StatusChange              `json:"status_history,omitempty"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// EncodeHistory serializes the history log for storage.
func EncodeHistory(history []StatusChange) (json.RawMessage, error) {
	return json.Marshal(history)
}

// DecodeHistory deserializes a stored history log. A nil payload decodes to
// an empty log.
func DecodeHistory(raw json.RawMessage) ([]StatusChange, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var h []StatusChange
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, err
	}
	return h, nil
}
