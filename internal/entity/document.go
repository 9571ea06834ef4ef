package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/constants"
)

// FarmerDocument represents one stored extracted field-set for data transfer
// between layers. There is at most one per (farmer, document type); re-upload
// replaces it wholesale.
type FarmerDocument struct {
	ID                   uuid.UUID              `json:"id"`
	FarmerID             uuid.UUID              `json:"farmer_id"`
	DocType              constants.DocumentType `json:"doc_type"`
	Fields               json.RawMessage        `json:"fields,omitempty"`
	ExtractionConfidence *float32               `json:"extraction_confidence,omitempty"`
	RawText              *string                `json:"raw_text,omitempty"`
	UploadedAt           time.Time              `json:"uploaded_at"`
}

// DecodeFields unmarshals the stored field-set into a generic mapping.
// A nil payload decodes to an empty mapping.
func (d *FarmerDocument) DecodeFields() (map[string]any, error) {
	if len(d.Fields) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(d.Fields, &m); err != nil {
		return nil, err
	}
	return m, nil
}
