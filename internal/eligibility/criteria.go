package eligibility

import (
	"encoding/json"
	"fmt"
)

// Criterion keys form a fixed vocabulary; anything else in a scheme's
// criteria payload is rejected by the JSON schema at scheme creation.
const (
	KeyAgeMin          = "age_min"
	KeyAgeMax          = "age_max"
	KeyAnnualIncomeMax = "annual_income_max"
	KeyLandHoldingMin  = "land_holding_min"
	KeyCasteAllowed    = "caste_allowed"
	KeyGender          = "gender"
)

// GenderAll is the scheme-side wildcard matching any applicant gender.
const GenderAll = "all"

// Criteria is a scheme's declarative eligibility mapping. Nil fields mean
// the criterion is not part of the scheme. Immutable once attached.
type Criteria struct {
	AgeMin          *float64 `json:"age_min,omitempty"`
	AgeMax          *float64 `json:"age_max,omitempty"`
	AnnualIncomeMax *float64 `json:"annual_income_max,omitempty"`
	LandHoldingMin  *float64 `json:"land_holding_min,omitempty"`
	CasteAllowed    []string `json:"caste_allowed,omitempty"`
	Gender          *string  `json:"gender,omitempty"`
}

// ParseCriteria decodes a stored criteria payload. An empty payload is a
// valid, vacuous criteria set.
func ParseCriteria(raw json.RawMessage) (Criteria, error) {
	var c Criteria
	if len(raw) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return Criteria{}, fmt.Errorf("decode criteria: %w", err)
	}
	return c, nil
}

// Count returns how many criteria the scheme declares; this is the
// match-percentage denominator.
func (c Criteria) Count() int {
	n := 0
	if c.AgeMin != nil {
		n++
	}
	if c.AgeMax != nil {
		n++
	}
	if c.AnnualIncomeMax != nil {
		n++
	}
	if c.LandHoldingMin != nil {
		n++
	}
	if len(c.CasteAllowed) > 0 {
		n++
	}
	if c.Gender != nil {
		n++
	}
	return n
}
