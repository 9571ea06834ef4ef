package eligibility

import (
	"time"

	"github.com/chandrashekharddev/agroscheme/constants"
	"github.com/chandrashekharddev/agroscheme/internal/extract"
)

// Profile is the merged view across all of a farmer's stored field-sets,
// built transiently for one evaluation. Attributes absent from every
// field-set are nil; criteria referencing them are skipped, not errored.
type Profile struct {
	Age          *int
	AnnualIncome *float64
	LandAcres    *float64
	Caste        *string
	Gender       *string
}

// dobKeys and friends are the field names scanned when merging. Field-sets
// are visited in catalog order, first occurrence wins.
var (
	dobKeys      = []string{"date_of_birth", "dob"}
	incomeKeys   = []string{"annual_income"}
	acresKeys    = []string{"land_area_acres"}
	hectaresKeys = []string{"land_area_hectares"}
	casteKeys    = []string{"caste_category", "caste"}
	genderKeys   = []string{"gender"}
)

// BuildProfile merges a farmer's per-document-type field-sets into the
// attribute view the evaluator consumes. now anchors age derivation.
func BuildProfile(sets map[constants.DocumentType]map[string]any, now time.Time) Profile {
	var p Profile

	if dob, ok := stringField(sets, dobKeys); ok {
		if age, ok := ageFromDOB(dob, now); ok {
			p.Age = &age
		}
	}
	if income, ok := numberField(sets, incomeKeys); ok {
		p.AnnualIncome = &income
	}
	if acres, ok := numberField(sets, acresKeys); ok {
		p.LandAcres = &acres
	} else if hectares, ok := numberField(sets, hectaresKeys); ok {
		acres := hectares * extract.AcresPerHectare
		p.LandAcres = &acres
	}
	if caste, ok := stringField(sets, casteKeys); ok {
		p.Caste = &caste
	}
	if gender, ok := stringField(sets, genderKeys); ok {
		p.Gender = &gender
	}
	return p
}

func stringField(sets map[constants.DocumentType]map[string]any, keys []string) (string, bool) {
	for _, dt := range constants.DocumentTypes() {
		fields, ok := sets[dt]
		if !ok {
			continue
		}
		for _, key := range keys {
			if v, ok := fields[key].(string); ok && v != "" {
				return v, true
			}
		}
	}
	return "", false
}

func numberField(sets map[constants.DocumentType]map[string]any, keys []string) (float64, bool) {
	for _, dt := range constants.DocumentTypes() {
		fields, ok := sets[dt]
		if !ok {
			continue
		}
		for _, key := range keys {
			switch v := fields[key].(type) {
			case float64:
				return v, true
			case int:
				return float64(v), true
			}
		}
	}
	return 0, false
}

// ageFromDOB derives whole years from a canonical YYYY-MM-DD date string.
func ageFromDOB(dob string, now time.Time) (int, bool) {
	t, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0, false
	}
	age := now.Year() - t.Year()
	if now.Month() < t.Month() || (now.Month() == t.Month() && now.Day() < t.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}
