package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chandrashekharddev/agroscheme/constants"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }
func sptr(s string) *string   { return &s }

func allDocs() map[constants.DocumentType]bool {
	out := make(map[constants.DocumentType]bool)
	for _, dt := range constants.DocumentTypes() {
		out[dt] = true
	}
	return out
}

func TestEvaluateVacuousCriteria(t *testing.T) {
	v := Evaluate(Profile{}, Criteria{}, nil, nil, DefaultKeywords())

	assert.True(t, v.Eligible)
	assert.True(t, v.CriteriaMet)
	assert.True(t, v.HasRequiredDocuments)
	assert.Equal(t, 100.0, v.MatchPercentage)
	assert.Empty(t, v.MissingCriteria)
	assert.Empty(t, v.SkippedCriteria)
}

func TestEvaluateAllCriteriaPass(t *testing.T) {
	profile := Profile{
		Age:          iptr(40),
		AnnualIncome: fptr(90000),
		LandAcres:    fptr(3.0),
		Caste:        sptr("SC"),
		Gender:       sptr("female"),
	}
	criteria := Criteria{
		AgeMin:          fptr(18),
		AgeMax:          fptr(60),
		AnnualIncomeMax: fptr(100000),
		LandHoldingMin:  fptr(1),
		CasteAllowed:    []string{"SC", "ST"},
		Gender:          sptr("female"),
	}

	v := Evaluate(profile, criteria, nil, nil, DefaultKeywords())

	assert.True(t, v.Eligible)
	assert.True(t, v.CriteriaMet)
	assert.Equal(t, 100.0, v.MatchPercentage)
	assert.Len(t, v.MatchedCriteria, 6)
	assert.Empty(t, v.MissingCriteria)
	assert.Empty(t, v.Reasons)
}

func TestEvaluateFailedCriterion(t *testing.T) {
	profile := Profile{
		Age:          iptr(40),
		AnnualIncome: fptr(250000),
	}
	criteria := Criteria{
		AgeMin:          fptr(18),
		AnnualIncomeMax: fptr(100000),
	}

	v := Evaluate(profile, criteria, nil, nil, DefaultKeywords())

	assert.False(t, v.Eligible)
	assert.False(t, v.CriteriaMet)
	assert.Equal(t, 50.0, v.MatchPercentage)
	assert.Equal(t, []string{KeyAgeMin}, v.MatchedCriteria)
	assert.Equal(t, []string{KeyAnnualIncomeMax}, v.MissingCriteria)
	assert.NotEmpty(t, v.Reasons)
}

func TestEvaluateSkippedCriterionIsNotDisqualifying(t *testing.T) {
	// No income data at all: the income criterion is skipped, not failed.
	profile := Profile{Age: iptr(40)}
	criteria := Criteria{
		AgeMin:          fptr(18),
		AnnualIncomeMax: fptr(100000),
	}

	v := Evaluate(profile, criteria, nil, nil, DefaultKeywords())

	assert.True(t, v.Eligible)
	assert.True(t, v.CriteriaMet)
	// Skips still count toward the denominator.
	assert.Equal(t, 50.0, v.MatchPercentage)
	assert.Equal(t, []string{KeyAgeMin}, v.MatchedCriteria)
	assert.Empty(t, v.MissingCriteria)
	assert.Equal(t, []string{KeyAnnualIncomeMax}, v.SkippedCriteria)
	assert.Contains(t, v.Reasons, "no data to verify annual_income_max")
}

func TestEvaluateGenderWildcard(t *testing.T) {
	profile := Profile{Gender: sptr("male")}
	criteria := Criteria{Gender: sptr("all")}

	v := Evaluate(profile, criteria, nil, nil, DefaultKeywords())

	assert.True(t, v.Eligible)
	assert.Equal(t, []string{KeyGender}, v.MatchedCriteria)
}

func TestEvaluateGenderRestricted(t *testing.T) {
	profile := Profile{Gender: sptr("male")}
	criteria := Criteria{Gender: sptr("female")}

	v := Evaluate(profile, criteria, nil, nil, DefaultKeywords())

	assert.False(t, v.Eligible)
	assert.Equal(t, []string{KeyGender}, v.MissingCriteria)
}

func TestEvaluateCasteCaseInsensitive(t *testing.T) {
	profile := Profile{Caste: sptr("sc")}
	criteria := Criteria{CasteAllowed: []string{"SC", "ST"}}

	v := Evaluate(profile, criteria, nil, nil, DefaultKeywords())

	assert.True(t, v.Eligible)
	assert.Equal(t, []string{KeyCasteAllowed}, v.MatchedCriteria)
}

func TestEvaluateDocumentGateBlocks(t *testing.T) {
	// Criteria pass but a required document is missing: not eligible.
	profile := Profile{Age: iptr(40)}
	criteria := Criteria{AgeMin: fptr(18)}
	required := []string{"Aadhaar Card", "Land Record 7/12"}
	available := map[constants.DocumentType]bool{
		constants.DocTypeAadhaar: true,
	}

	v := Evaluate(profile, criteria, required, available, DefaultKeywords())

	assert.False(t, v.Eligible)
	assert.True(t, v.CriteriaMet)
	assert.False(t, v.HasRequiredDocuments)
	assert.Equal(t, []string{"Land Record 7/12"}, v.MissingDocuments)
}

func TestEvaluateDocumentGateSatisfied(t *testing.T) {
	profile := Profile{Age: iptr(40)}
	criteria := Criteria{AgeMin: fptr(18)}
	required := []string{"Aadhaar Card", "Income Certificate"}

	v := Evaluate(profile, criteria, required, allDocs(), DefaultKeywords())

	assert.True(t, v.Eligible)
	assert.True(t, v.HasRequiredDocuments)
	assert.Empty(t, v.MissingDocuments)
}

func TestEvaluateBoundaryValues(t *testing.T) {
	// Bounds are inclusive on both ends.
	profile := Profile{
		Age:          iptr(18),
		AnnualIncome: fptr(100000),
		LandAcres:    fptr(1.0),
	}
	criteria := Criteria{
		AgeMin:          fptr(18),
		AgeMax:          fptr(18),
		AnnualIncomeMax: fptr(100000),
		LandHoldingMin:  fptr(1),
	}

	v := Evaluate(profile, criteria, nil, nil, DefaultKeywords())

	assert.True(t, v.Eligible)
	assert.Equal(t, 100.0, v.MatchPercentage)
}
