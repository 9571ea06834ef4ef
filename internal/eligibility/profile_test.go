package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandrashekharddev/agroscheme/constants"
)

var evalNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestBuildProfileMergesAcrossDocuments(t *testing.T) {
	sets := map[constants.DocumentType]map[string]any{
		constants.DocTypeAadhaar: {
			"date_of_birth": "1985-06-15",
			"gender":        "male",
		},
		constants.DocTypeLandRecord: {
			"land_area_acres": 5.5,
		},
		constants.DocTypeIncomeCertificate: {
			"annual_income": 90000.0,
		},
		constants.DocTypeCasteCertificate: {
			"caste_category": "SC",
		},
	}

	p := BuildProfile(sets, evalNow)

	require.NotNil(t, p.Age)
	assert.Equal(t, 41, *p.Age)
	require.NotNil(t, p.AnnualIncome)
	assert.Equal(t, 90000.0, *p.AnnualIncome)
	require.NotNil(t, p.LandAcres)
	assert.Equal(t, 5.5, *p.LandAcres)
	require.NotNil(t, p.Caste)
	assert.Equal(t, "SC", *p.Caste)
	require.NotNil(t, p.Gender)
	assert.Equal(t, "male", *p.Gender)
}

func TestBuildProfileCatalogOrderWins(t *testing.T) {
	// Aadhaar precedes PAN in the catalog, so its DOB wins.
	sets := map[constants.DocumentType]map[string]any{
		constants.DocTypeAadhaar: {"date_of_birth": "1985-06-15"},
		constants.DocTypePAN:     {"date_of_birth": "1990-01-01"},
	}

	p := BuildProfile(sets, evalNow)

	require.NotNil(t, p.Age)
	assert.Equal(t, 41, *p.Age)
}

func TestBuildProfileHectaresFallback(t *testing.T) {
	sets := map[constants.DocumentType]map[string]any{
		constants.DocTypeLandRecord: {"land_area_hectares": 10.0},
	}

	p := BuildProfile(sets, evalNow)

	require.NotNil(t, p.LandAcres)
	assert.InDelta(t, 24.7, *p.LandAcres, 0.001)
}

func TestBuildProfileUnparseableDOB(t *testing.T) {
	sets := map[constants.DocumentType]map[string]any{
		constants.DocTypeAadhaar: {"date_of_birth": "15th June 19"},
	}

	p := BuildProfile(sets, evalNow)
	assert.Nil(t, p.Age)
}

func TestBuildProfileEmpty(t *testing.T) {
	p := BuildProfile(nil, evalNow)
	assert.Nil(t, p.Age)
	assert.Nil(t, p.AnnualIncome)
	assert.Nil(t, p.LandAcres)
	assert.Nil(t, p.Caste)
	assert.Nil(t, p.Gender)
}

func TestAgeFromDOB(t *testing.T) {
	tests := []struct {
		name   string
		dob    string
		want   int
		wantOK bool
	}{
		{name: "birthday passed this year", dob: "1985-06-15", want: 41, wantOK: true},
		{name: "birthday later this year", dob: "1985-12-31", want: 40, wantOK: true},
		{name: "birthday today", dob: "1990-08-30", want: 36, wantOK: true},
		{name: "unparseable", dob: "June 1985", wantOK: false},
		{name: "future date", dob: "2030-01-01", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ageFromDOB(tt.dob, evalNow)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
