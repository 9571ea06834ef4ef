package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandrashekharddev/agroscheme/constants"
)

func mustText(t *testing.T, fields Fields, name string) string {
	t.Helper()
	s, ok := fields.Text(name)
	require.True(t, ok, "field %s missing or not text", name)
	return s
}

func mustNumber(t *testing.T, fields Fields, name string) float64 {
	t.Helper()
	f, ok := fields.Number(name)
	require.True(t, ok, "field %s missing or not numeric", name)
	return f
}

func TestExtractAadhaar(t *testing.T) {
	text := "Government of India\nName: Ramesh Kumar\n1234 5678 9012\nDOB: 15-06-1985\nGender: MALE"

	result, err := NewRegistry().Extract(text, constants.DocTypeAadhaar)
	require.NoError(t, err)

	assert.Equal(t, "123456789012", mustText(t, result.Fields, "aadhaar_number"))
	assert.Equal(t, "Ramesh Kumar", mustText(t, result.Fields, "name"))
	assert.Equal(t, "1985-06-15", mustText(t, result.Fields, "date_of_birth"))
	assert.Equal(t, "male", mustText(t, result.Fields, "gender"))
	assert.Equal(t, 100.0, result.Confidence)
}

func TestExtractPAN(t *testing.T) {
	text := "Income Tax Department\nPermanent Account Number: abcde1234f\nName: Suresh Patil"

	result, err := NewRegistry().Extract(text, constants.DocTypePAN)
	require.NoError(t, err)

	assert.Equal(t, "ABCDE1234F", mustText(t, result.Fields, "pan_number"))
	assert.Equal(t, "Suresh Patil", mustText(t, result.Fields, "name"))
	assert.Equal(t, 100.0, result.Confidence)
}

func TestExtractLandRecord(t *testing.T) {
	text := "7/12 Extract\nSurvey No: 123/4A\nArea: 5.5 acres\nVillage: Shirur\nOwner Name: Ganesh Pawar"

	result, err := NewRegistry().Extract(text, constants.DocTypeLandRecord)
	require.NoError(t, err)

	assert.Equal(t, "123/4A", mustText(t, result.Fields, "survey_number"))
	assert.Equal(t, "Ganesh Pawar", mustText(t, result.Fields, "owner_name"))
	assert.Equal(t, "Shirur", mustText(t, result.Fields, "village"))
	assert.Equal(t, 5.5, mustNumber(t, result.Fields, "land_area_acres"))
	assert.InDelta(t, 5.5/AcresPerHectare, mustNumber(t, result.Fields, "land_area_hectares"), 0.001)
	assert.Equal(t, 100.0, result.Confidence)
}

func TestExtractLandRecordHectaresOnly(t *testing.T) {
	text := "Khata Number: 88\nArea: 10 hectares\nOwner Name: Sita Bai"

	result, err := NewRegistry().Extract(text, constants.DocTypeLandRecord)
	require.NoError(t, err)

	assert.Equal(t, 10.0, mustNumber(t, result.Fields, "land_area_hectares"))
	assert.InDelta(t, 24.7, mustNumber(t, result.Fields, "land_area_acres"), 0.001)
	// The reconciled acres field counts toward confidence.
	assert.Equal(t, 100.0, result.Confidence)
}

func TestExtractBankPassbook(t *testing.T) {
	text := "State Bank of India\nBranch: Pune\nA/C No: 123456789012\nIFSC Code: sbin0001234"

	result, err := NewRegistry().Extract(text, constants.DocTypeBankPassbook)
	require.NoError(t, err)

	assert.Equal(t, "123456789012", mustText(t, result.Fields, "account_number"))
	assert.Equal(t, "SBIN0001234", mustText(t, result.Fields, "ifsc_code"))
	assert.Equal(t, "State Bank of India", mustText(t, result.Fields, "bank_name"))
	assert.Equal(t, 100.0, result.Confidence)
}

func TestExtractIncomeCertificate(t *testing.T) {
	text := "Annual Income: Rs. 1,50,000\nCertificate No: INC/2024/77\nIssued On: 10/01/2024\nApplicant Name: Kavita More"

	result, err := NewRegistry().Extract(text, constants.DocTypeIncomeCertificate)
	require.NoError(t, err)

	assert.Equal(t, 150000.0, mustNumber(t, result.Fields, "annual_income"))
	assert.Equal(t, "Kavita More", mustText(t, result.Fields, "applicant_name"))
	assert.Equal(t, "INC/2024/77", mustText(t, result.Fields, "certificate_number"))
	assert.Equal(t, "2024-01-10", mustText(t, result.Fields, "issue_date"))
	assert.Equal(t, 100.0, result.Confidence)
}

func TestExtractIncomeCertificatePartial(t *testing.T) {
	text := "Income: ₹ 45,000 per annum"

	result, err := NewRegistry().Extract(text, constants.DocTypeIncomeCertificate)
	require.NoError(t, err)

	assert.Equal(t, 45000.0, mustNumber(t, result.Fields, "annual_income"))
	_, ok := result.Fields.Text("applicant_name")
	assert.False(t, ok)
	assert.Equal(t, 50.0, result.Confidence)
}

func TestExtractCasteCertificate(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCategory string
	}{
		{
			name:         "short form",
			text:         "Category: SC\nCertificate No: CC/11/2020\nApplicant Name: Ramu Jadhav",
			wantCategory: "SC",
		},
		{
			name:         "long form canonicalized",
			text:         "The holder belongs to Scheduled Caste community",
			wantCategory: "SC",
		},
		{
			name:         "scheduled tribe",
			text:         "The holder belongs to Scheduled Tribe community",
			wantCategory: "ST",
		},
		{
			name:         "other backward class",
			text:         "The holder belongs to Other Backward Class community",
			wantCategory: "OBC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewRegistry().Extract(tt.text, constants.DocTypeCasteCertificate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, mustText(t, result.Fields, "caste_category"))
		})
	}
}

func TestExtractDomicile(t *testing.T) {
	text := "Domicile Certificate\nDistrict: Pune\nState: Maharashtra\nApplicant Name: Sunita Devi"

	result, err := NewRegistry().Extract(text, constants.DocTypeDomicile)
	require.NoError(t, err)

	assert.Equal(t, "Sunita Devi", mustText(t, result.Fields, "applicant_name"))
	assert.Equal(t, "Maharashtra", mustText(t, result.Fields, "state"))
	assert.Equal(t, "Pune", mustText(t, result.Fields, "district"))
	assert.Equal(t, 100.0, result.Confidence)
}

func TestExtractCropInsurance(t *testing.T) {
	text := "Policy Number: PMFBY/2024/001\nSum Insured: ₹50,000\nPremium: Rs 2,400\nSeason: Kharif\nCrop: Wheat"

	result, err := NewRegistry().Extract(text, constants.DocTypeCropInsurance)
	require.NoError(t, err)

	assert.Equal(t, "PMFBY/2024/001", mustText(t, result.Fields, "policy_number"))
	assert.Equal(t, 50000.0, mustNumber(t, result.Fields, "insured_amount"))
	assert.Equal(t, 2400.0, mustNumber(t, result.Fields, "premium"))
	assert.Equal(t, "Wheat", mustText(t, result.Fields, "crop_name"))
	assert.Equal(t, 100.0, result.Confidence)
}

func TestExtractDeathCertificate(t *testing.T) {
	text := "Date of Death: 12/01/2023\nPlace of Death: Pune, Maharashtra\nName of Deceased: Kashinath Pawar"

	result, err := NewRegistry().Extract(text, constants.DocTypeDeathCertificate)
	require.NoError(t, err)

	assert.Equal(t, "Kashinath Pawar", mustText(t, result.Fields, "deceased_name"))
	assert.Equal(t, "2023-01-12", mustText(t, result.Fields, "date_of_death"))
	assert.Equal(t, "Pune, Maharashtra", mustText(t, result.Fields, "place_of_death"))
	assert.Equal(t, 100.0, result.Confidence)
}

func TestExtractNoMatches(t *testing.T) {
	result, err := NewRegistry().Extract("completely unrelated text", constants.DocTypeAadhaar)
	require.NoError(t, err)
	assert.Empty(t, result.Fields)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestExtractUnknownType(t *testing.T) {
	_, err := NewRegistry().Extract("anything", constants.DocumentType("ration_card"))
	assert.Error(t, err)
}

type stubExtractor struct {
	fields Fields
}

func (s stubExtractor) Extract(string) Fields    { return s.fields }
func (s stubExtractor) Clean(f Fields) Fields    { return f }
func (s stubExtractor) RequiredFields() []string { return nil }

func TestRegistryBaselineConfidence(t *testing.T) {
	dt := constants.DocTypeDomicile
	registry := NewRegistry(
		WithBaselineConfidence(65),
		WithExtractor(dt, stubExtractor{fields: Fields{"state": TextValue("Goa")}}),
	)

	result, err := registry.Extract("irrelevant", dt)
	require.NoError(t, err)
	assert.Equal(t, 65.0, result.Confidence)
}

func TestCleanTruncatesLongText(t *testing.T) {
	long := make([]byte, 700)
	for i := range long {
		long[i] = 'a'
	}
	ex := &patternExtractor{maxLen: 200}
	fields := ex.Clean(Fields{"notes": TextValue(string(long))})
	s, ok := fields.Text("notes")
	require.True(t, ok)
	assert.Len(t, s, 200)
}
