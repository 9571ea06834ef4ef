package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chandrashekharddev/agroscheme/constants"
)

func TestMatchRequiredDocuments(t *testing.T) {
	tests := []struct {
		name        string
		required    []string
		available   map[constants.DocumentType]bool
		wantMissing []string
	}{
		{
			name:        "no requirements",
			required:    nil,
			wantMissing: nil,
		},
		{
			name:     "keyword match case insensitive",
			required: []string{"AADHAAR card copy"},
			available: map[constants.DocumentType]bool{
				constants.DocTypeAadhaar: true,
			},
			wantMissing: nil,
		},
		{
			name:     "alternate spelling",
			required: []string{"Aadhar Card"},
			available: map[constants.DocumentType]bool{
				constants.DocTypeAadhaar: true,
			},
			wantMissing: nil,
		},
		{
			name:     "land shorthand 7/12",
			required: []string{"7/12 Extract"},
			available: map[constants.DocumentType]bool{
				constants.DocTypeLandRecord: true,
			},
			wantMissing: nil,
		},
		{
			name:      "document type not uploaded",
			required:  []string{"Income Certificate"},
			available: map[constants.DocumentType]bool{},
			wantMissing: []string{
				"Income Certificate",
			},
		},
		{
			name:     "unrecognized wording stays missing",
			required: []string{"Ration Card"},
			available: map[constants.DocumentType]bool{
				constants.DocTypeAadhaar: true,
			},
			wantMissing: []string{"Ration Card"},
		},
		{
			name:     "missing preserved in original order",
			required: []string{"Caste Certificate", "Bank Passbook", "Death Certificate"},
			available: map[constants.DocumentType]bool{
				constants.DocTypeBankPassbook: true,
			},
			wantMissing: []string{"Caste Certificate", "Death Certificate"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchRequiredDocuments(tt.required, tt.available, DefaultKeywords())
			assert.Equal(t, tt.wantMissing, got)
		})
	}
}

func TestRequirementSatisfiedIgnoresUnavailableTypes(t *testing.T) {
	// The keyword matches but the document type is not uploaded.
	ok := requirementSatisfied("Aadhaar Card", map[constants.DocumentType]bool{}, DefaultKeywords())
	assert.False(t, ok)
}
