package eligibility

import (
	"strings"

	"github.com/chandrashekharddev/agroscheme/constants"
)

// KeywordTable maps document types to the keywords that identify them inside
// a scheme's human-readable requirement strings. Built once at startup and
// passed explicitly so tests can substitute tables.
type KeywordTable map[constants.DocumentType][]string

// DefaultKeywords returns the standard reconciliation table.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		constants.DocTypeAadhaar:           {"aadhaar", "aadhar", "uid"},
		constants.DocTypePAN:               {"pan"},
		constants.DocTypeLandRecord:        {"land", "7/12", "khasra", "khata", "patta"},
		constants.DocTypeBankPassbook:      {"bank", "passbook", "account"},
		constants.DocTypeIncomeCertificate: {"income"},
		constants.DocTypeCasteCertificate:  {"caste", "category certificate"},
		constants.DocTypeDomicile:          {"domicile", "residence"},
		constants.DocTypeCropInsurance:     {"insurance", "crop policy"},
		constants.DocTypeDeathCertificate:  {"death"},
	}
}

// MatchRequiredDocuments reconciles a scheme's requirement strings against
// the farmer's available document types. A requirement is satisfied when any
// keyword of any document type appears as a substring of the requirement
// text (case-insensitive) and that type is present. Missing requirements are
// returned in their original order and wording.
func MatchRequiredDocuments(required []string, available map[constants.DocumentType]bool, table KeywordTable) (missing []string) {
	for _, requirement := range required {
		if !requirementSatisfied(requirement, available, table) {
			missing = append(missing, requirement)
		}
	}
	return missing
}

func requirementSatisfied(requirement string, available map[constants.DocumentType]bool, table KeywordTable) bool {
	text := strings.ToLower(requirement)
	for docType, keywords := range table {
		if !available[docType] {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}
