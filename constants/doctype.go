package constants

import "strings"

// DocumentType is the canonical catalog of farmer document types.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	DocTypeAadhaar           DocumentType = "aadhaar"
	DocTypePAN               DocumentType = "pan"
	DocTypeLandRecord        DocumentType = "land_record"
	DocTypeBankPassbook      DocumentType = "bank_passbook"
	DocTypeIncomeCertificate DocumentType = "income_certificate"
	DocTypeCasteCertificate  DocumentType = "caste_certificate"
	DocTypeDomicile          DocumentType = "domicile"
	DocTypeCropInsurance     DocumentType = "crop_insurance"
	DocTypeDeathCertificate  DocumentType = "death_certificate"
)

var allDocumentTypes = []DocumentType{
	DocTypeAadhaar,
	DocTypePAN,
	DocTypeLandRecord,
	DocTypeBankPassbook,
	DocTypeIncomeCertificate,
	DocTypeCasteCertificate,
	DocTypeDomicile,
	DocTypeCropInsurance,
	DocTypeDeathCertificate,
}

// DocumentTypes returns the full catalog in declaration order.
func DocumentTypes() []DocumentType {
	out := make([]DocumentType, len(allDocumentTypes))
	copy(out, allDocumentTypes)
	return out
}

// DocumentTypeStrings returns the catalog as plain strings for enum validation.
func DocumentTypeStrings() []string {
	out := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		out[i] = string(dt)
	}
	return out
}

// ParseDocumentType canonicalizes a raw document-type string.
func ParseDocumentType(input string) (DocumentType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, dt := range allDocumentTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}
	return "", false
}
