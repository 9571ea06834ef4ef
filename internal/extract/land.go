package extract

import "regexp"

// AcresPerHectare is the canonical land-area conversion factor, applied
// symmetrically in both directions (hectares*2.47 and acres/2.47).
const AcresPerHectare = 2.47

type landRecordExtractor struct {
	patternExtractor
}

func newLandRecordExtractor() *landRecordExtractor {
	return &landRecordExtractor{patternExtractor{
		specs: []fieldSpec{
			{name: "survey_number", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(?:survey|gat|khasra|khata)\s*(?:no\.?|number)[:\s]*([A-Za-z0-9/\-]+)`),
				regexp.MustCompile(`(?i)7/12\s*(?:extract)?\s*(?:no\.?|number)?[:\s]*([A-Za-z0-9/\-]+)`),
			}},
			{name: "land_area_acres", kind: fieldNumber, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)area[:\s]*([0-9,]+(?:\.[0-9]+)?)\s*acres?\b`),
				regexp.MustCompile(`(?i)\b([0-9,]+(?:\.[0-9]+)?)\s*acres?\b`),
			}},
			{name: "land_area_hectares", kind: fieldNumber, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)area[:\s]*([0-9,]+(?:\.[0-9]+)?)\s*(?:hectares?|ha)\b`),
				regexp.MustCompile(`(?i)\b([0-9,]+(?:\.[0-9]+)?)\s*(?:hectares?|ha)\b`),
			}},
			{name: "owner_name", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)owner(?:'s)?\s*name[:\s]*([A-Z][A-Za-z \.]{2,60})`),
				regexp.MustCompile(`(?i)name\s*of\s*(?:the\s*)?(?:owner|holder)[:\s]*([A-Z][A-Za-z \.]{2,60})`),
			}},
			{name: "village", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)village[:\s]*([A-Za-z][A-Za-z ]{1,40})`),
			}},
			{name: "district", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)district[:\s]*([A-Za-z][A-Za-z ]{1,40})`),
			}},
		},
		required: []string{"survey_number", "owner_name", "land_area_acres"},
		maxLen:   200,
	}}
}

// Clean reconciles the two area units: whichever is present populates the
// other using the canonical factor. Both present means both stay as parsed.
func (e *landRecordExtractor) Clean(fields Fields) Fields {
	acres, hasAcres := fields.Number("land_area_acres")
	hectares, hasHectares := fields.Number("land_area_hectares")
	switch {
	case hasHectares && !hasAcres:
		fields["land_area_acres"] = NumberValue(hectares * AcresPerHectare)
	case hasAcres && !hasHectares:
		fields["land_area_hectares"] = NumberValue(acres / AcresPerHectare)
	}
	return e.patternExtractor.Clean(fields)
}
