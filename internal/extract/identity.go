package extract

import (
	"regexp"
	"strings"
)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:dob|date\s*of\s*birth|birth\s*date)[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	regexp.MustCompile(`(?i)(?:dob|date\s*of\s*birth|birth\s*date)[:\s]*(\d{4}[-/]\d{1,2}[-/]\d{1,2})`),
	regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{4})\b`),
}

type aadhaarExtractor struct {
	patternExtractor
}

func newAadhaarExtractor() *aadhaarExtractor {
	return &aadhaarExtractor{patternExtractor{
		specs: []fieldSpec{
			{name: "aadhaar_number", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)aadhaar\s*(?:no\.?|number)?[:\s]*(\d{4}\s?\d{4}\s?\d{4})`),
				regexp.MustCompile(`\b(\d{4}\s\d{4}\s\d{4})\b`),
				regexp.MustCompile(`\b(\d{12})\b`),
			}},
			{name: "name", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)name[:\s]+([A-Z][A-Za-z \.]{2,60})`),
			}},
			{name: "date_of_birth", kind: fieldDate, patterns: datePatterns},
			{name: "gender", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(male|female|transgender)\b`),
			}},
			{name: "address", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?is)address[:\s]*(.{10,400})`),
			}},
		},
		required: []string{"aadhaar_number", "name", "date_of_birth"},
		maxLen:   500,
	}}
}

func (e *aadhaarExtractor) Clean(fields Fields) Fields {
	if s, ok := fields.Text("aadhaar_number"); ok {
		fields["aadhaar_number"] = TextValue(strings.ReplaceAll(s, " ", ""))
	}
	if s, ok := fields.Text("gender"); ok {
		fields["gender"] = TextValue(strings.ToLower(s))
	}
	return e.patternExtractor.Clean(fields)
}

type panExtractor struct {
	patternExtractor
}

func newPANExtractor() *panExtractor {
	return &panExtractor{patternExtractor{
		specs: []fieldSpec{
			{name: "pan_number", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(?:pan|permanent\s*account\s*number)[:\s]*([A-Za-z]{5}\d{4}[A-Za-z])`),
				regexp.MustCompile(`\b([A-Z]{5}\d{4}[A-Z])\b`),
			}},
			{name: "name", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)name[:\s]+([A-Z][A-Za-z \.]{2,60})`),
			}},
			{name: "father_name", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)father'?s?\s*name[:\s]*([A-Z][A-Za-z \.]{2,60})`),
			}},
			{name: "date_of_birth", kind: fieldDate, patterns: datePatterns},
		},
		required: []string{"pan_number", "name"},
		maxLen:   200,
	}}
}

func (e *panExtractor) Clean(fields Fields) Fields {
	if s, ok := fields.Text("pan_number"); ok {
		fields["pan_number"] = TextValue(strings.ToUpper(s))
	}
	return e.patternExtractor.Clean(fields)
}
