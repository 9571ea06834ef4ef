package extract

import (
	"regexp"
	"strings"
)

type bankPassbookExtractor struct {
	patternExtractor
}

func newBankPassbookExtractor() *bankPassbookExtractor {
	return &bankPassbookExtractor{patternExtractor{
		specs: []fieldSpec{
			{name: "account_number", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)a/?c\.?\s*(?:no\.?|number)[:\s]*(\d{9,18})`),
				regexp.MustCompile(`(?i)account\s*(?:no\.?|number)[:\s]*(\d{9,18})`),
				regexp.MustCompile(`\b(\d{9,18})\b`),
			}},
			{name: "ifsc_code", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bifsc\s*(?:code)?[:\s]*([A-Za-z]{4}0[A-Za-z0-9]{6})\b`),
			}},
			{name: "bank_name", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)bank\s*name[:\s]*([A-Z][A-Za-z ]{2,60})`),
				regexp.MustCompile(`(?i)\b([A-Z][A-Za-z ]{1,40}bank(?:\s+of\s+[A-Za-z]+)?)\b`),
			}},
			{name: "branch", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)branch[:\s]*([A-Za-z][A-Za-z ,]{1,60})`),
			}},
			{name: "holder_name", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(?:account\s*holder|customer\s*name|name)[:\s]*([A-Z][A-Za-z \.]{2,60})`),
			}},
		},
		required: []string{"account_number", "ifsc_code"},
		maxLen:   200,
	}}
}

func (e *bankPassbookExtractor) Clean(fields Fields) Fields {
	if s, ok := fields.Text("ifsc_code"); ok {
		fields["ifsc_code"] = TextValue(strings.ToUpper(s))
	}
	return e.patternExtractor.Clean(fields)
}
