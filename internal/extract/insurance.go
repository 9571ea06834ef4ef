package extract

import "regexp"

func newCropInsuranceExtractor() *patternExtractor {
	return &patternExtractor{
		specs: []fieldSpec{
			{name: "policy_number", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)policy\s*(?:no\.?|number)[:\s]*([A-Za-z0-9/\-]+)`),
			}},
			{name: "crop_name", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)crop(?:\s*name)?[:\s]*([A-Za-z][A-Za-z ]{1,40})`),
			}},
			{name: "insured_amount", kind: fieldNumber, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(?:sum\s*insured|insured\s*(?:amount|sum))[:\s]*(?:rs\.?|inr|₹)?\s*([0-9,]+(?:\.[0-9]+)?)`),
			}},
			{name: "premium", kind: fieldNumber, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)premium[:\s]*(?:rs\.?|inr|₹)?\s*([0-9,]+(?:\.[0-9]+)?)`),
			}},
			{name: "season", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(kharif|rabi|zaid)\b`),
			}},
			{name: "valid_until", kind: fieldDate, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)valid\s*(?:till|until|upto)[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
				regexp.MustCompile(`(?i)valid\s*(?:till|until|upto)[:\s]*(\d{4}[-/]\d{1,2}[-/]\d{1,2})`),
			}},
		},
		required: []string{"policy_number", "insured_amount"},
		maxLen:   200,
	}
}
