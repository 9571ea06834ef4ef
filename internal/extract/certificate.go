package extract

import (
	"regexp"
	"strings"
)

var (
	applicantNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:applicant|holder)(?:'s)?\s*name[:\s]*([A-Z][A-Za-z \.]{2,60})`),
		regexp.MustCompile(`(?i)this\s*is\s*to\s*certify\s*that\s*(?:shri|smt|kum)?\.?\s*([A-Z][A-Za-z \.]{2,60})`),
		regexp.MustCompile(`(?i)name[:\s]+([A-Z][A-Za-z \.]{2,60})`),
	}
	certificateNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)certificate\s*(?:no\.?|number)[:\s]*([A-Za-z0-9/\-]+)`),
		regexp.MustCompile(`(?i)cert\.?\s*(?:no\.?|number)[:\s]*([A-Za-z0-9/\-]+)`),
	}
	issueDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:date\s*of\s*issue|issued?\s*(?:on|date))[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		regexp.MustCompile(`(?i)(?:date\s*of\s*issue|issued?\s*(?:on|date))[:\s]*(\d{4}[-/]\d{1,2}[-/]\d{1,2})`),
	}
)

func newIncomeCertificateExtractor() *patternExtractor {
	return &patternExtractor{
		specs: []fieldSpec{
			{name: "annual_income", kind: fieldNumber, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)annual\s*(?:family\s*)?income[:\s]*(?:rs\.?|inr|₹)?\s*([0-9,]+(?:\.[0-9]+)?)`),
				regexp.MustCompile(`(?i)income[:\s]*(?:rs\.?|inr|₹)?\s*([0-9,]+(?:\.[0-9]+)?)`),
				regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)\s*([0-9,]+(?:\.[0-9]+)?)`),
			}},
			{name: "applicant_name", kind: fieldText, patterns: applicantNamePatterns},
			{name: "certificate_number", kind: fieldText, patterns: certificateNumberPatterns},
			{name: "issue_date", kind: fieldDate, patterns: issueDatePatterns},
			{name: "issuing_authority", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)issu(?:ed\s*by|ing\s*authority)[:\s]*([A-Za-z][A-Za-z ,\.]{2,80})`),
				regexp.MustCompile(`(?i)(tehsildar|tahsildar|collector|sub[- ]divisional\s*officer)`),
			}},
		},
		required: []string{"annual_income", "applicant_name"},
		maxLen:   200,
	}
}

type casteCertificateExtractor struct {
	patternExtractor
}

func newCasteCertificateExtractor() *casteCertificateExtractor {
	return &casteCertificateExtractor{patternExtractor{
		specs: []fieldSpec{
			{name: "caste_category", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)category[:\s]*(SC|ST|OBC|EWS|General)\b`),
				regexp.MustCompile(`(?i)\b(scheduled\s*caste|scheduled\s*tribe|other\s*backward\s*class)\b`),
				regexp.MustCompile(`(?i)\b(SC|ST|OBC|EWS)\b`),
			}},
			{name: "caste", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)caste[:\s]*([A-Za-z][A-Za-z ]{1,40})`),
			}},
			{name: "applicant_name", kind: fieldText, patterns: applicantNamePatterns},
			{name: "certificate_number", kind: fieldText, patterns: certificateNumberPatterns},
			{name: "issue_date", kind: fieldDate, patterns: issueDatePatterns},
		},
		required: []string{"caste_category", "applicant_name"},
		maxLen:   200,
	}}
}

// Clean canonicalizes the category to the short uppercase form used by
// scheme criteria allow-lists.
func (e *casteCertificateExtractor) Clean(fields Fields) Fields {
	if s, ok := fields.Text("caste_category"); ok {
		switch strings.ToLower(collapseSpaces(s)) {
		case "scheduled caste":
			s = "SC"
		case "scheduled tribe":
			s = "ST"
		case "other backward class":
			s = "OBC"
		case "general":
			s = "General"
		default:
			s = strings.ToUpper(s)
		}
		fields["caste_category"] = TextValue(s)
	}
	return e.patternExtractor.Clean(fields)
}

func newDomicileExtractor() *patternExtractor {
	return &patternExtractor{
		specs: []fieldSpec{
			{name: "applicant_name", kind: fieldText, patterns: applicantNamePatterns},
			{name: "state", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)state\s*of[:\s]*([A-Za-z][A-Za-z ]{2,40})`),
				regexp.MustCompile(`(?i)state[:\s]*([A-Za-z][A-Za-z ]{2,40})`),
			}},
			{name: "district", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)district[:\s]*([A-Za-z][A-Za-z ]{1,40})`),
			}},
			{name: "certificate_number", kind: fieldText, patterns: certificateNumberPatterns},
			{name: "issue_date", kind: fieldDate, patterns: issueDatePatterns},
		},
		required: []string{"applicant_name", "state"},
		maxLen:   500,
	}
}

func newDeathCertificateExtractor() *patternExtractor {
	return &patternExtractor{
		specs: []fieldSpec{
			{name: "deceased_name", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(?:name\s*of\s*(?:the\s*)?deceased|deceased\s*name)[:\s]*([A-Z][A-Za-z \.]{2,60})`),
				regexp.MustCompile(`(?i)name[:\s]+([A-Z][A-Za-z \.]{2,60})`),
			}},
			{name: "date_of_death", kind: fieldDate, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)date\s*of\s*death[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
				regexp.MustCompile(`(?i)date\s*of\s*death[:\s]*(\d{4}[-/]\d{1,2}[-/]\d{1,2})`),
				regexp.MustCompile(`(?i)died\s*on[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
			}},
			{name: "place_of_death", kind: fieldText, patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)place\s*of\s*death[:\s]*([A-Za-z][A-Za-z ,]{1,60})`),
			}},
			{name: "certificate_number", kind: fieldText, patterns: certificateNumberPatterns},
		},
		required: []string{"deceased_name", "date_of_death"},
		maxLen:   200,
	}
}
