package eligibility

import (
	"fmt"
	"strings"

	"github.com/chandrashekharddev/agroscheme/constants"
)

// Verdict is the computed eligibility result. Ephemeral; its serialized form
// is embedded into an application's payload at apply time for audit.
type Verdict struct {
	// Eligible is the final verdict: criteria gate AND document gate.
	Eligible bool `json:"eligible"`
	// CriteriaMet is the criteria gate alone: no criterion the farmer had
	// data for was failed.
	CriteriaMet          bool     `json:"criteria_met"`
	MatchPercentage      float64  `json:"match_percentage"`
	MatchedCriteria      []string `json:"matched_criteria,omitempty"`
	MissingCriteria      []string `json:"missing_criteria,omitempty"`
	SkippedCriteria      []string `json:"skipped_criteria,omitempty"`
	Reasons              []string `json:"reasons,omitempty"`
	MissingDocuments     []string `json:"missing_documents,omitempty"`
	HasRequiredDocuments bool     `json:"has_required_documents"`
}

// Evaluate decides whether a farmer's merged profile satisfies a scheme's
// criteria and document requirements.
//
// Criterion policy is optimistic: a criterion the farmer has no data for is
// skipped entirely. Skips count toward the match-percentage denominator but
// never appear in MissingCriteria and never disqualify on their own; only
// criteria the farmer had data for and failed can block the criteria gate.
// The document gate is computed independently and both gates must pass.
func Evaluate(profile Profile, criteria Criteria, requiredDocuments []string, available map[constants.DocumentType]bool, keywords KeywordTable) Verdict {
	v := Verdict{}
	total := criteria.Count()

	check := func(name string, have bool, pass bool, failReason string) {
		if !have {
			v.SkippedCriteria = append(v.SkippedCriteria, name)
			v.Reasons = append(v.Reasons, fmt.Sprintf("no data to verify %s", name))
			return
		}
		if pass {
			v.MatchedCriteria = append(v.MatchedCriteria, name)
			return
		}
		v.MissingCriteria = append(v.MissingCriteria, name)
		v.Reasons = append(v.Reasons, failReason)
	}

	if criteria.AgeMin != nil {
		have := profile.Age != nil
		pass := have && float64(*profile.Age) >= *criteria.AgeMin
		check(KeyAgeMin, have, pass, fmt.Sprintf("age below minimum %g", *criteria.AgeMin))
	}
	if criteria.AgeMax != nil {
		have := profile.Age != nil
		pass := have && float64(*profile.Age) <= *criteria.AgeMax
		check(KeyAgeMax, have, pass, fmt.Sprintf("age above maximum %g", *criteria.AgeMax))
	}
	if criteria.AnnualIncomeMax != nil {
		have := profile.AnnualIncome != nil
		pass := have && *profile.AnnualIncome <= *criteria.AnnualIncomeMax
		check(KeyAnnualIncomeMax, have, pass, fmt.Sprintf("annual income above maximum %g", *criteria.AnnualIncomeMax))
	}
	if criteria.LandHoldingMin != nil {
		have := profile.LandAcres != nil
		pass := have && *profile.LandAcres >= *criteria.LandHoldingMin
		check(KeyLandHoldingMin, have, pass, fmt.Sprintf("land holding below minimum %g acres", *criteria.LandHoldingMin))
	}
	if len(criteria.CasteAllowed) > 0 {
		have := profile.Caste != nil
		pass := have && casteAllowed(*profile.Caste, criteria.CasteAllowed)
		check(KeyCasteAllowed, have, pass, "caste category not in allowed list")
	}
	if criteria.Gender != nil {
		have := profile.Gender != nil
		pass := have && genderMatches(*profile.Gender, *criteria.Gender)
		check(KeyGender, have, pass, fmt.Sprintf("scheme restricted to gender %q", *criteria.Gender))
	}

	if total == 0 {
		// Vacuous criteria pass.
		v.MatchPercentage = 100
		v.CriteriaMet = true
	} else {
		v.MatchPercentage = float64(len(v.MatchedCriteria)) / float64(total) * 100
		v.CriteriaMet = len(v.MissingCriteria) == 0
	}

	v.MissingDocuments = MatchRequiredDocuments(requiredDocuments, available, keywords)
	v.HasRequiredDocuments = len(v.MissingDocuments) == 0
	if !v.HasRequiredDocuments {
		v.Reasons = append(v.Reasons, fmt.Sprintf("missing required documents: %s", strings.Join(v.MissingDocuments, ", ")))
	}

	v.Eligible = v.CriteriaMet && v.HasRequiredDocuments
	return v
}

func casteAllowed(caste string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(caste, a) {
			return true
		}
	}
	return false
}

func genderMatches(gender, schemeGender string) bool {
	if strings.EqualFold(schemeGender, GenderAll) {
		return true
	}
	return strings.EqualFold(gender, schemeGender)
}
