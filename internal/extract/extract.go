package extract

import (
	"fmt"
	"regexp"

	"github.com/chandrashekharddev/agroscheme/constants"
)

// Extractor converts recognized document text into a typed field-set.
// Implementations are pure: no I/O, no shared mutable state.
type Extractor interface {
	Extract(text string) Fields
	Clean(fields Fields) Fields
	RequiredFields() []string
}

// Result pairs an extracted field-set with its confidence estimate (0-100).
type Result struct {
	Fields     Fields
	Confidence float64
}

// baselineConfidence applies when a document type defines no required fields.
const baselineConfidence = 80

// fieldKind drives coercion of a pattern match.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldDate
)

// fieldSpec is one field with its ordered candidate patterns. The first
// pattern that matches wins; there is no scoring or cross-validation.
type fieldSpec struct {
	name     string
	kind     fieldKind
	patterns []*regexp.Regexp
}

// patternExtractor is the shared pattern-driven extractor. Document types
// with extra reconciliation (land areas, ID normalization) wrap it.
type patternExtractor struct {
	specs    []fieldSpec
	required []string
	maxLen   int
}

func (p *patternExtractor) Extract(text string) Fields {
	fields := make(Fields, len(p.specs))
	for _, spec := range p.specs {
		raw, ok := firstMatch(text, spec.patterns)
		if !ok {
			continue
		}
		switch spec.kind {
		case fieldNumber:
			if f, ok := ParseAmount(raw); ok {
				fields[spec.name] = NumberValue(f)
			} else {
				fields[spec.name] = UnparsedNumber(raw)
			}
		case fieldDate:
			if d, ok := NormalizeDate(raw); ok {
				fields[spec.name] = DateValue(d)
			} else {
				fields[spec.name] = UnparsedDate(raw)
			}
		default:
			fields[spec.name] = TextValue(collapseSpaces(raw))
		}
	}
	return fields
}

func (p *patternExtractor) Clean(fields Fields) Fields {
	max := p.maxLen
	if max <= 0 {
		max = 200
	}
	for name, v := range fields {
		if v.Kind() == KindText {
			if s, ok := v.Text(); ok {
				fields[name] = TextValue(Truncate(s, max))
			}
		}
	}
	return fields
}

func (p *patternExtractor) RequiredFields() []string {
	return p.required
}

func firstMatch(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return m[1], true
		}
		return m[0], true
	}
	return "", false
}

// Registry maps document types to their extractors. Built once at startup
// and passed in explicitly so tests can substitute tables.
type Registry struct {
	extractors map[constants.DocumentType]Extractor
	baseline   float64
}

// Option configures a Registry.
type Option func(*Registry)

// WithBaselineConfidence overrides the confidence applied to types without
// required fields.
func WithBaselineConfidence(c float64) Option {
	return func(r *Registry) {
		if c > 0 {
			r.baseline = c
		}
	}
}

// WithExtractor registers (or replaces) the extractor for one document type.
func WithExtractor(dt constants.DocumentType, ex Extractor) Option {
	return func(r *Registry) { r.extractors[dt] = ex }
}

// NewRegistry builds the default registry covering the full document catalog.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		extractors: map[constants.DocumentType]Extractor{
			constants.DocTypeAadhaar:           newAadhaarExtractor(),
			constants.DocTypePAN:               newPANExtractor(),
			constants.DocTypeLandRecord:        newLandRecordExtractor(),
			constants.DocTypeBankPassbook:      newBankPassbookExtractor(),
			constants.DocTypeIncomeCertificate: newIncomeCertificateExtractor(),
			constants.DocTypeCasteCertificate:  newCasteCertificateExtractor(),
			constants.DocTypeDomicile:          newDomicileExtractor(),
			constants.DocTypeCropInsurance:     newCropInsuranceExtractor(),
			constants.DocTypeDeathCertificate:  newDeathCertificateExtractor(),
		},
		baseline: baselineConfidence,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Lookup returns the extractor registered for a document type.
func (r *Registry) Lookup(dt constants.DocumentType) (Extractor, bool) {
	ex, ok := r.extractors[dt]
	return ex, ok
}

// Extract runs the registered extractor for the document type and scores
// confidence as populated-required / total-required * 100, capped at 100.
func (r *Registry) Extract(text string, dt constants.DocumentType) (Result, error) {
	ex, ok := r.extractors[dt]
	if !ok {
		return Result{}, fmt.Errorf("no extractor registered for document type %q", dt)
	}
	fields := ex.Clean(ex.Extract(text))

	required := ex.RequiredFields()
	if len(required) == 0 {
		return Result{Fields: fields, Confidence: r.baseline}, nil
	}
	populated := 0
	for _, name := range required {
		if _, ok := fields[name]; ok {
			populated++
		}
	}
	confidence := float64(populated) / float64(len(required)) * 100
	if confidence > 100 {
		confidence = 100
	}
	return Result{Fields: fields, Confidence: confidence}, nil
}
