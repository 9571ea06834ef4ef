package extract

// Kind tags a Value with how (and whether) it was parsed.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
	// KindUnparsedNumber marks a numeric field whose raw match failed
	// coercion. It exports as 0.0, so callers must treat 0.0 as ambiguous
	// between "zero" and "failed parse".
	KindUnparsedNumber
	// KindUnparsedDate marks a date field in an unrecognized format. It
	// exports as the raw text truncated to 10 characters.
	KindUnparsedDate
)

// Value is a tagged field value. Parse failures stay distinguishable from
// real zeros internally and only degrade to bare defaults in Export.
type Value struct {
	kind Kind
	text string
	num  float64
	raw  string
}

func TextValue(s string) Value   { return Value{kind: KindText, text: s} }
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }
func DateValue(s string) Value   { return Value{kind: KindDate, text: s} }

func UnparsedNumber(raw string) Value { return Value{kind: KindUnparsedNumber, raw: raw} }
func UnparsedDate(raw string) Value   { return Value{kind: KindUnparsedDate, raw: raw} }

func (v Value) Kind() Kind { return v.kind }

// Number returns the numeric value and whether it was actually parsed.
func (v Value) Number() (float64, bool) {
	if v.kind == KindNumber {
		return v.num, true
	}
	return 0, false
}

// Text returns the string value and whether it was actually parsed.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindText, KindDate:
		return v.text, true
	}
	return "", false
}

// Raw returns the unparsed raw match, if any.
func (v Value) Raw() string { return v.raw }

// Export degrades the tagged value to its serialized form: unparsed numbers
// become 0.0, unparsed dates become the raw text truncated to 10 characters.
func (v Value) Export() any {
	switch v.kind {
	case KindText, KindDate:
		return v.text
	case KindNumber:
		return v.num
	case KindUnparsedNumber:
		return 0.0
	case KindUnparsedDate:
		return Truncate(v.raw, 10)
	}
	return nil
}

// Fields is one extracted field-set, keyed by field name.
type Fields map[string]Value

// Export flattens the field-set for storage, degrading unparsed values.
func (f Fields) Export() map[string]any {
	out := make(map[string]any, len(f))
	for name, v := range f {
		out[name] = v.Export()
	}
	return out
}

// Number returns a parsed numeric field, if present.
func (f Fields) Number(name string) (float64, bool) {
	v, ok := f[name]
	if !ok {
		return 0, false
	}
	return v.Number()
}

// Text returns a parsed string field, if present.
func (f Fields) Text(name string) (string, bool) {
	v, ok := f[name]
	if !ok {
		return "", false
	}
	return v.Text()
}
