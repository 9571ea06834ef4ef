package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueExport(t *testing.T) {
	assert.Equal(t, "Ramesh Kumar", TextValue("Ramesh Kumar").Export())
	assert.Equal(t, 45000.0, NumberValue(45000).Export())
	assert.Equal(t, "1985-06-15", DateValue("1985-06-15").Export())

	// Unparsed numbers degrade to 0.0, so exported zero is ambiguous between
	// a real zero and a failed parse.
	assert.Equal(t, 0.0, UnparsedNumber("forty five").Export())

	// Unparsed dates keep the raw text, bounded to 10 characters.
	assert.Equal(t, "15th June ", UnparsedDate("15th June 1985").Export())
	assert.Equal(t, "Jan 2023", UnparsedDate("Jan 2023").Export())
}

func TestValueAccessors(t *testing.T) {
	n, ok := NumberValue(5.5).Number()
	assert.True(t, ok)
	assert.Equal(t, 5.5, n)

	_, ok = UnparsedNumber("x").Number()
	assert.False(t, ok)

	s, ok := DateValue("2023-01-12").Text()
	assert.True(t, ok)
	assert.Equal(t, "2023-01-12", s)

	_, ok = UnparsedDate("x").Text()
	assert.False(t, ok)
}

func TestFieldsExport(t *testing.T) {
	fields := Fields{
		"name":          TextValue("Ramesh"),
		"annual_income": UnparsedNumber("bad"),
		"issue_date":    DateValue("2023-01-12"),
	}
	out := fields.Export()
	assert.Equal(t, map[string]any{
		"name":          "Ramesh",
		"annual_income": 0.0,
		"issue_date":    "2023-01-12",
	}, out)
}
