package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "iso form", input: "1985-06-15", want: "1985-06-15", wantOK: true},
		{name: "iso with slashes", input: "1985/6/15", want: "1985-06-15", wantOK: true},
		{name: "day first", input: "15-06-1985", want: "1985-06-15", wantOK: true},
		{name: "day first with slashes", input: "15/06/1985", want: "1985-06-15", wantOK: true},
		{name: "single digit day and month", input: "5/7/2001", want: "2001-07-05", wantOK: true},
		{name: "two digit year below pivot", input: "01-01-69", want: "2069-01-01", wantOK: true},
		{name: "two digit year at pivot", input: "01-01-70", want: "1970-01-01", wantOK: true},
		{name: "two digit year above pivot", input: "15-06-85", want: "1985-06-15", wantOK: true},
		{name: "padded input", input: "  15-06-1985  ", want: "1985-06-15", wantOK: true},
		{name: "month name form unrecognized", input: "15th June 1985", want: "15th June 1985", wantOK: false},
		{name: "garbage", input: "not a date", want: "not a date", wantOK: false},
		{name: "empty", input: "", want: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{name: "plain", input: "45000", want: 45000, wantOK: true},
		{name: "indian grouping", input: "1,50,000", want: 150000, wantOK: true},
		{name: "rupee symbol", input: "₹ 24000.50", want: 24000.50, wantOK: true},
		{name: "rs prefix", input: "Rs. 5000", want: 5000, wantOK: true},
		{name: "decimal", input: "5.5", want: 5.5, wantOK: true},
		{name: "not a number", input: "five thousand", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("", 5))
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	// A Devanagari rune straddling the byte bound must be dropped whole,
	// never split into an orphan byte.
	s := strings.Repeat("a", 199) + "नमस्ते"
	got := Truncate(s, 200)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 199), got)

	// A cut landing on a rune boundary keeps the whole prefix.
	got = Truncate("₹₹₹", 6)
	assert.Equal(t, "₹₹", got)
	assert.True(t, utf8.ValidString(got))

	// max smaller than the first rune yields the empty string.
	assert.Equal(t, "", Truncate("₹100", 2))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "Ramesh Kumar", collapseSpaces("  Ramesh   Kumar \n"))
	assert.Equal(t, "", collapseSpaces("   "))
}
