package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	reDateYMD = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	reDateDMY = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	reDateDMY2 = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{2})$`)

	reAmountJunk = strings.NewReplacer(",", "", " ", "", "₹", "")
)

// twoDigitYearPivot splits two-digit years: 00-69 -> 20YY, 70-99 -> 19YY.
const twoDigitYearPivot = 70

// NormalizeDate canonicalizes a recognized date string to YYYY-MM-DD.
// Recognized inputs: YYYY-MM-DD, YYYY/MM/DD, DD-MM-YYYY, DD/MM/YYYY and
// DD-MM-YY (two-digit years resolved with the pivot). Unrecognized formats
// return (input, false) so the caller can keep the raw text.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if m := reDateYMD.FindStringSubmatch(s); m != nil {
		return formatYMD(m[1], m[2], m[3]), true
	}
	if m := reDateDMY.FindStringSubmatch(s); m != nil {
		return formatYMD(m[3], m[2], m[1]), true
	}
	if m := reDateDMY2.FindStringSubmatch(s); m != nil {
		yy, _ := strconv.Atoi(m[3])
		year := 2000 + yy
		if yy >= twoDigitYearPivot {
			year = 1900 + yy
		}
		return formatYMD(strconv.Itoa(year), m[2], m[1]), true
	}
	return s, false
}

func formatYMD(y, m, d string) string {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseAmount coerces an OCR'd amount ("1,50,000", "₹ 24000.50") to a float.
func ParseAmount(s string) (float64, bool) {
	cleaned := reAmountJunk.Replace(strings.TrimSpace(s))
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "Rs."), "Rs")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Truncate bounds a string to max bytes without splitting a rune; the cut
// backs up to the nearest rune boundary so the result stays valid UTF-8.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// collapseSpaces squeezes runs of whitespace inside OCR'd names and addresses.
var reSpaces = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}
