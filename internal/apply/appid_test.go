package apply

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var appIDPattern = regexp.MustCompile(`^APP\d{8}-[0-9A-F]{6}$`)

func TestNewApplicationIDFormat(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	id := NewApplicationID(now)
	assert.Regexp(t, appIDPattern, id)
	assert.Equal(t, "APP20260830-", id[:12])
}

func TestNewApplicationIDUsesUTCDate(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	// 01:30 IST on the 31st is still the 30th in UTC.
	now := time.Date(2026, 8, 31, 1, 30, 0, 0, kolkata)
	id := NewApplicationID(now)
	assert.Equal(t, "APP20260830-", id[:12])
}

func TestNewApplicationIDSuffixVaries(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		seen[NewApplicationID(now)] = true
	}
	// 64 draws from a 24-bit space collide with negligible probability.
	assert.Greater(t, len(seen), 60)
}
