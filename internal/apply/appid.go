package apply

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// maxIDRetries bounds suffix regeneration on application-ID collision.
// Exhausting it is fatal for the operation.
const maxIDRetries = 2

// NewApplicationID composes a human-facing identifier from a coarse UTC
// date stamp and an opaque random suffix, e.g. APP20260830-3F9A1C.
func NewApplicationID(now time.Time) string {
	return fmt.Sprintf("APP%s-%s", now.UTC().Format("20060102"), randomSuffix())
}

func randomSuffix() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// timestamp-derived suffix rather than panic.
		return fmt.Sprintf("%06X", time.Now().UnixNano()&0xFFFFFF)
	}
	return strings.ToUpper(hex.EncodeToString(b))
}
