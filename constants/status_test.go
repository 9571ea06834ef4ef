package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusPending, StatusUnderReview, true},
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusDocsNeeded, true},
		{StatusPending, StatusPending, false},
		{StatusUnderReview, StatusApproved, true},
		{StatusUnderReview, StatusRejected, true},
		{StatusUnderReview, StatusDocsNeeded, false},
		{StatusUnderReview, StatusPending, false},
		{StatusDocsNeeded, StatusApproved, true},
		{StatusDocsNeeded, StatusRejected, true},
		{StatusDocsNeeded, StatusUnderReview, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusUnderReview, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestParseApplicationStatus(t *testing.T) {
	for _, s := range []ApplicationStatus{StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusDocsNeeded} {
		got, ok := ParseApplicationStatus(string(s))
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	// Stored values are exact; lowercase does not round-trip.
	_, ok := ParseApplicationStatus("pending")
	assert.False(t, ok)
	_, ok = ParseApplicationStatus("ARCHIVED")
	assert.False(t, ok)
	_, ok = ParseApplicationStatus("")
	assert.False(t, ok)
}

func TestParseDocumentType(t *testing.T) {
	for _, dt := range DocumentTypes() {
		got, ok := ParseDocumentType(string(dt))
		assert.True(t, ok)
		assert.Equal(t, dt, got)
	}

	got, ok := ParseDocumentType("AADHAAR")
	assert.True(t, ok)
	assert.Equal(t, DocTypeAadhaar, got)

	_, ok = ParseDocumentType("passport")
	assert.False(t, ok)
}
