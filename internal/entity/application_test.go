package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandrashekharddev/agroscheme/constants"
)

func TestHistoryRoundTrip(t *testing.T) {
	amount := 6000.0
	history := []StatusChange{
		{Status: constants.StatusPending, Timestamp: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)},
		{Status: constants.StatusApproved, Timestamp: time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC), ApprovedAmount: &amount},
	}

	raw, err := EncodeHistory(history)
	require.NoError(t, err)

	decoded, err := DecodeHistory(raw)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, constants.StatusPending, decoded[0].Status)
	assert.Nil(t, decoded[0].ApprovedAmount)
	require.NotNil(t, decoded[1].ApprovedAmount)
	assert.Equal(t, 6000.0, *decoded[1].ApprovedAmount)
}

func TestDecodeHistoryEmpty(t *testing.T) {
	decoded, err := DecodeHistory(nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecodeHistoryCorrupt(t *testing.T) {
	_, err := DecodeHistory(json.RawMessage(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestDecodeFields(t *testing.T) {
	doc := &FarmerDocument{Fields: json.RawMessage(`{"aadhaar_number": "123456789012", "age": 41}`)}
	fields, err := doc.DecodeFields()
	require.NoError(t, err)
	assert.Equal(t, "123456789012", fields["aadhaar_number"])
	assert.Equal(t, 41.0, fields["age"])
}

func TestDecodeFieldsEmpty(t *testing.T) {
	doc := &FarmerDocument{}
	fields, err := doc.DecodeFields()
	require.NoError(t, err)
	assert.Empty(t, fields)
}
