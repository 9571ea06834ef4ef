package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCriteria(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "full vocabulary",
			payload: `{"age_min": 18, "age_max": 60, "annual_income_max": 100000, "land_holding_min": 1, "caste_allowed": ["SC", "ST"], "gender": "female"}`,
		},
		{
			name:    "empty object",
			payload: `{}`,
		},
		{
			name:    "unknown key rejected",
			payload: `{"minimum_age": 18}`,
			wantErr: true,
		},
		{
			name:    "wrong type rejected",
			payload: `{"age_min": "eighteen"}`,
			wantErr: true,
		},
		{
			name:    "negative bound rejected",
			payload: `{"annual_income_max": -1}`,
			wantErr: true,
		},
		{
			name:    "empty caste list rejected",
			payload: `{"caste_allowed": []}`,
			wantErr: true,
		},
		{
			name:    "malformed json rejected",
			payload: `{"age_min": `,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCriteria([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCriteriaEmptyPayload(t *testing.T) {
	assert.NoError(t, ValidateCriteria(nil))
}
