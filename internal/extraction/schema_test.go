package extraction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "minimal object",
			payload: `{}`,
			wantErr: false,
		},
		{
			name: "typical payload",
			payload: `{
				"category": "장학",
				"qualifications": {"gpa_min": "3.0"},
				"key_dates": [{"key_date_type": "마감", "key_date": "3월 15일"}],
				"hashtags": ["#장학"]
			}`,
			wantErr: false,
		},
		{
			name:    "string qualifications allowed",
			payload: `{"qualifications": "학부 재학생"}`,
			wantErr: false,
		},
		{
			name:    "null fields allowed",
			payload: `{"category": null, "qualifications": null, "key_dates": null}`,
			wantErr: false,
		},
		{
			name:    "numeric category rejected",
			payload: `{"category": 3}`,
			wantErr: true,
		},
		{
			name:    "key_dates must hold objects",
			payload: `{"key_dates": ["3월 15일"]}`,
			wantErr: true,
		},
		{
			name:    "hashtags must be an array",
			payload: `{"hashtags": "#장학"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
				assert.NotEmpty(t, verr.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
