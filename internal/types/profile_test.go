package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOrNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{"string", `"3.8"`, "3.8", false},
		{"number", `3.8`, "3.8", false},
		{"integer", `850`, "850", false},
		{"null", `null`, "", false},
		{"empty string", `""`, "", false},
		{"object rejected", `{"a": 1}`, "", true},
		{"array rejected", `[1]`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringOrNumber
			err := json.Unmarshal([]byte(tt.data), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestUserProfile_DecodeMixedFieldTypes(t *testing.T) {
	data := []byte(`{
		"grade_level": "학부 3학년",
		"gpa": 3.85,
		"income_bracket": "3분위",
		"language_scores": {"TOEIC": 850, "OPIc": "IH"}
	}`)

	var p UserProfile
	require.NoError(t, json.Unmarshal(data, &p))

	assert.Equal(t, "학부 3학년", p.GradeLevel)
	assert.Equal(t, "3.85", p.GPA.String())
	assert.Equal(t, "850", p.LanguageScores["TOEIC"].String())
	assert.Equal(t, "IH", p.LanguageScores["OPIc"].String())
}

func TestUserProfile_Validate(t *testing.T) {
	t.Run("empty profile is valid", func(t *testing.T) {
		p := UserProfile{}
		assert.NoError(t, p.Validate())
	})

	t.Run("typical profile is valid", func(t *testing.T) {
		p := UserProfile{
			GradeLevel: "학부 3학년",
			GPA:        "3.8",
			Department: "경영학과",
		}
		assert.NoError(t, p.Validate())
	})

	t.Run("oversized field reported", func(t *testing.T) {
		p := UserProfile{Department: strings.Repeat("x", 120)}
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Department")
	})
}
