// Package types defines the shared data model for eligibility matching and
// temporal window extraction: user profiles, extracted qualification records,
// suitability verdicts and time windows.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StringOrNumber decodes a JSON string or number into its textual form.
// Profile fields such as gpa arrive as either ("3.8" or 3.8) depending on
// the client, so the raw text is kept and parsed later by the normalizer.
type StringOrNumber string

// UnmarshalJSON accepts a JSON string, number, or null.
func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringOrNumber(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", trimmed)
	}
	*s = StringOrNumber(num.String())
	return nil
}

// String returns the textual form.
func (s StringOrNumber) String() string { return string(s) }

// UserProfile is the raw, externally owned profile supplied per request.
// Every field is free text; the matcher never mutates it and tolerates
// missing fields, non-numeric text in numeric fields, and unrecognized
// grade-level expressions.
type UserProfile struct {
	GradeLevel      string                    `json:"grade_level,omitempty" validate:"omitempty,max=60"`
	GPA             StringOrNumber            `json:"gpa,omitempty" validate:"omitempty,max=20"`
	IncomeBracket   string                    `json:"income_bracket,omitempty" validate:"omitempty,max=60"`
	Department      string                    `json:"department,omitempty" validate:"omitempty,max=80"`
	LanguageScores  map[string]StringOrNumber `json:"language_scores,omitempty" validate:"omitempty,dive,max=20"`
	MilitaryService string                    `json:"military_service,omitempty" validate:"omitempty,max=60"`
	Gender          string                    `json:"gender,omitempty" validate:"omitempty,max=30"`
}

// NormalizedProfile is the canonical comparable view derived from a
// UserProfile. Derivation is pure and total: unparseable text degrades to
// the least-restrictive value instead of failing the whole profile.
type NormalizedProfile struct {
	Level           string            // "학부", "대학원", or "N/A"
	Semester        int               // 1-based semester count, 0 = unknown
	GPA             float64           // 0.0 when unparseable
	Income          int               // income bracket, 99 = unknown
	Department      string            // raw department text
	LanguageScores  map[string]string // canonical test key -> score/grade text
	MilitaryService string
	Gender          string
}

var validate = validator.New()

// Validate reports structurally invalid profile input. The engines stay
// total regardless; this exists for callers that want early diagnostics
// before running the matcher.
func (p *UserProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid profile fields: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}
