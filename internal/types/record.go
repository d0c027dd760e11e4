package types

import "time"

// Qualification keys recognized in a QualificationRecord. Unknown keys are
// ignored by the matcher.
const (
	QualGPAMin       = "gpa_min"
	QualGradeLevel   = "grade_level"
	QualDepartment   = "department"
	QualIncomeStatus = "income_status"
	QualLanguage     = "language_requirements_text"
	QualMilitary     = "military_service"
	QualGender       = "gender"
)

// DateCandidate is one (type label, date text, iso value) triple surfaced
// from a qualification record's key-date fields.
type DateCandidate struct {
	TypeLabel string `json:"key_date_type,omitempty"`
	DateText  string `json:"key_date,omitempty"`
	ISOValue  string `json:"key_date_iso,omitempty"`
}

// QualificationRecord is the structured-extraction output for one notice.
// A nil or empty Qualifications map signals an informational, non-comparable
// notice. Values hold requirement free text; the empty string means
// "no constraint" (decoded from "N/A" and its sentinel spellings).
type QualificationRecord struct {
	Category       string            `json:"category,omitempty"`
	Qualifications map[string]string `json:"qualifications,omitempty"`
	KeyDates       []DateCandidate   `json:"key_dates,omitempty"`
	KeyDateType    string            `json:"key_date_type,omitempty"`
	KeyDate        string            `json:"key_date,omitempty"`
	KeyDateISO     string            `json:"key_date_iso,omitempty"`
	Hashtags       []string          `json:"hashtags,omitempty"`
}

// Comparable reports whether the record carries qualifications to match
// against. Informational notices (no qualifications sub-object) are not
// comparable.
func (r *QualificationRecord) Comparable() bool {
	return r != nil && len(r.Qualifications) > 0
}

// Requirement returns the requirement text for a dimension key, or the
// empty string when the dimension is unconstrained.
func (r *QualificationRecord) Requirement(key string) string {
	if r == nil || r.Qualifications == nil {
		return ""
	}
	return r.Qualifications[key]
}

// TimeWindow is the resolved actionable period for a notice, in UTC.
// When both ends are present, StartAt never exceeds EndAt: a derived end
// that would precede the start is discarded as unreliable rather than
// swapped.
type TimeWindow struct {
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
}
