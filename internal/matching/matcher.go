package matching

import (
	"fmt"
	"strings"

	"github.com/sunghoon/notice-agent/internal/ontology"
	"github.com/sunghoon/notice-agent/internal/types"
)

// Matcher evaluates user profiles against extracted qualification records.
// It holds only the read-only ontology, so a single instance is safe for
// concurrent use.
type Matcher struct {
	ont *ontology.Ontology
}

// New builds a matcher. A nil ontology selects the production tables.
func New(ont *ontology.Ontology) *Matcher {
	if ont == nil {
		ont = ontology.Default()
	}
	return &Matcher{ont: ont}
}

// dimensionCheck pairs a qualification key with its checker. The dimension
// set is closed, so a fixed slice iterated in order keeps failure reasons
// stable.
type dimensionCheck struct {
	key   string
	check func(norm types.NormalizedProfile, req string) (bool, string)
}

func (m *Matcher) checks() []dimensionCheck {
	return []dimensionCheck{
		{types.QualGPAMin, func(n types.NormalizedProfile, req string) (bool, string) {
			return checkGPA(n.GPA, req)
		}},
		{types.QualGradeLevel, func(n types.NormalizedProfile, req string) (bool, string) {
			return checkGradeLevel(n.Level, n.Semester, req)
		}},
		{types.QualDepartment, func(n types.NormalizedProfile, req string) (bool, string) {
			return checkDepartment(n.Department, req, m.ont)
		}},
		{types.QualIncomeStatus, func(n types.NormalizedProfile, req string) (bool, string) {
			return checkIncome(n.Income, req)
		}},
		{types.QualLanguage, func(n types.NormalizedProfile, req string) (bool, string) {
			return checkLanguage(n.LanguageScores, req)
		}},
		{types.QualMilitary, func(n types.NormalizedProfile, req string) (bool, string) {
			return checkSimpleText(n.MilitaryService, req, m.ont.Military, m.ont.NoRestriction)
		}},
		{types.QualGender, func(n types.NormalizedProfile, req string) (bool, string) {
			return checkSimpleText(n.Gender, req, m.ont.Gender, m.ont.NoRestriction)
		}},
	}
}

// CheckSuitability produces the verdict for one (profile, record) pair.
// A record without qualifications yields the non-comparable verdict
// (pass = null). Nothing escapes this boundary: an internal panic surfaces
// as a failed verdict carrying the error text.
func (m *Matcher) CheckSuitability(profile types.UserProfile, record *types.QualificationRecord) (verdict types.SuitabilityVerdict) {
	if !record.Comparable() {
		return types.NonComparableVerdict()
	}

	defer func() {
		if r := recover(); r != nil {
			verdict = types.FailVerdict(fmt.Sprintf("자격 비교 처리 중 오류: %v", r))
		}
	}()

	norm := NormalizeProfile(profile, m.ont)

	var failures []string
	for _, dim := range m.checks() {
		passed, reason := dim.check(norm, record.Requirement(dim.key))
		if !passed {
			failures = append(failures, reason)
		}
	}

	if len(failures) == 0 {
		return types.PassVerdict()
	}
	return types.FailVerdict(strings.Join(failures, "; "))
}
