// Package matching implements the eligibility matcher: profile
// normalization, the per-dimension requirement checkers, and the
// orchestrating suitability verdict.
package matching

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sunghoon/notice-agent/internal/ontology"
	"github.com/sunghoon/notice-agent/internal/types"
)

const (
	// unknownIncome marks a profile with no income information. The income
	// checker treats it as permissive: missing data never fails a ceiling
	// check on its own.
	unknownIncome = 99

	// LevelUndergrad and LevelGraduate are the two recognized academic
	// levels; anything else normalizes to LevelUnknown.
	LevelUndergrad = "학부"
	LevelGraduate  = "대학원"
	LevelUnknown   = "N/A"
)

var (
	numericTokenRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	digitRunRe     = regexp.MustCompile(`\d+`)
)

// NormalizeProfile derives the canonical comparable view of a raw profile.
// It is total: any field that fails lexical or numeric parsing degrades to
// its least-restrictive normalized value.
func NormalizeProfile(profile types.UserProfile, ont *ontology.Ontology) types.NormalizedProfile {
	norm := types.NormalizedProfile{
		Level:           LevelUnknown,
		Semester:        0,
		Income:          unknownIncome,
		Department:      strings.TrimSpace(profile.Department),
		MilitaryService: strings.TrimSpace(profile.MilitaryService),
		Gender:          strings.TrimSpace(profile.Gender),
	}

	if entry, ok := ont.GradeLexicon[strings.TrimSpace(profile.GradeLevel)]; ok {
		norm.Level = entry.Level
		norm.Semester = entry.Semester
	}

	norm.GPA = parseGPA(profile.GPA.String())
	norm.Income = parseIncomeBracket(profile.IncomeBracket)
	norm.LanguageScores = normalizeLanguageScores(profile.LanguageScores)

	return norm
}

// parseGPA extracts the first numeric-looking token; non-numeric text
// normalizes to 0.0 and only fails a check when a minimum is actually
// stated in the requirement.
func parseGPA(raw string) float64 {
	token := numericTokenRe.FindString(raw)
	if token == "" {
		return 0.0
	}
	gpa, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0.0
	}
	return gpa
}

// parseIncomeBracket extracts the first run of digits from the free-text
// bracket; absence of digits yields the permissive unknown value.
func parseIncomeBracket(raw string) int {
	digits := digitRunRe.FindString(raw)
	if digits == "" {
		return unknownIncome
	}
	bracket, err := strconv.Atoi(digits)
	if err != nil {
		return unknownIncome
	}
	return bracket
}

// normalizeLanguageScores canonicalizes test names the way requirement
// parsing does (upper case, no spaces, iBT/Speaking suffix separators), so
// profile keys like "toefl ibt" line up with extracted requirements.
func normalizeLanguageScores(scores map[string]types.StringOrNumber) map[string]string {
	if len(scores) == 0 {
		return nil
	}
	out := make(map[string]string, len(scores))
	for name, score := range scores {
		key := CanonicalTestKey(name)
		if key == "" || score.String() == "" {
			continue
		}
		out[key] = strings.TrimSpace(score.String())
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// CanonicalTestKey maps a language test name to its canonical lookup key:
// "TOEFL iBT" -> "TOEFL_IBT", "opic" -> "OPIC".
func CanonicalTestKey(name string) string {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, "IBT", "_IBT")
	key = strings.ReplaceAll(key, "ITP", "_ITP")
	key = strings.ReplaceAll(key, "SPEAKING", "_SPEAKING")
	key = strings.TrimPrefix(key, "_")
	return strings.Trim(key, "_")
}
