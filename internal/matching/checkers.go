package matching

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sunghoon/notice-agent/internal/ontology"
)

// Each checker compares one normalized profile attribute against one
// requirement text fragment and returns (passed, reason). The universal
// rule: an absent or "N/A" requirement always passes with an empty reason —
// absence of a stated requirement is never a failure.

var (
	gpaReqRe   = regexp.MustCompile(`(\d\.\d{1,2})`)
	gpaScaleRe = regexp.MustCompile(`/(\d\.\d)`)

	semesterRangeRe = regexp.MustCompile(`(\d)[\s~.\-]+(\d)\s*학기`)
	gradeRangeRe    = regexp.MustCompile(`(\d)[\s~.\-]+(\d)\s*학년`)
	gradeRe         = regexp.MustCompile(`(\d)\s*학년`)
	undergradHintRe = regexp.MustCompile(`\d\s*학년`)
	minSemestersRe  = regexp.MustCompile(`(?i)(최소|적어도|at least)\s*(\d+|four)\s*(학기|semesters)`)

	incomeCapRe = regexp.MustCompile(`(\d+)\s*분위`)

	languageReqRe = regexp.MustCompile(
		`(?i)(TOEIC|TOEFL\s*(?:iBT|ITP)?|IELTS|JLPT|HSK|TEPS|OPIc|G-TELP)[\s:]*(?:level)?\s*([0-9]+\.?[0-9]*|N[1-5]|[A-Z]{1,3}\d?|[A-Z]{2,})`)
	digitRe = regexp.MustCompile(`\d`)
)

// noConstraint reports whether a requirement fragment states no condition.
func noConstraint(req string) bool {
	trimmed := strings.TrimSpace(req)
	return trimmed == "" || strings.EqualFold(trimmed, "N/A")
}

// checkGPA fails iff the user's GPA is below the first decimal number in
// the requirement. A requirement without a parseable number passes.
func checkGPA(userGPA float64, req string) (bool, string) {
	if noConstraint(req) {
		return true, ""
	}
	token := gpaReqRe.FindString(req)
	if token == "" {
		return true, ""
	}
	reqGPA, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return true, ""
	}
	if userGPA < reqGPA {
		scale := ""
		if m := gpaScaleRe.FindStringSubmatch(req); m != nil {
			scale = fmt.Sprintf(" (%s 만점 기준)", m[1])
		}
		return false, fmt.Sprintf("학점 미달 (요구: %s%s / 현재: %.2f)", token, scale, userGPA)
	}
	return true, ""
}

// checkGradeLevel applies the tiered grade/semester policy; the first
// matching tier decides. An unknown user semester (0) always passes since
// there is not enough information to fail.
func checkGradeLevel(level string, semester int, req string) (bool, string) {
	if noConstraint(req) || semester == 0 {
		return true, ""
	}
	reqNorm := strings.ToLower(strings.TrimSpace(req))

	// Tier 1: undergraduate vs graduate level mismatch.
	isGradReq := strings.Contains(reqNorm, "대학원") || strings.Contains(reqNorm, "석사") || strings.Contains(reqNorm, "박사")
	isUndergradReq := !isGradReq &&
		(strings.Contains(reqNorm, "학부") || strings.Contains(reqNorm, "재학생") || undergradHintRe.MatchString(reqNorm))
	if isGradReq && level != LevelGraduate {
		return false, "대학원생 대상"
	}
	if isUndergradReq && level == LevelGraduate && !strings.Contains(reqNorm, "석박사") {
		return false, "학부생 대상"
	}

	// Tier 2: explicit semester range "a~b학기".
	if m := semesterRangeRe.FindStringSubmatch(reqNorm); m != nil {
		minSem, _ := strconv.Atoi(m[1])
		maxSem, _ := strconv.Atoi(m[2])
		if semester < minSem || semester > maxSem {
			return false, fmt.Sprintf("학기 미충족 (요구: %d~%d학기 / 현재: %d학기)", minSem, maxSem, semester)
		}
		return true, ""
	}

	// Tier 3: grade ranges and single grades, converted to semester spans
	// ((n-1)*2+1 .. n*2).
	if m := gradeRangeRe.FindStringSubmatch(reqNorm); m != nil {
		if level != LevelUndergrad {
			return false, "학부생 대상"
		}
		minGrade, _ := strconv.Atoi(m[1])
		maxGrade, _ := strconv.Atoi(m[2])
		minSem := (minGrade-1)*2 + 1
		maxSem := maxGrade * 2
		if semester < minSem || semester > maxSem {
			return false, fmt.Sprintf("학년 범위 미충족 (요구: %d~%d학년 / 현재: %d학기)", minGrade, maxGrade, semester)
		}
		return true, ""
	}
	if m := gradeRe.FindStringSubmatch(reqNorm); m != nil {
		if level != LevelUndergrad {
			return false, "학부생 대상"
		}
		reqGrade, _ := strconv.Atoi(m[1])
		minSem := (reqGrade-1)*2 + 1
		maxSem := reqGrade * 2
		switch {
		case strings.Contains(reqNorm, "이상") || strings.Contains(reqNorm, "completion of at least"):
			if semester < minSem {
				return false, fmt.Sprintf("학년 미충족 (요구: %d학년 이상 / 현재: %d학기)", reqGrade, semester)
			}
		case strings.Contains(reqNorm, "이하"):
			if semester > maxSem {
				return false, fmt.Sprintf("학년 미충족 (요구: %d학년 이하 / 현재: %d학기)", reqGrade, semester)
			}
		default:
			if semester < minSem || semester > maxSem {
				return false, fmt.Sprintf("학년 미충족 (요구: %d학년 / 현재: %d학기)", reqGrade, semester)
			}
		}
		return true, ""
	}

	// Tier 4: expected-graduate keyword, normally 7th semester or later.
	if strings.Contains(reqNorm, "졸업예정자") && semester < 7 {
		return false, "졸업예정자 대상 아님"
	}

	// Tier 5: minimum completed semester count ("at least four semesters").
	if m := minSemestersRe.FindStringSubmatch(reqNorm); m != nil {
		minSemesters := 4
		if n, err := strconv.Atoi(m[2]); err == nil {
			minSemesters = n
		}
		if semester < minSemesters {
			return false, fmt.Sprintf("이수 학기 수 미충족 (요구: 최소 %d학기 / 현재: %d학기)", minSemesters, semester)
		}
		return true, ""
	}

	return true, ""
}

// checkDepartment passes on bidirectional substring containment, a synonym
// or parent-group hit from the ontology, or a universal-inclusion phrase.
// Comparison strips whitespace and lowercases both sides.
func checkDepartment(userDept, req string, ont *ontology.Ontology) (bool, string) {
	if noConstraint(req) || userDept == "" {
		return true, ""
	}
	reqTrimmed := strings.TrimSpace(req)
	reqKey := squash(reqTrimmed)
	userKey := squash(userDept)

	for _, phrase := range ont.UniversalDepartment {
		if strings.Contains(reqKey, squash(phrase)) {
			return true, ""
		}
	}
	if strings.Contains(reqKey, userKey) || strings.Contains(userKey, reqKey) {
		return true, ""
	}
	for _, group := range ont.DepartmentGroups[strings.TrimSpace(userDept)] {
		if strings.Contains(reqKey, squash(group)) {
			return true, ""
		}
	}
	return false, fmt.Sprintf("학과 미충족 (요구: %s / 현재: %s)", reqTrimmed, userDept)
}

// squash lowercases and removes all whitespace for containment checks.
func squash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// checkIncome fails iff the user's bracket exceeds the first "N분위"
// ceiling. The unknown bracket (99) never fails a ceiling check, and a
// need-based phrase without a numeric ceiling passes (document verification
// happens outside this engine).
func checkIncome(userBracket int, req string) (bool, string) {
	if noConstraint(req) {
		return true, ""
	}
	if m := incomeCapRe.FindStringSubmatch(req); m != nil {
		ceiling, err := strconv.Atoi(m[1])
		if err != nil {
			return true, ""
		}
		if userBracket == unknownIncome {
			return true, ""
		}
		if userBracket > ceiling {
			return false, fmt.Sprintf("소득분위 초과 (요구: %d분위 이하 / 현재: %d분위)", ceiling, userBracket)
		}
	}
	return true, ""
}

// languagePair is one extracted (test, score) requirement.
type languagePair struct {
	key      string // canonical test key, e.g. "TOEFL_IBT"
	display  string // original test name + score for the failure reason
	required string // raw required score or grade text
}

// checkLanguage extracts (test, score) pairs from the fixed recognized-test
// vocabulary and compares them against the user's scores. No recognized
// pair means the free-text requirement cannot be mechanically verified and
// passes. "또는"/" or " switches the combination to OR; AND is the default.
func checkLanguage(userScores map[string]string, req string) (bool, string) {
	if noConstraint(req) {
		return true, ""
	}

	matches := languageReqRe.FindAllStringSubmatch(req, -1)
	if len(matches) == 0 {
		return true, ""
	}

	pairs := make([]languagePair, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, languagePair{
			key:      CanonicalTestKey(m[1]),
			display:  fmt.Sprintf("%s %s", strings.TrimSpace(m[1]), m[2]),
			required: strings.ToUpper(m[2]),
		})
	}

	orLogic := strings.Contains(req, "또는") || strings.Contains(strings.ToLower(req), " or ")

	var missing []string
	results := make([]bool, len(pairs))
	for i, pair := range pairs {
		userScore, ok := userScores[pair.key]
		if !ok {
			missing = append(missing, pair.key)
			continue
		}
		results[i] = comparePair(pair.key, pair.required, userScore)
	}

	passed := false
	if orLogic {
		for _, r := range results {
			if r {
				passed = true
				break
			}
		}
	} else {
		passed = true
		for _, r := range results {
			if !r {
				passed = false
				break
			}
		}
	}
	if passed {
		return true, ""
	}

	details := make([]string, len(pairs))
	for i, pair := range pairs {
		details[i] = pair.display
	}
	reason := fmt.Sprintf("어학 요건 미충족 (요구: %s)", strings.Join(details, ", "))
	if len(missing) > 0 {
		reason += fmt.Sprintf(" (점수 입력 필요: %s)", strings.Join(uniqueSorted(missing), ", "))
	}
	return false, reason
}

// comparePair compares one required score against the user's. Unparseable
// values count as failing the pair.
func comparePair(testKey, required, user string) bool {
	switch testKey {
	case "JLPT":
		// Lower numeral means higher proficiency: N1 beats N2.
		reqLevel, okReq := firstDigit(required)
		userLevel, okUser := firstDigit(user)
		return okReq && okUser && userLevel <= reqLevel
	case "HSK":
		reqLevel, okReq := firstDigit(required)
		userLevel, okUser := firstDigit(user)
		return okReq && okUser && userLevel >= reqLevel
	case "OPIC":
		// Ordinal grade comparison is not implemented; a reported OPIc
		// grade is accepted as-is.
		return true
	default:
		reqScore, errReq := strconv.ParseFloat(required, 64)
		userScore, errUser := strconv.ParseFloat(strings.TrimSpace(user), 64)
		if errReq != nil || errUser != nil {
			return false
		}
		return userScore >= reqScore
	}
}

func firstDigit(s string) (int, bool) {
	d := digitRe.FindString(s)
	if d == "" {
		return 0, false
	}
	n, err := strconv.Atoi(d)
	return n, err == nil
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// checkSimpleText compares gender or military-service values: substring
// containment in either direction passes, and otherwise the requirement
// passes unless it explicitly mentions a status that contradicts the
// user's. Absence of contradiction is treated as compatible.
func checkSimpleText(userValue, req string, dim ontology.SimpleDimension, noRestrictionWords []string) (bool, string) {
	if noConstraint(req) {
		return true, ""
	}
	reqNorm := strings.ToLower(strings.TrimSpace(req))

	for _, phrase := range dim.Synonyms["무관"] {
		if strings.Contains(reqNorm, strings.ToLower(phrase)) {
			return true, ""
		}
	}
	for _, word := range noRestrictionWords {
		if strings.Contains(reqNorm, word) {
			return true, ""
		}
	}

	if userValue == "" {
		return true, ""
	}
	userNorm := strings.ToLower(strings.TrimSpace(userValue))
	if strings.Contains(reqNorm, userNorm) || strings.Contains(userNorm, reqNorm) {
		return true, ""
	}

	status := dim.StatusOf(strings.TrimSpace(userValue))
	if status != "" {
		for _, syn := range dim.Synonyms[status] {
			if strings.Contains(reqNorm, strings.ToLower(syn)) {
				return true, ""
			}
		}
	}

	mentioned := make(map[string]bool)
	for other, synonyms := range dim.Synonyms {
		if other == "무관" {
			continue
		}
		for _, syn := range synonyms {
			if strings.Contains(reqNorm, strings.ToLower(syn)) {
				mentioned[other] = true
				break
			}
		}
	}
	if status != "" && mentioned[status] {
		return true, ""
	}
	for _, conflict := range dim.Conflicts[status] {
		if mentioned[conflict] {
			return false, fmt.Sprintf("조건 불일치 (요구: %s / 현재: %s)", strings.TrimSpace(req), userValue)
		}
	}
	return true, ""
}
