package extraction

import "strings"

// CategoryFallback is assigned when the extraction service returns a
// category outside the allowed set.
const CategoryFallback = "기타"

// allowedCategories is the closed category set notices are filed under.
var allowedCategories = map[string]struct{}{
	"장학": {},
	"채용": {},
	"행사": {},
	"수업": {},
	"행정": {},
	"기타": {},
}

// allowedHashtags is the closed hashtag vocabulary, in display order.
var allowedHashtags = []string{
	"#학사", "#장학", "#행사", "#취업", "#국제교류", "#공모전/대회", "#일반",
}

// HashtagGeneral marks a notice with no more specific tag; it never
// coexists with other tags.
const HashtagGeneral = "#일반"

// NormalizeCategory maps an extracted category onto the allowed set,
// falling back to 기타 for anything unrecognized.
func NormalizeCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	if _, ok := allowedCategories[trimmed]; ok {
		return trimmed
	}
	return CategoryFallback
}

// NormalizeHashtags filters tags to the allowed vocabulary, deduplicates
// while keeping vocabulary order, and enforces #일반 exclusivity: it is
// dropped whenever a specific tag survives, and is the sole result when
// nothing survives.
func NormalizeHashtags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "#") {
			trimmed = "#" + trimmed
		}
		seen[trimmed] = struct{}{}
	}

	var result []string
	for _, tag := range allowedHashtags {
		if tag == HashtagGeneral {
			continue
		}
		if _, ok := seen[tag]; ok {
			result = append(result, tag)
		}
	}
	if len(result) == 0 {
		return []string{HashtagGeneral}
	}
	return result
}
