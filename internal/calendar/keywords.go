// Package calendar turns free-text Korean/English date expressions from
// extracted notice records into concrete instants, and resolves a notice's
// canonical UTC start/end window from its key-date candidates.
package calendar

import "time"

// KST is the local zone notices are written in; naive timestamps are
// interpreted here before conversion to UTC.
var KST = time.FixedZone("KST", 9*60*60)

// Keywords holds the classification keyword sets. All entries are
// lowercase; matching lowercases the candidate text first.
type Keywords struct {
	// Start and End classify a key-date candidate by its type label and
	// date text.
	Start []string
	End   []string

	// Deadline selects the end-of-day default time (23:59) when a parsed
	// fragment carries a date but no explicit time.
	Deadline []string
}

// DefaultKeywords returns the production keyword sets.
func DefaultKeywords() Keywords {
	return Keywords{
		Start: []string{
			"시작", "start", "개시", "개강", "오픈", "open", "모집 시작", "접수 시작",
			"부터", "기간", "개최",
		},
		End: []string{
			"마감", "deadline", "종료", "until", "마감일", "마감기한", "접수 마감", "마지막",
			"due", "마감 시한", "까지", "기한", "제출",
		},
		Deadline: []string{"마감", "까지", "deadline", "기한", "접수"},
	}
}
