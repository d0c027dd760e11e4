package calendar

import (
	"strings"
	"time"

	"github.com/sunghoon/notice-agent/internal/types"
)

// Classifier resolves a notice's UTC time window from the key-date
// candidates of its qualification record.
type Classifier struct {
	Keywords Keywords
	parser   *Parser
}

// NewClassifier builds a classifier and its embedded fragment parser over
// the given keyword sets.
func NewClassifier(kw Keywords) *Classifier {
	return &Classifier{Keywords: kw, parser: NewParser(kw)}
}

// Parser exposes the embedded fragment parser, mainly so tests and callers
// can pin its clock.
func (c *Classifier) Parser() *Parser {
	return c.parser
}

// ExtractTimeWindow walks every key-date candidate of the record — the
// key_dates list first, then the record's own top-level key-date fields as
// one more candidate — and accumulates the earliest start and the latest
// end. The result is order-independent for labeled candidates. A derived
// end that precedes the start is discarded as unreliable rather than
// swapped.
func (c *Classifier) ExtractTimeWindow(record *types.QualificationRecord, noticeTitle string) types.TimeWindow {
	var window types.TimeWindow
	if record == nil {
		return window
	}

	for _, candidate := range record.KeyDates {
		c.classifyAndAssign(&window, candidate, noticeTitle)
	}
	c.classifyAndAssign(&window, types.DateCandidate{
		TypeLabel: record.KeyDateType,
		DateText:  record.KeyDate,
		ISOValue:  record.KeyDateISO,
	}, noticeTitle)

	if window.StartAt != nil && window.EndAt != nil && window.EndAt.Before(*window.StartAt) {
		window.EndAt = nil
	}
	return window
}

// classifyAndAssign resolves one candidate to an instant and folds it into
// the window under the accumulation policy: ends keep the latest deadline
// found, starts keep the earliest opening found, and an ambiguous candidate
// fills the start first and otherwise extends the end.
func (c *Classifier) classifyAndAssign(window *types.TimeWindow, candidate types.DateCandidate, noticeTitle string) {
	context := strings.ToLower(candidate.TypeLabel) + " " + strings.ToLower(candidate.DateText)
	isEnd := containsAnyFold(context, c.Keywords.End)
	isStart := containsAnyFold(context, c.Keywords.Start)

	instant := c.resolve(candidate, noticeTitle)
	if instant == nil {
		return
	}

	switch {
	case isEnd && !isStart:
		if window.EndAt == nil || instant.After(*window.EndAt) {
			window.EndAt = instant
		}
	case isStart && !isEnd:
		if window.StartAt == nil || instant.Before(*window.StartAt) {
			window.StartAt = instant
		}
	default:
		if window.StartAt == nil {
			window.StartAt = instant
		} else if window.EndAt == nil || instant.After(*window.EndAt) {
			window.EndAt = instant
		}
	}
}

// resolve prefers an explicit ISO value and falls back to free-text
// parsing. The result is always UTC.
func (c *Classifier) resolve(candidate types.DateCandidate, noticeTitle string) *time.Time {
	if t := ParseISO(candidate.ISOValue); t != nil {
		return t
	}
	if strings.TrimSpace(candidate.DateText) == "" {
		return nil
	}
	event := c.parser.Parse(candidate.DateText, noticeTitle)
	if event == nil {
		return nil
	}
	utc := event.Start.UTC()
	return &utc
}

// isoLayouts are tried in order for explicit timestamp values; layouts
// without a zone are interpreted as KST.
var isoLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02", true},
}

// ParseISO parses an explicit timestamp string into UTC, or nil when the
// value is empty or unparseable. Naive timestamps are assumed KST.
func ParseISO(value string) *time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	for _, l := range isoLayouts {
		var t time.Time
		var err error
		if l.naive {
			t, err = time.ParseInLocation(l.layout, trimmed, KST)
		} else {
			t, err = time.Parse(l.layout, trimmed)
		}
		if err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
