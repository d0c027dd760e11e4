package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CalendarEvent is a successfully parsed date fragment: a display title
// prefixed with the local timestamp, the timestamp's textual form, and the
// instant itself in KST.
type CalendarEvent struct {
	Title     string    // "[2025-10-10 17:00] 모집 공고"
	StartTime string    // "2025-10-10 17:00:00", KST local
	Start     time.Time // same instant, KST location
}

// Parser extracts (year, month, day, hour, minute) from one free-text date
// fragment. Now is a test hook for the current-year default; nil means
// time.Now in KST.
type Parser struct {
	Keywords Keywords
	Now      func() time.Time
}

// NewParser builds a parser over the given keyword sets.
func NewParser(kw Keywords) *Parser {
	return &Parser{Keywords: kw}
}

var (
	timeColonRe    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	timeHourRe     = regexp.MustCompile(`(?:(오전|오후)\s*)?(\d{1,2})\s*시(?:\s*(\d{1,2})\s*분?)?`)
	timeMeridiemRe = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	fullDateRe     = regexp.MustCompile(`(\d{4})\s*[.년]\s*(\d{1,2})\s*[.월]\s*(\d{1,2})\s*일?`)
	koreanDateRe   = regexp.MustCompile(`(\d{1,2})\s*월\s*(\d{1,2})\s*일?`)
	englishDateRe  = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})`)
	numDateRe      = regexp.MustCompile(`(\d{1,2})\s*[/.\-]\s*(\d{1,2})`)
	yearRe         = regexp.MustCompile(`(20\d{2})`)

	// Full-width range separators normalize to "~" before any splitting.
	tildeNormalizer = strings.NewReplacer("∼", "~", "～", "~")
)

var englishMonths = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Parse converts one date fragment into a CalendarEvent, or nil when the
// fragment holds no day-level date. The reference title only feeds the
// event title.
//
// Preprocessing: full-width range separators ("∼", "～") normalize to "~";
// a leading "~" and trailing "까지"/"." are stripped; with a
// range separator "~" only the portion after the last "~" is used (the end
// of a range is the actionable instant), and a "부터" separator truncates
// to the portion before it. Deadline keywords in the original text choose
// the 23:59 default when no explicit time is present, otherwise 09:00.
func (p *Parser) Parse(text, referenceTitle string) *CalendarEvent {
	original := text
	fragment := tildeNormalizer.Replace(strings.TrimSpace(text))
	fragment = strings.TrimLeft(fragment, "~")
	fragment = strings.TrimSuffix(strings.TrimSpace(fragment), "까지")
	fragment = strings.TrimSuffix(strings.TrimSpace(fragment), ".")

	if idx := strings.LastIndex(fragment, "~"); idx >= 0 {
		fragment = fragment[idx+len("~"):]
	}
	if idx := strings.Index(fragment, "부터"); idx >= 0 {
		fragment = fragment[:idx]
	}
	fragment = strings.TrimSpace(fragment)

	hour, minute := p.parseTime(fragment)

	year, month, day := 0, 0, 0
	if m := fullDateRe.FindStringSubmatch(fragment); m != nil {
		year = atoi(m[1])
		month = atoi(m[2])
		day = atoi(m[3])
	} else if m := koreanDateRe.FindStringSubmatch(fragment); m != nil {
		month = atoi(m[1])
		day = atoi(m[2])
	} else if m := englishDateRe.FindStringSubmatch(fragment); m != nil {
		month = int(englishMonths[strings.ToLower(m[1])])
		day = atoi(m[2])
	} else if m := numDateRe.FindStringSubmatch(fragment); m != nil {
		month = atoi(m[1])
		day = atoi(m[2])
	}

	if month == 0 || day == 0 {
		// No day-level precision (e.g. "2025 여름"): not actionable.
		return nil
	}

	if year == 0 {
		if m := yearRe.FindStringSubmatch(fragment); m != nil {
			year = atoi(m[1])
		} else {
			year = p.currentYear()
		}
	}

	if hour < 0 {
		if containsAnyFold(original, p.Keywords.Deadline) {
			hour, minute = 23, 59
		} else {
			hour, minute = 9, 0
		}
	}

	if month > 12 || day > 31 || hour > 23 || minute > 59 {
		return nil
	}
	start := time.Date(year, time.Month(month), day, hour, minute, 0, 0, KST)
	if start.Year() != year || start.Month() != time.Month(month) || start.Day() != day {
		// time.Date normalizes impossible dates (Feb 30 -> Mar 2); a
		// fragment naming one is unreliable.
		return nil
	}

	stamp := start.Format("2006-01-02 15:04")
	return &CalendarEvent{
		Title:     fmt.Sprintf("[%s] %s", stamp, referenceTitle),
		StartTime: start.Format("2006-01-02 15:04:05"),
		Start:     start,
	}
}

// parseTime extracts an explicit time from the fragment, returning (-1, -1)
// when none is present.
func (p *Parser) parseTime(fragment string) (hour, minute int) {
	lowered := strings.ToLower(fragment)
	if m := timeColonRe.FindStringSubmatch(fragment); m != nil {
		hour, minute = atoi(m[1]), atoi(m[2])
		switch {
		case strings.Contains(fragment, "오후") || strings.Contains(lowered, "pm"):
			if hour < 12 {
				hour += 12
			}
		case strings.Contains(fragment, "오전") || strings.Contains(lowered, "am"):
			if hour == 12 {
				hour = 0
			}
		case hour == 24 && minute == 0:
			// "24:00" names the end of the day.
			hour, minute = 23, 59
		}
		return hour, minute
	}
	if m := timeHourRe.FindStringSubmatch(fragment); m != nil {
		hour = atoi(m[2])
		minute = 0
		if m[3] != "" {
			minute = atoi(m[3])
		}
		switch m[1] {
		case "오후":
			if hour < 12 {
				hour += 12
			}
		case "오전":
			if hour == 12 {
				hour = 0
			}
		}
		return hour, minute
	}
	if m := timeMeridiemRe.FindStringSubmatch(fragment); m != nil {
		// Bare English clock ("5 PM"); "5:00 PM" was already caught above.
		hour = atoi(m[1])
		minute = 0
		if m[2] != "" {
			minute = atoi(m[2])
		}
		if strings.EqualFold(m[3], "pm") {
			if hour < 12 {
				hour += 12
			}
		} else if hour == 12 {
			hour = 0
		}
		return hour, minute
	}
	if strings.Contains(fragment, "자정") {
		// Deadlines phrased as "midnight" mean the end of that day, not
		// its first minute.
		return 23, 59
	}
	return -1, -1
}

func (p *Parser) currentYear() int {
	if p.Now != nil {
		return p.Now().In(KST).Year()
	}
	return time.Now().In(KST).Year()
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// containsAnyFold reports whether text contains any keyword,
// case-insensitively.
func containsAnyFold(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
