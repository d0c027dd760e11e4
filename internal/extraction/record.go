// Package extraction defensively decodes the output of the external
// text-extraction service into a QualificationRecord: it tolerates missing
// keys, the "N/A" sentinel and its null-ish spellings, string-valued
// qualification blobs, and the historical key-date field spellings.
package extraction

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sunghoon/notice-agent/internal/types"
)

// noValueSentinels are the literal strings (case-insensitive) the
// extraction service emits for "no value".
var noValueSentinels = map[string]struct{}{
	"n/a":    {},
	"null":   {},
	"[null]": {},
	"none":   {},
}

// DecodeRecord parses a raw extraction payload. Only a payload that is not
// a JSON object at all is an error; every recognized field is decoded
// best-effort.
func DecodeRecord(data []byte) (*types.QualificationRecord, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("extraction payload is not a JSON object: %w", err)
	}
	return RecordFromMap(raw), nil
}

// RecordFromMap builds a QualificationRecord from an already-decoded
// payload map.
func RecordFromMap(raw map[string]any) *types.QualificationRecord {
	rec := &types.QualificationRecord{
		Category: NormalizeCategory(cleanText(stringValue(raw["category"]))),
	}

	switch q := raw["qualifications"].(type) {
	case map[string]any:
		if len(q) > 0 {
			quals := make(map[string]string, len(q))
			for key, value := range q {
				quals[key] = cleanText(stringValue(value))
			}
			rec.Qualifications = quals
		}
	case string:
		// Historical payloads carried the whole requirement block as one
		// string.
		if s := cleanText(q); s != "" {
			rec.Qualifications = map[string]string{"raw": s}
		}
	}

	for _, listKey := range []string{"key_dates", "keyDates"} {
		entries, ok := raw[listKey].([]any)
		if !ok {
			continue
		}
		for _, entry := range entries {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			candidate := types.DateCandidate{
				TypeLabel: firstText(fields, "key_date_type", "type", "label", "type_label"),
				DateText:  firstText(fields, "key_date", "value", "text"),
				ISOValue:  firstText(fields, "iso", "key_date_iso"),
			}
			if candidate.TypeLabel == "" && candidate.DateText == "" && candidate.ISOValue == "" {
				continue
			}
			rec.KeyDates = append(rec.KeyDates, candidate)
		}
	}

	rec.KeyDateType = firstText(raw, "key_date_type", "keyDateType")
	rec.KeyDate = firstText(raw, "key_date", "keyDate")
	rec.KeyDateISO = firstText(raw, "key_date_iso", "keyDateIso")

	if tags, ok := raw["hashtags"].([]any); ok {
		texts := make([]string, 0, len(tags))
		for _, tag := range tags {
			texts = append(texts, stringValue(tag))
		}
		rec.Hashtags = NormalizeHashtags(texts)
	}

	return rec
}

// firstText returns the first non-empty cleaned value among the given keys.
// Multiple historical spellings of the key-date fields are tolerated.
func firstText(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := cleanText(stringValue(fields[key])); s != "" {
			return s
		}
	}
	return ""
}

// cleanText trims a value and maps the no-value sentinels to the empty
// string.
func cleanText(s string) string {
	trimmed := strings.TrimSpace(s)
	if _, ok := noValueSentinels[strings.ToLower(trimmed)]; ok {
		return ""
	}
	return trimmed
}

// stringValue renders a decoded JSON scalar as text; objects and arrays
// yield the empty string.
func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}
