// Package llm - util.go cleans raw model replies down to their JSON payload.
package llm

import (
	"regexp"
	"strings"
)

var (
	jsonFenceRe    = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")
	genericFenceRe = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// CleanJSONBlock extracts the JSON payload from a model reply. The
// extraction prompts ask for bare JSON, but replies still arrive wrapped in
// markdown fences, sometimes with conversational text around the fence; a
// fenced body anywhere in the reply wins over the surrounding prose.
func CleanJSONBlock(text string) string {
	if m := jsonFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := genericFenceRe.FindStringSubmatch(text); m != nil {
		body := strings.TrimSpace(m[1])
		// A bare language identifier on the first line is not payload.
		if idx := strings.Index(body, "\n"); idx >= 0 {
			first := strings.TrimSpace(body[:idx])
			if first != "" && !strings.ContainsAny(first, "{[\" ") {
				body = body[idx+1:]
			}
		}
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(text)
}
