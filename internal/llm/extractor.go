// Package llm - extractor.go runs the notice extraction calls: category
// classification and full qualification-record extraction.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sunghoon/notice-agent/internal/extraction"
	"github.com/sunghoon/notice-agent/internal/prompts"
	"github.com/sunghoon/notice-agent/internal/types"
)

// Extractor drives the LLM calls that turn a raw notice into a
// QualificationRecord.
type Extractor struct {
	client Client
}

// NewExtractor wraps an LLM client.
func NewExtractor(client Client) *Extractor {
	return &Extractor{client: client}
}

// ClassifyCategory asks the model for the notice category. The reply is
// normalized onto the allowed category set, so an off-vocabulary answer
// degrades to 기타 instead of failing.
func (e *Extractor) ClassifyCategory(ctx context.Context, title, body string) (string, error) {
	template, err := prompts.Get("extraction.json", "classify_category")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"Title": title,
		"Body":  body,
	})

	reply, err := e.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("category classification failed: %w", err)
	}
	return extraction.NormalizeCategory(strings.TrimSpace(reply)), nil
}

// ExtractRecord asks the model for the full structured record and decodes
// it defensively. The payload is schema-checked before decoding so a
// malformed reply surfaces as an error rather than a half-empty record.
func (e *Extractor) ExtractRecord(ctx context.Context, title, body string) (*types.QualificationRecord, error) {
	template, err := prompts.Get("extraction.json", "extract_record")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Title": title,
		"Body":  body,
	})

	reply, err := e.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("record extraction failed: %w", err)
	}

	payload := []byte(CleanJSONBlock(reply))
	if err := extraction.ValidatePayload(payload); err != nil {
		return nil, err
	}
	return extraction.DecodeRecord(payload)
}
