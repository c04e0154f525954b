package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"newsdigest/internal/domain"
)

type aiPayload struct {
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

// decodeAIResult turns the raw candidate text into a validated AIResult.
// The model is asked for bare JSON but tends to wrap it in markdown code
// fences, so those are stripped before parsing. Malformed JSON, missing
// keys, and an out-of-enum category are all the same failure to the caller.
func decodeAIResult(raw string) (domain.AIResult, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var payload aiPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return domain.AIResult{}, fmt.Errorf("parse candidate JSON: %w", err)
	}

	summary := strings.TrimSpace(payload.Summary)
	if summary == "" {
		return domain.AIResult{}, fmt.Errorf("candidate JSON has empty summary")
	}

	category, err := domain.ParseCategory(strings.TrimSpace(payload.Category))
	if err != nil {
		return domain.AIResult{}, fmt.Errorf("candidate JSON category: %w", err)
	}

	return domain.AIResult{Summary: summary, Category: category}, nil
}
