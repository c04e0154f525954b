package gemini

import (
	"testing"

	"newsdigest/internal/domain"
)

func TestDecodeAIResultStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"summary\": \"ISRO launched a new satellite.\", \"category\": \"Sci & Tech\"}\n```"

	result, err := decodeAIResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Summary != "ISRO launched a new satellite." {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}

	if result.Category != domain.CategorySciTech {
		t.Fatalf("unexpected category: %q", result.Category)
	}
}

func TestDecodeAIResultAcceptsBareJSON(t *testing.T) {
	raw := `{"summary": "Navy commissioned a submarine.", "category": "Defence"}`

	result, err := decodeAIResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Category != domain.CategoryDefence {
		t.Fatalf("unexpected category: %q", result.Category)
	}
}

func TestDecodeAIResultRejectsMalformedJSON(t *testing.T) {
	if _, err := decodeAIResult("not json at all"); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestDecodeAIResultRejectsMissingKeys(t *testing.T) {
	if _, err := decodeAIResult(`{"summary": "Something happened."}`); err == nil {
		t.Fatalf("expected error for missing category")
	}

	if _, err := decodeAIResult(`{"category": "Defence"}`); err == nil {
		t.Fatalf("expected error for missing summary")
	}
}

func TestDecodeAIResultRejectsUnknownCategory(t *testing.T) {
	raw := `{"summary": "A match was played.", "category": "Sports"}`

	if _, err := decodeAIResult(raw); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}
