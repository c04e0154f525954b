package output

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"newsdigest/internal/domain"
)

func TestDeduplicateFirstOccurrenceWins(t *testing.T) {
	articles := []domain.EnrichedArticle{
		{Title: "A", URL: "https://example.com/u"},
		{Title: "B", URL: "https://example.com/other"},
		{Title: "C", URL: "https://example.com/u"},
	}

	unique := Deduplicate(articles)

	if len(unique) != 2 {
		t.Fatalf("expected 2 unique articles, got %d", len(unique))
	}

	if unique[0].Title != "A" || unique[1].Title != "B" {
		t.Fatalf("expected first occurrences in order, got %q then %q",
			unique[0].Title, unique[1].Title)
	}
}

func TestDeduplicateKeepsDistinctURLs(t *testing.T) {
	articles := []domain.EnrichedArticle{
		{URL: "https://example.com/1"},
		{URL: "https://example.com/2"},
	}

	if unique := Deduplicate(articles); len(unique) != 2 {
		t.Fatalf("expected all articles to survive, got %d", len(unique))
	}
}

func TestWriteProducesRendererShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	writer := NewWriter(path, slog.Default())

	lastUpdated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := domain.Document{
		LastUpdated: lastUpdated,
		Articles: []domain.EnrichedArticle{
			{
				Title:    "Agni-V test",
				Summary:  "A summary.",
				URL:      "https://example.com/agni",
				Category: domain.CategoryDefence,
				Date:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	if err := writer.Write(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	if !strings.Contains(string(data), "\n    \"articles\"") {
		t.Fatalf("expected 4-space indentation, got:\n%s", data)
	}

	var decoded struct {
		LastUpdated time.Time `json:"last_updated"`
		Articles    []struct {
			Title    string    `json:"title"`
			Summary  string    `json:"summary"`
			URL      string    `json:"url"`
			Category string    `json:"category"`
			Date     time.Time `json:"date"`
		} `json:"articles"`
	}
	if err = json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if !decoded.LastUpdated.Equal(lastUpdated) {
		t.Fatalf("unexpected last_updated: %v", decoded.LastUpdated)
	}

	if len(decoded.Articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(decoded.Articles))
	}

	if decoded.Articles[0].Category != "Defence" {
		t.Fatalf("unexpected category: %q", decoded.Articles[0].Category)
	}
}

func TestWriteEmptyDocumentKeepsArrayShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	writer := NewWriter(path, slog.Default())

	if err := writer.Write(domain.Document{LastUpdated: time.Now().UTC()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	if !strings.Contains(string(data), `"articles": []`) {
		t.Fatalf("expected empty array for articles, got:\n%s", data)
	}
}

func TestWriteReplacesPriorFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("failed to seed prior file: %v", err)
	}

	writer := NewWriter(path, slog.Default())
	if err := writer.Write(domain.Document{LastUpdated: time.Now().UTC()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	if strings.Contains(string(data), "stale") {
		t.Fatalf("expected prior file to be replaced")
	}
}
