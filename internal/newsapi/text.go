package newsapi

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractText flattens possibly-HTML body text into plain text. NewsAPI
// descriptions occasionally embed markup that would otherwise leak into the
// summarizer prompt. Falls back to the trimmed input when parsing fails.
func extractText(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.ContainsAny(raw, "<>") {
		return raw
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
