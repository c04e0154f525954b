package domain

import (
	"fmt"
	"time"
)

// Category labels an article for the digest renderer. The renderer depends
// on exactly these four values.
type Category string

const (
	CategoryDefence       Category = "Defence"
	CategoryNational      Category = "National"
	CategoryInternational Category = "International"
	CategorySciTech       Category = "Sci & Tech"
)

// ParseCategory validates a category string returned by the summarizer.
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryDefence, CategoryNational, CategoryInternational, CategorySciTech:
		return Category(raw), nil
	}

	return "", fmt.Errorf("unknown category %q", raw)
}

// RawArticle is a source article before enrichment. It lives only for the
// duration of one run.
type RawArticle struct {
	Title       string
	URL         string
	PublishedAt time.Time
	BodyText    string
}

// AIResult is the parsed summarizer output for a single article.
type AIResult struct {
	Summary  string
	Category Category
}

// EnrichedArticle is a raw article with its summary and category attached.
type EnrichedArticle struct {
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	URL      string    `json:"url"`
	Category Category  `json:"category"`
	Date     time.Time `json:"date"`
}

// Document is the full output of one run. Articles never share a URL.
type Document struct {
	LastUpdated time.Time         `json:"last_updated"`
	Articles    []EnrichedArticle `json:"articles"`
}
