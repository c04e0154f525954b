package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsdigest/internal/domain"
	"newsdigest/internal/output"
)

const titleLogPrefixMaxChars = 30

// Source pulls the raw article list for a run.
type Source interface {
	Search(ctx context.Context, query string, pageSize int) ([]domain.RawArticle, error)
}

// Summarizer produces a summary and category for article body text.
type Summarizer interface {
	Summarize(ctx context.Context, bodyText string) (domain.AIResult, error)
}

// Writer persists the finished document.
type Writer interface {
	Write(doc domain.Document) error
}

// Pipeline runs one fetch-enrich-deduplicate-write cycle.
type Pipeline struct {
	source     Source
	summarizer Summarizer
	writer     Writer
	query      string
	pageSize   int
	log        *slog.Logger
}

// Deps wires the pipeline's collaborators and run parameters.
type Deps struct {
	Source     Source
	Summarizer Summarizer
	Writer     Writer
	Query      string
	PageSize   int
	Log        *slog.Logger
}

func New(deps Deps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		summarizer: deps.Summarizer,
		writer:     deps.Writer,
		query:      deps.Query,
		pageSize:   deps.PageSize,
		log:        deps.Log,
	}
}

// Run executes one full cycle and returns the written document. A source or
// write failure fails the run; a per-article summarization failure only
// skips that article. The run timestamp is captured once at the start and
// stamps the whole batch.
func (p *Pipeline) Run(ctx context.Context) (domain.Document, error) {
	startedAt := time.Now().UTC()

	p.log.InfoContext(ctx, "Fetching articles",
		"query", p.query,
		"pageSize", p.pageSize)

	rawArticles, err := p.source.Search(ctx, p.query, p.pageSize)
	if err != nil {
		return domain.Document{}, fmt.Errorf("fetch news: %w", err)
	}

	enriched := p.enrich(ctx, rawArticles)

	unique := output.Deduplicate(enriched)

	p.log.InfoContext(ctx, "Run counts",
		"fetched", len(rawArticles),
		"enriched", len(enriched),
		"unique", len(unique))

	doc := domain.Document{
		LastUpdated: startedAt,
		Articles:    unique,
	}

	if err = p.writer.Write(doc); err != nil {
		return domain.Document{}, fmt.Errorf("write document: %w", err)
	}

	return doc, nil
}

// enrich summarizes the raw articles one at a time, preserving source order.
func (p *Pipeline) enrich(
	ctx context.Context,
	rawArticles []domain.RawArticle,
) []domain.EnrichedArticle {
	enriched := make([]domain.EnrichedArticle, 0, len(rawArticles))

	for _, raw := range rawArticles {
		titlePrefix := titleLogPrefix(raw.Title)

		p.log.InfoContext(ctx, "Processing article",
			"title", titlePrefix,
			"url", raw.URL)

		result, err := p.summarizer.Summarize(ctx, raw.BodyText)
		if err != nil {
			p.log.WarnContext(ctx, "Skipping article after summarization failure",
				"error", err,
				"title", titlePrefix,
				"url", raw.URL)

			continue
		}

		enriched = append(enriched, domain.EnrichedArticle{
			Title:    raw.Title,
			Summary:  result.Summary,
			URL:      raw.URL,
			Category: result.Category,
			Date:     raw.PublishedAt,
		})

		p.log.InfoContext(ctx, "Article is enriched",
			"title", titlePrefix,
			"category", result.Category)
	}

	return enriched
}

func titleLogPrefix(title string) string {
	runes := []rune(title)
	if len(runes) <= titleLogPrefixMaxChars {
		return title
	}

	return string(runes[:titleLogPrefixMaxChars]) + "..."
}
