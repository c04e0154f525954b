package newsapi

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"newsdigest/internal/domain"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://newsapi.org/v2"

	defaultTimeout = 15 * time.Second
	language       = "en"
	sortBy         = "publishedAt"
)

// Config wires the NewsAPI credentials and transport knobs.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client fetches recent articles from the NewsAPI "everything" endpoint.
type Client struct {
	http   *resty.Client
	apiKey string
	log    *slog.Logger
}

type apiArticle struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

type apiResponse struct {
	Status   string       `json:"status"`
	Message  string       `json:"message"`
	Articles []apiArticle `json:"articles"`
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{
		http:   httpClient,
		apiKey: cfg.APIKey,
		log:    log,
	}
}

// Search fetches up to pageSize recent English articles matching the keyword
// query, newest first. Articles without a title, URL, or usable body text are
// dropped before they reach the caller. There is no retry here: without a
// source list the run cannot proceed.
func (c *Client) Search(
	ctx context.Context,
	query string,
	pageSize int,
) ([]domain.RawArticle, error) {
	var body apiResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        query,
			"language": language,
			"sortBy":   sortBy,
			"pageSize": strconv.Itoa(pageSize),
			"apiKey":   c.apiKey,
		}).
		SetResult(&body).
		SetError(&body).
		Get("/everything")
	if err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	if body.Status != "ok" {
		return nil, fmt.Errorf(
			"news provider returned status %q (HTTP %d): %s",
			body.Status,
			resp.StatusCode(),
			body.Message,
		)
	}

	articles := make([]domain.RawArticle, 0, len(body.Articles))
	for _, a := range body.Articles {
		raw, ok := c.toRawArticle(ctx, a)
		if !ok {
			continue
		}

		articles = append(articles, raw)
	}

	return articles, nil
}

func (c *Client) toRawArticle(
	ctx context.Context,
	a apiArticle,
) (domain.RawArticle, bool) {
	title := strings.TrimSpace(a.Title)
	articleURL := strings.TrimSpace(a.URL)

	bodyText := extractText(a.Content)
	if bodyText == "" {
		bodyText = extractText(a.Description)
	}

	if title == "" || articleURL == "" || bodyText == "" {
		c.log.DebugContext(ctx, "Dropping incomplete article",
			"title", title,
			"url", articleURL,
			"hasBody", bodyText != "")

		return domain.RawArticle{}, false
	}

	publishedAt, err := time.Parse(time.RFC3339, strings.TrimSpace(a.PublishedAt))
	if err != nil {
		c.log.DebugContext(ctx, "Article has unparseable publish date",
			"url", articleURL,
			"publishedAt", a.PublishedAt)
	}

	return domain.RawArticle{
		Title:       title,
		URL:         articleURL,
		PublishedAt: publishedAt,
		BodyText:    bodyText,
	}, true
}
