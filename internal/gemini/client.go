package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsdigest/internal/domain"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.5-flash"

	defaultMaxAttempts = 3
	defaultRetryDelay  = 5 * time.Second
	defaultTimeout     = 20 * time.Second

	promptTemplate = `You are an expert news summarizer for an SSB (Service Selection Board) academy website.
Summarize this news for an SSB aspirant in about 60 words, providing slightly more detail.
Also assign a category: "Defence", "National", "International", or "Sci & Tech".

Analyze the text and return *only* a single valid JSON object in the following format:
{"summary": "Your concise summary here.", "category": "One of the categories"}

ARTICLE TEXT:
"%s"`
)

// Config wires the text-generation credentials and retry knobs.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxAttempts int
	RetryDelay  time.Duration
	Timeout     time.Duration
}

// Client produces a summary and category for article body text via the
// Gemini generateContent endpoint.
type Client struct {
	http        *resty.Client
	apiKey      string
	model       string
	maxAttempts int
	retryDelay  time.Duration
	log         *slog.Logger
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{
		http:        httpClient,
		apiKey:      cfg.APIKey,
		model:       model,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		log:         log,
	}
}

// Summarize asks the model for a summary and category of the given body
// text, retrying up to the configured attempt bound with a fixed delay.
// An exhausted budget returns the last error; the caller decides to skip.
func (c *Client) Summarize(
	ctx context.Context,
	bodyText string,
) (domain.AIResult, error) {
	bodyText = strings.TrimSpace(bodyText)
	if bodyText == "" {
		return domain.AIResult{}, fmt.Errorf("body text is empty")
	}

	prompt := fmt.Sprintf(promptTemplate, bodyText)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		result, err := c.generateOnce(ctx, prompt)
		if err == nil {
			return result, nil
		}
		lastErr = err

		c.log.WarnContext(ctx, "Summarization attempt failed",
			"error", err,
			"attempt", attempt,
			"maxAttempts", c.maxAttempts)

		if attempt == c.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return domain.AIResult{}, ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}

	return domain.AIResult{}, fmt.Errorf(
		"summarize after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) generateOnce(
	ctx context.Context,
	prompt string,
) (domain.AIResult, error) {
	var body generateResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(generateRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		}).
		SetResult(&body).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return domain.AIResult{}, fmt.Errorf("post generate: %w", err)
	}

	if resp.IsError() {
		return domain.AIResult{}, fmt.Errorf(
			"generate returned HTTP %d: %s",
			resp.StatusCode(),
			responseSnippet(resp.Body()),
		)
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return domain.AIResult{}, fmt.Errorf("response has no candidate text")
	}

	return decodeAIResult(body.Candidates[0].Content.Parts[0].Text)
}

func responseSnippet(body []byte) string {
	const maxLen = 512

	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}

	return s
}
