// Package fetch retrieves a web page and extracts its readable text so the
// cleanflux CLI can submit page content to the API.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/cleanflux/cleanflux-go/internal/logger"
)

// Config holds fetch configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Chrome user agent for better compatibility with bot-protected sites
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// Page represents fetched page data.
type Page struct {
	URL        string
	Title      string
	Text       string // Extracted readable text
	HTML       string
	StatusCode int
	FetchedAt  time.Time
}

// Text fetches a URL and extracts its visible text. The context bounds the
// whole fetch; colly itself only honors the configured timeout, so the
// context is checked at request boundaries.
func Text(ctx context.Context, targetURL string, cfg Config) (Page, error) {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	result := Page{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	logger.Debug("fetch starting", "url", targetURL, "user_agent", cfg.UserAgent)

	// New collector per request
	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
	)
	c.SetRequestTimeout(cfg.Timeout)

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.HTML = string(r.Body)
		logger.Debug("fetch response received", "status", r.StatusCode, "body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := c.Visit(targetURL); err != nil {
		return result, fmt.Errorf("failed to visit URL: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if fetchErr != nil {
		return result, fetchErr
	}

	if result.HTML != "" {
		if err := extractText(&result); err != nil {
			return result, fmt.Errorf("failed to parse content: %w", err)
		}
	}

	logger.Debug("fetch complete", "url", targetURL, "title", result.Title, "text_size", len(result.Text))
	return result, nil
}

// extractText pulls the title and visible body text out of the fetched HTML.
func extractText(page *Page) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return err
	}

	page.Title = strings.TrimSpace(doc.Find("title").First().Text())

	// Remove non-content elements before extracting text
	doc.Find("script, style, noscript, iframe, svg").Remove()

	var parts []string
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		if text := collapseWhitespace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	page.Text = strings.Join(parts, "\n")

	return nil
}

// collapseWhitespace normalizes runs of whitespace to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
