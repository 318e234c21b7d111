// Package content fetches web pages and turns them into analyzable items.
package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/dom"
	"github.com/markusmobius/go-trafilatura"

	"github.com/postwise/seoscope/pkg/domain"
	"github.com/postwise/seoscope/pkg/seo"
)

// HTTPExtractor extracts page content from URLs using trafilatura
type HTTPExtractor struct {
	timeout       time.Duration
	userAgent     string
	minTextLength int
	client        *http.Client
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(timeout time.Duration, userAgent string, minTextLength int) *HTTPExtractor {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; Seoscope/1.0)"
	}
	return &HTTPExtractor{
		timeout:       timeout,
		userAgent:     userAgent,
		minTextLength: minTextLength,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Extract retrieves the page at the given URL and builds a content item from it
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (*domain.ContentItem, error) {
	// validate URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	// create request with context
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,de;q=0.8")

	// fetch content
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	item, err := e.FromHTML(resp.Body, parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	return item, nil
}

// FromHTML builds a content item from raw page HTML. The page URL may be nil,
// in that case the slug is derived from the extracted title.
func (e *HTTPExtractor) FromHTML(r io.Reader, pageURL *url.URL) (*domain.ContentItem, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}

	// configure trafilatura options
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		Deduplicate:     true,
		OriginalURL:     pageURL,
	}

	result, err := trafilatura.Extract(bytes.NewReader(buf.Bytes()), opts)
	if err != nil {
		return nil, fmt.Errorf("extract content: %w", err)
	}
	if result == nil || strings.TrimSpace(result.ContentText) == "" {
		return nil, fmt.Errorf("no text content extracted")
	}
	if len(result.ContentText) < e.minTextLength {
		return nil, fmt.Errorf("extracted content too short: %d chars", len(result.ContentText))
	}

	item := &domain.ContentItem{
		Title:           result.Metadata.Title,
		MetaDescription: result.Metadata.Description,
	}

	// the main content keeps its markup so heading and image checks still apply
	if result.ContentNode != nil {
		item.Body = dom.OuterHTML(result.ContentNode)
	} else {
		item.Body = result.ContentText
	}

	// trafilatura misses the title or description on some pages, goquery
	// reads them straight from the head
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	if err == nil {
		if item.Title == "" {
			item.Title = strings.TrimSpace(doc.Find("title").First().Text())
		}
		if item.MetaDescription == "" {
			item.MetaDescription, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
		}
	}

	item.Slug = slugFromURL(pageURL)
	if item.Slug == "" {
		item.Slug = seo.Slugify(item.Title)
	}

	return item, nil
}

// slugFromURL returns the last non-empty path segment
func slugFromURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return strings.TrimSuffix(segments[i], ".html")
		}
	}
	return ""
}
