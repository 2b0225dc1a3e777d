// Package fetch is the lightweight, no-browser page fetcher: plain HTTP
// plus HTML extraction. It covers articles, docs and other static pages
// where spinning up an authenticated browser session would be overkill.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultMaxLength = 4000
	userAgent        = "webskills/1.0 (+https://github.com/neboloop/webskills)"
)

// PageOptions configures a page fetch.
type PageOptions struct {
	// Selector narrows extraction to matching elements.
	Selector string

	// MaxLength truncates the extracted text; 0 uses the default.
	MaxLength int

	Timeout time.Duration
}

// PageResult is the fetched page payload.
type PageResult struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Text       string `json:"text"`
	StatusCode int    `json:"status_code"`
}

// Page fetches a URL and extracts readable text.
func Page(ctx context.Context, rawURL string, opts PageOptions) (*PageResult, error) {
	parsed, doc, status, err := fetchDocument(ctx, rawURL, opts.Timeout)
	if err != nil {
		return nil, err
	}

	maxLength := opts.MaxLength
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}

	// Boilerplate nodes only pollute the text.
	doc.Find("script, style, noscript").Remove()

	var selection *goquery.Selection
	if strings.TrimSpace(opts.Selector) != "" {
		selection = doc.Find(opts.Selector)
		if selection.Length() == 0 {
			return nil, fmt.Errorf("selector returned no elements: %s", opts.Selector)
		}
	} else {
		selection = doc.Find("body")
	}

	text := strings.Join(strings.Fields(selection.Text()), " ")
	if len(text) > maxLength {
		text = text[:maxLength] + "…"
	}

	return &PageResult{
		URL:        parsed.String(),
		Title:      strings.TrimSpace(doc.Find("title").First().Text()),
		Text:       text,
		StatusCode: status,
	}, nil
}

// Link is one categorized link from a page.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind"` // "internal", "external" or "resource"
}

// LinksResult is the link-extraction payload.
type LinksResult struct {
	URL   string `json:"url"`
	Count int    `json:"count"`
	Links []Link `json:"links"`
}

// resourceExts mark links that point at files rather than pages.
var resourceExts = map[string]bool{
	".pdf": true, ".zip": true, ".tar": true, ".gz": true, ".doc": true,
	".docx": true, ".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true,
	".mp3": true, ".mp4": true, ".csv": true, ".json": true, ".xml": true,
}

// Links fetches a URL and extracts every anchor, categorized as internal,
// external or resource. A limit of 0 means no limit.
func Links(ctx context.Context, rawURL string, limit int) (*LinksResult, error) {
	parsed, doc, _, err := fetchDocument(ctx, rawURL, 0)
	if err != nil {
		return nil, err
	}

	links := []Link{}
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if limit > 0 && len(links) >= limit {
			return false
		}
		href, exists := s.Attr("href")
		if !exists {
			return true
		}
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
			return true
		}

		linkURL, err := parsed.Parse(href)
		if err != nil {
			return true
		}

		title := strings.TrimSpace(s.Text())
		if title == "" {
			title = linkURL.String()
		}

		links = append(links, Link{
			Title: title,
			URL:   linkURL.String(),
			Kind:  classify(parsed, linkURL),
		})
		return true
	})

	return &LinksResult{URL: parsed.String(), Count: len(links), Links: links}, nil
}

func classify(base, link *url.URL) string {
	if resourceExts[strings.ToLower(path.Ext(link.Path))] {
		return "resource"
	}
	if link.Hostname() == base.Hostname() {
		return "internal"
	}
	return "external"
}

func fetchDocument(ctx context.Context, rawURL string, timeout time.Duration) (*url.URL, *goquery.Document, int, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, nil, 0, fmt.Errorf("invalid url: %s", rawURL)
	}

	if timeout == 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, nil, resp.StatusCode, fmt.Errorf("received status code %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, nil, resp.StatusCode, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return parsed, doc, resp.StatusCode, nil
}
