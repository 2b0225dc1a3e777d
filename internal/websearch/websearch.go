// Package websearch queries the DuckDuckGo HTML endpoint and returns
// structured results. No API key, no browser.
package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultBaseURL = "https://html.duckduckgo.com/html/"
	defaultMax     = 10
	userAgent      = "webskills/1.0 (+https://github.com/neboloop/webskills)"
)

// Result is one search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Client performs searches. The zero value uses the live endpoint; tests
// point BaseURL at a local server.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

// Search runs a query and returns up to max results.
func (c *Client) Search(ctx context.Context, query string, max int) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is required")
	}
	if max <= 0 {
		max = defaultMax
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("search returned status code %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}

	results := []Result{}
	doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(results) >= max {
			return false
		}

		anchor := s.Find("a.result__a").First()
		href, _ := anchor.Attr("href")
		title := strings.TrimSpace(anchor.Text())
		if title == "" || href == "" {
			return true
		}

		results = append(results, Result{
			Title:   title,
			URL:     resolveRedirect(href),
			Snippet: strings.Join(strings.Fields(s.Find(".result__snippet").Text()), " "),
		})
		return true
	})

	return results, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg=… redirect links to the
// destination URL.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.Contains(u.Host+u.Path, "duckduckgo.com/l/") && !strings.HasPrefix(u.Path, "/l/") {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
