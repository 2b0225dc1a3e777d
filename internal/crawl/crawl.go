// Package crawl is the generic logged-in-page extraction routine run by the
// session state machine once authentication is confirmed.
package crawl

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/neboloop/webskills/internal/browser"
	"github.com/neboloop/webskills/internal/logging"
)

const scrollSettle = 2 * time.Second

// Options configures the extraction.
type Options struct {
	// Selector narrows extraction to matching elements; empty extracts
	// the whole body text.
	Selector string

	// Wait is an extra settle delay after load, for pages that render
	// late.
	Wait time.Duration

	// Scroll scrolls to the bottom first to trigger lazy loading.
	Scroll bool

	// MaxLength truncates the extracted content; 0 means no limit.
	MaxLength int

	// SavePath also writes the content to a file when set.
	SavePath string
}

// Result is the crawler payload.
type Result struct {
	URL     string `json:"url"`
	Content string `json:"content"`
	Saved   string `json:"saved,omitempty"`
}

// Action builds the extraction routine for the session runner.
func Action(opts Options) browser.Action {
	return func(ctx context.Context, page browser.Page) (any, error) {
		if opts.Wait > 0 {
			if err := sleep(ctx, opts.Wait); err != nil {
				return nil, err
			}
		}

		if opts.Scroll {
			if _, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)"); err != nil {
				logging.Warnf("scroll failed: %v", err)
			}
			if err := sleep(ctx, scrollSettle); err != nil {
				return nil, err
			}
		}

		content, err := extract(page, opts.Selector)
		if err != nil {
			return nil, err
		}

		if opts.MaxLength > 0 && len(content) > opts.MaxLength {
			content = content[:opts.MaxLength] + "\n\n... (content truncated)"
		}

		result := &Result{URL: page.URL(), Content: content}

		if opts.SavePath != "" {
			if err := os.WriteFile(opts.SavePath, []byte(content), 0644); err != nil {
				return nil, fmt.Errorf("failed to save content: %w", err)
			}
			result.Saved = opts.SavePath
			logging.Infof("saved content to %s", opts.SavePath)
		}

		return result, nil
	}
}

func extract(page browser.Page, selector string) (string, error) {
	if selector == "" {
		v, err := page.Evaluate("document.body.innerText")
		if err != nil {
			return "", fmt.Errorf("body text extraction failed: %w", err)
		}
		text, _ := v.(string)
		return text, nil
	}

	elements, err := page.QuerySelectorAll(selector)
	if err != nil {
		return "", fmt.Errorf("selector query failed: %w", err)
	}
	if len(elements) == 0 {
		return "", fmt.Errorf("%w: %s", browser.ErrElementNotFound, selector)
	}

	parts := make([]string, 0, len(elements))
	for _, el := range elements {
		text, err := el.InnerText()
		if err != nil {
			continue
		}
		parts = append(parts, strings.TrimSpace(text))
	}
	return strings.Join(parts, "\n\n---\n\n"), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
