// Package post is the social-publishing routine: open the composer, fill
// the rich-text input, and submit, each UI target located through a
// selector fallback chain from the site manifest.
package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neboloop/webskills/internal/browser"
	"github.com/neboloop/webskills/internal/logging"
	"github.com/neboloop/webskills/internal/sites"
)

const (
	composeTimeout = 5 * time.Second
	inputTimeout   = 5 * time.Second
	submitTimeout  = 5 * time.Second

	composeSettle = 3 * time.Second
	fillSettle    = 1 * time.Second
	submitSettle  = 5 * time.Second
)

// Options configures one publish.
type Options struct {
	Site    sites.Site
	Content string

	// Grace overrides the disabled-control recheck delay. Tests shorten it.
	Grace time.Duration

	// Settle overrides the fixed settle delays between steps. Tests
	// shorten it.
	Settle time.Duration
}

func (o Options) settle(d time.Duration) time.Duration {
	if o.Settle > 0 {
		return o.Settle
	}
	return d
}

// Result is the publish payload.
type Result struct {
	Posted  bool   `json:"posted"`
	Content string `json:"content"`
	Via     string `json:"via,omitempty"` // selector that submitted
}

// Action builds the publishing routine for the session runner.
func Action(opts Options) browser.Action {
	return func(ctx context.Context, page browser.Page) (any, error) {
		site := opts.Site

		openComposer(page, site)
		if err := sleep(ctx, opts.settle(composeSettle)); err != nil {
			return nil, err
		}

		input, selector, err := browser.Locate(page, site.Input, inputTimeout)
		if err != nil {
			return nil, fmt.Errorf("compose input: %w", err)
		}
		logging.Infof("filling composer via %s", selector)
		if err := input.Fill(opts.Content); err != nil {
			return nil, fmt.Errorf("failed to fill composer: %w", err)
		}
		if err := sleep(ctx, opts.settle(fillSettle)); err != nil {
			return nil, err
		}

		submit, selector, err := browser.Locate(page, site.Submit, submitTimeout)
		if err != nil {
			return nil, fmt.Errorf("submit control: %w", err)
		}
		if err := browser.Invoke(submit, opts.Grace); err != nil {
			return nil, fmt.Errorf("submit: %w", err)
		}
		logging.Infof("submitted via %s", selector)

		// Let the post go out before the session is torn down.
		if err := sleep(ctx, opts.settle(submitSettle)); err != nil {
			return nil, err
		}

		return &Result{Posted: true, Content: opts.Content, Via: selector}, nil
	}
}

// openComposer clicks the compose trigger when one can be located, and
// falls back to navigating straight to the composer URL otherwise. Neither
// failing is fatal here; the input chain decides that.
func openComposer(page browser.Page, site sites.Site) {
	if len(site.Compose) > 0 {
		element, selector, err := browser.Locate(page, site.Compose, composeTimeout)
		if err == nil {
			if err := browser.Invoke(element, 0); err == nil {
				logging.Infof("opened composer via %s", selector)
				return
			}
		} else if !errors.Is(err, browser.ErrElementNotFound) {
			logging.Warnf("compose trigger lookup failed: %v", err)
		}
	}

	if site.ComposeURL != "" {
		logging.Infof("opening composer at %s", site.ComposeURL)
		if err := page.Goto(site.ComposeURL, browser.GotoOptions{WaitUntil: "domcontentloaded"}); err != nil {
			logging.Warnf("composer navigation did not settle: %v (continuing)", err)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
