package browser

import (
	"context"
	"time"

	"github.com/neboloop/webskills/internal/logging"
)

// Authenticated reports whether the loaded page reflects a logged-in
// session. All indicators race; the first one to appear in the DOM wins and
// the rest are abandoned. A timeout with no indicator is a normal
// not-authenticated outcome, never an error.
func Authenticated(ctx context.Context, page Page, indicators []string, timeout time.Duration) bool {
	if len(indicators) == 0 {
		return false
	}
	if timeout == 0 {
		timeout = DefaultProbeTimeout
	}

	hit := make(chan string, len(indicators))
	for _, selector := range indicators {
		go func(selector string) {
			if _, err := page.WaitForSelector(selector, timeout); err == nil {
				hit <- selector
			}
		}(selector)
	}

	select {
	case selector := <-hit:
		logging.Infof("authenticated (indicator %s)", selector)
		return true
	case <-time.After(timeout):
		return false
	case <-ctx.Done():
		return false
	}
}
