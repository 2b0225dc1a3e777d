package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/neboloop/webskills/internal/logging"
	"github.com/neboloop/webskills/internal/notify"
)

// Notifier tells the human a login is needed. Exactly one notification is
// emitted per login-wait episode.
type Notifier func(title, body string)

// LoginWaitOptions configures the interactive login fallback.
type LoginWaitOptions struct {
	// LoginURL, when set, is navigated to before the wait begins.
	LoginURL string

	// Timeout bounds the whole wait. Defaults to DefaultLoginTimeout.
	Timeout time.Duration

	// Notify overrides the default OS notification. Used by tests.
	Notify Notifier
}

// AwaitLogin navigates to the login page if one was given, notifies the
// user once, and waits for any authentication indicator to appear. Returns
// false when the bound elapses without a login.
//
// On success the caller must re-navigate to the original target URL before
// proceeding: the login flow may have navigated away, and the session
// cookie is host-scoped, so returning to the target is both safe and
// required.
func AwaitLogin(ctx context.Context, page Page, indicators []string, opts LoginWaitOptions) bool {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultLoginTimeout
	}

	if opts.LoginURL != "" {
		if err := page.Goto(opts.LoginURL, GotoOptions{WaitUntil: "domcontentloaded"}); err != nil {
			logging.Warnf("login page navigation did not settle: %v (continuing)", err)
		}
	}

	notifyFn := opts.Notify
	if notifyFn == nil {
		notifyFn = NotifyUser
	}
	notifyFn("Login required", "Not logged in. Complete the login in the browser window to continue.")

	logging.Infof("waiting for interactive login (up to %s)", timeout)
	if Authenticated(ctx, page, indicators, timeout) {
		logging.Info("login detected")
		return true
	}

	logging.Warn("login wait timed out")
	return false
}

// NotifyUser shows an OS notification, falling back to a console banner
// when the platform dialog mechanism is unavailable.
func NotifyUser(title, body string) {
	if err := notify.Send(title, body); err != nil {
		fmt.Fprintf(os.Stderr, "\n==================================================\n%s\n%s\n==================================================\n\n", title, body)
	}
}
