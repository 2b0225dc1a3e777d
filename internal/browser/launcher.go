package browser

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/playwright-community/playwright-go"

	"github.com/neboloop/webskills/internal/logging"
)

// launchArgs are applied to every launch so authenticated sites do not
// visibly flag the session as automated.
var launchArgs = []string{
	"--disable-blink-features=AutomationControlled",
	"--disable-web-security",
}

var (
	pwOnce     sync.Once
	pwInstance *playwright.Playwright
	pwErr      error
)

// getPlaywright returns the process-wide Playwright instance.
func getPlaywright() (*playwright.Playwright, error) {
	pwOnce.Do(func() {
		opts := &playwright.RunOptions{
			Verbose: false,
			Stdout:  io.Discard,
			Stderr:  io.Discard,
		}

		if err := playwright.Install(opts); err != nil {
			pwErr = fmt.Errorf("failed to install playwright browsers: %w", err)
			return
		}

		pw, err := playwright.Run(opts)
		if err != nil {
			pwErr = fmt.Errorf("failed to start playwright: %w", err)
			return
		}
		pwInstance = pw
	})

	return pwInstance, pwErr
}

// SessionHandle owns one live browser instance and the page opened from it.
// It must be closed exactly once regardless of how the run terminates.
type SessionHandle interface {
	Page() Page
	Close() error
}

// Session is the playwright-backed SessionHandle.
type Session struct {
	profile *Profile
	browser playwright.Browser        // nil in persistent-profile mode
	context playwright.BrowserContext
	page    playwright.Page

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Launch starts a browser session. A non-nil profile binds a persistent
// context to that user-data directory; nil launches an ephemeral instance.
// A locked profile directory surfaces as ErrLaunch; closing the other
// browser is a user action, so there is no retry here.
func Launch(profile *Profile, headless bool) (SessionHandle, error) {
	pw, err := getPlaywright()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	session := &Session{profile: profile}

	if profile != nil {
		context, err := pw.Chromium.LaunchPersistentContext(profile.Dir, playwright.BrowserTypeLaunchPersistentContextOptions{
			Headless: playwright.Bool(headless),
			Args:     launchArgs,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v (is another %s instance using this profile? close it and retry)", ErrLaunch, err, profile.Vendor)
		}
		session.context = context

		// Persistent contexts open with an initial tab.
		if pages := context.Pages(); len(pages) > 0 {
			session.page = pages[0]
		} else {
			page, err := context.NewPage()
			if err != nil {
				_ = context.Close()
				return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
			}
			session.page = page
		}

		logging.Infof("launched %s with persistent profile %s", profile.Vendor, profile.Dir)
		return session, nil
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args:     launchArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	session.browser = browser

	context, err := browser.NewContext()
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	session.context = context

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		_ = browser.Close()
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	session.page = page

	logging.Info("launched ephemeral browser session")
	return session, nil
}

// Page returns the session's page. Operations on it fail with
// ErrSessionClosed once the session is closed.
func (s *Session) Page() Page {
	return &pwPage{page: s.page, closed: &s.closed}
}

// Close releases the browser. Safe to call more than once; only the first
// call does anything.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.context != nil {
			if err := s.context.Close(); err != nil {
				s.closeErr = err
			}
		}
		if s.browser != nil {
			if err := s.browser.Close(); err != nil && s.closeErr == nil {
				s.closeErr = err
			}
		}
	})
	return s.closeErr
}
