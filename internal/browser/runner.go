package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neboloop/webskills/internal/logging"
)

// RunOptions configures one authenticated-session run.
type RunOptions struct {
	// TargetURL is the page the action runs against.
	TargetURL string

	// Indicators are selectors whose presence signals a logged-in
	// session. Order is preference, not exclusivity; the first to appear
	// wins.
	Indicators []string

	// LoginURL, when set, is where the interactive login wait navigates
	// before notifying the user.
	LoginURL string

	// Headless runs the browser without UI. Interactive login generally
	// needs a headed browser.
	Headless bool

	// NoProfile skips persistent-profile resolution and always uses an
	// ephemeral session.
	NoProfile bool

	ProbeTimeout time.Duration
	LoginTimeout time.Duration
	NavTimeout   time.Duration

	// ScreenshotPath is where a diagnostic screenshot is written when the
	// action fails. Capture is best-effort.
	ScreenshotPath string
}

// Action is the caller-supplied routine run against the authenticated page.
type Action func(ctx context.Context, page Page) (any, error)

// RunResult is the terminal record of a run. The CLI emits it as a single
// JSON object so orchestrating callers can parse it.
type RunResult struct {
	RunID              string `json:"run_id"`
	Success            bool   `json:"success"`
	URL                string `json:"url,omitempty"`
	Payload            any    `json:"payload,omitempty"`
	DiagnosticArtifact string `json:"diagnostic_artifact,omitempty"`
	Error              string `json:"error,omitempty"`

	// Err carries the underlying failure for errors.Is checks; the JSON
	// record only gets the message.
	Err error `json:"-"`
}

// Runner drives the session state machine:
//
//	Init -> Launching -> Navigating -> Probing -> {Extracting | AwaitingLogin} -> Done | Failed
//
// NewRunner wires the real resolver, launcher and notifier; tests swap in
// fakes. The session handle is acquired at Launching and released on every
// exit path, including panics raised by the action.
type Runner struct {
	Resolve func() *Profile
	Launch  func(profile *Profile, headless bool) (SessionHandle, error)
	Notify  Notifier
}

// NewRunner returns a Runner bound to the real browser stack.
func NewRunner() *Runner {
	return &Runner{
		Resolve: ResolveProfile,
		Launch:  Launch,
		Notify:  NotifyUser,
	}
}

// Run executes the full state machine and always returns a RunResult; fatal
// conditions surface there, never as a panic or a leaked session.
func (r *Runner) Run(ctx context.Context, opts RunOptions, action Action) *RunResult {
	result := &RunResult{RunID: uuid.NewString()[:8]}

	if opts.ProbeTimeout == 0 {
		opts.ProbeTimeout = DefaultProbeTimeout
	}
	if opts.LoginTimeout == 0 {
		opts.LoginTimeout = DefaultLoginTimeout
	}
	if opts.NavTimeout == 0 {
		opts.NavTimeout = DefaultNavTimeout
	}
	if opts.ScreenshotPath == "" {
		opts.ScreenshotPath = DefaultScreenshotFile
	}

	// Init: resolve profile. Absence degrades to an ephemeral session.
	var profile *Profile
	if !opts.NoProfile {
		profile = r.Resolve()
		if profile != nil {
			logging.Infof("using %s profile at %s", profile.Vendor, profile.Dir)
		} else {
			logging.Warn("no persistent browser profile found, using ephemeral session")
		}
	}

	// Launching: fatal on failure, nothing to release yet.
	session, err := r.Launch(profile, opts.Headless)
	if err != nil {
		return result.fail(err)
	}
	defer session.Close()

	page := session.Page()

	// Navigating: a timeout is tolerated; some sites never settle.
	if err := page.Goto(opts.TargetURL, GotoOptions{WaitUntil: "domcontentloaded", Timeout: opts.NavTimeout}); err != nil {
		logging.Warnf("navigation to %s did not settle: %v (continuing)", opts.TargetURL, err)
	}

	// Probing.
	if !Authenticated(ctx, page, opts.Indicators, opts.ProbeTimeout) {
		logging.Info("not authenticated")

		if !AwaitLogin(ctx, page, opts.Indicators, LoginWaitOptions{
			LoginURL: opts.LoginURL,
			Timeout:  opts.LoginTimeout,
			Notify:   r.Notify,
		}) {
			return result.fail(fmt.Errorf("%w after %s", ErrLoginTimeout, opts.LoginTimeout))
		}

		// The login flow may have navigated away; the session cookie is
		// host-scoped, so returning to the target is required.
		if err := page.Goto(opts.TargetURL, GotoOptions{WaitUntil: "domcontentloaded", Timeout: opts.NavTimeout}); err != nil {
			logging.Warnf("re-navigation to %s did not settle: %v (continuing)", opts.TargetURL, err)
		}
	}

	// Extracting.
	payload, err := runAction(ctx, page, action)
	if err != nil {
		if path := captureScreenshot(page, opts.ScreenshotPath); path != "" {
			result.DiagnosticArtifact = path
		}
		return result.fail(err)
	}

	result.Success = true
	result.Payload = payload
	result.URL = page.URL()
	return result
}

func (r *RunResult) fail(err error) *RunResult {
	r.Success = false
	r.Err = err
	r.Error = err.Error()
	return r
}

// runAction isolates the caller-supplied routine so a panic becomes a
// Failed result instead of tearing down the process with the browser open.
func runAction(ctx context.Context, page Page, action Action) (payload any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("action panicked: %v", rec)
		}
	}()
	return action(ctx, page)
}

// captureScreenshot writes a diagnostic screenshot, best-effort. Failure to
// capture is ignored; the run is already failing for another reason.
func captureScreenshot(page Page, path string) string {
	if err := page.Screenshot(path); err != nil {
		logging.Warnf("diagnostic screenshot failed: %v", err)
		return ""
	}
	logging.Infof("diagnostic screenshot written to %s", path)
	return path
}
