package browser

import "time"

const (
	// DefaultProbeTimeout bounds the initial authentication check. An
	// already-authenticated page reflects its state almost immediately
	// after load, so this stays short.
	DefaultProbeTimeout = 5 * time.Second

	// DefaultLoginTimeout bounds the interactive login wait. Sized for a
	// human completing a login, not for page load times.
	DefaultLoginTimeout = 5 * time.Minute

	// DefaultNavTimeout bounds navigation. Navigation overruns are
	// tolerated, not fatal.
	DefaultNavTimeout = 60 * time.Second

	// DefaultLocateTimeout bounds each candidate in a selector fallback
	// chain independently.
	DefaultLocateTimeout = 5 * time.Second

	// DefaultDisabledGrace is how long to wait before rechecking a
	// disabled control once. UI frameworks often enable controls
	// asynchronously after input.
	DefaultDisabledGrace = 3 * time.Second

	// DefaultScreenshotFile is where diagnostic screenshots land on
	// unrecoverable action failures.
	DefaultScreenshotFile = "webskills_error.png"
)
