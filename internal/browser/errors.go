package browser

import "errors"

var (
	// ErrLaunch means the browser could not start, usually because the
	// profile directory is locked by a running browser instance.
	ErrLaunch = errors.New("browser launch failed")

	// ErrLoginTimeout means the user did not complete the interactive
	// login before the wait bound elapsed.
	ErrLoginTimeout = errors.New("login wait timed out")

	// ErrElementNotFound means no candidate selector for a UI target
	// resolved within its timeout.
	ErrElementNotFound = errors.New("element not found")

	// ErrSessionClosed means an operation was attempted on a closed session.
	ErrSessionClosed = errors.New("session is closed")
)
