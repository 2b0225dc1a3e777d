package browser

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/playwright-community/playwright-go"
)

// GotoOptions configures navigation.
type GotoOptions struct {
	WaitUntil string // "load", "domcontentloaded", "networkidle"
	Timeout   time.Duration
}

// Page is the slice of the browser page surface the session flow needs.
// The playwright-backed implementation lives in this package; tests use fakes.
type Page interface {
	Goto(url string, opts GotoOptions) error
	WaitForSelector(selector string, timeout time.Duration) (Element, error)
	QuerySelector(selector string) (Element, error)
	QuerySelectorAll(selector string) ([]Element, error)
	Evaluate(expression string) (any, error)
	Screenshot(path string) error
	URL() string
}

// Element is a bound DOM element.
type Element interface {
	GetAttribute(name string) (string, error)
	InnerText() (string, error)
	Evaluate(expression string) (any, error)
	Click(force bool) error
	Fill(value string) error
}

// pwPage adapts a playwright page to the Page interface.
type pwPage struct {
	page   playwright.Page
	closed *atomic.Bool // owning session's closed flag, nil for detached pages
}

func (p *pwPage) check() error {
	if p.closed != nil && p.closed.Load() {
		return ErrSessionClosed
	}
	return nil
}

func (p *pwPage) Goto(url string, opts GotoOptions) error {
	if err := p.check(); err != nil {
		return err
	}
	waitUntil := playwright.WaitUntilStateLoad
	switch opts.WaitUntil {
	case "domcontentloaded":
		waitUntil = playwright.WaitUntilStateDomcontentloaded
	case "networkidle":
		waitUntil = playwright.WaitUntilStateNetworkidle
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultNavTimeout
	}

	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: waitUntil,
		Timeout:   playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

func (p *pwPage) WaitForSelector(selector string, timeout time.Duration) (Element, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	handle, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, fmt.Errorf("selector not found: %s", selector)
	}
	return &pwElement{handle: handle}, nil
}

func (p *pwPage) QuerySelector(selector string) (Element, error) {
	handle, err := p.page.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, nil
	}
	return &pwElement{handle: handle}, nil
}

func (p *pwPage) QuerySelectorAll(selector string) ([]Element, error) {
	handles, err := p.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	elements := make([]Element, 0, len(handles))
	for _, h := range handles {
		elements = append(elements, &pwElement{handle: h})
	}
	return elements, nil
}

func (p *pwPage) Evaluate(expression string) (any, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	return p.page.Evaluate(expression)
}

func (p *pwPage) Screenshot(path string) error {
	if err := p.check(); err != nil {
		return err
	}
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}

func (p *pwPage) URL() string {
	return p.page.URL()
}

// pwElement adapts a playwright element handle to the Element interface.
type pwElement struct {
	handle playwright.ElementHandle
}

func (e *pwElement) GetAttribute(name string) (string, error) {
	return e.handle.GetAttribute(name)
}

func (e *pwElement) InnerText() (string, error) {
	return e.handle.InnerText()
}

func (e *pwElement) Evaluate(expression string) (any, error) {
	return e.handle.Evaluate(expression)
}

func (e *pwElement) Click(force bool) error {
	return e.handle.Click(playwright.ElementHandleClickOptions{
		Force: playwright.Bool(force),
	})
}

func (e *pwElement) Fill(value string) error {
	return e.handle.Fill(value)
}
