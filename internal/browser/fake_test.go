package browser

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// fakeElement is an in-memory Element for tests.
type fakeElement struct {
	mu sync.Mutex

	disabled bool
	text     string
	attrs    map[string]string

	clickEvalErr error
	clickErr     error

	evalClicks   int
	forcedClicks int
	filled       string
}

func (e *fakeElement) GetAttribute(name string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attrs[name], nil
}

func (e *fakeElement) InnerText() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text, nil
}

func (e *fakeElement) Evaluate(expression string) (any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if strings.Contains(expression, "disabled") {
		return e.disabled, nil
	}
	if strings.Contains(expression, "click") {
		if e.clickEvalErr != nil {
			return nil, e.clickEvalErr
		}
		e.evalClicks++
		return nil, nil
	}
	return nil, nil
}

func (e *fakeElement) Click(force bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.clickErr != nil {
		return e.clickErr
	}
	e.forcedClicks++
	return nil
}

func (e *fakeElement) Fill(value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filled = value
	return nil
}

// fakePage is an in-memory Page. Selectors present in elements resolve
// immediately; everything else misses immediately, which stands in for a
// selector wait that never completes.
type fakePage struct {
	mu sync.Mutex

	elements map[string]Element
	gotoErrs map[string]error

	gotos  []string
	waited []string

	url           string
	screenshotErr error
	screenshots   []string
}

func newFakePage() *fakePage {
	return &fakePage{
		elements: map[string]Element{},
		gotoErrs: map[string]error{},
		url:      "https://example.test/page",
	}
}

func (p *fakePage) addElement(selector string, el Element) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.elements[selector] = el
}

func (p *fakePage) gotoCalls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.gotos...)
}

func (p *fakePage) waitCalls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.waited...)
}

func (p *fakePage) Goto(url string, opts GotoOptions) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gotos = append(p.gotos, url)
	return p.gotoErrs[url]
}

func (p *fakePage) WaitForSelector(selector string, timeout time.Duration) (Element, error) {
	p.mu.Lock()
	p.waited = append(p.waited, selector)
	el := p.elements[selector]
	p.mu.Unlock()
	if el == nil {
		return nil, ErrElementNotFound
	}
	return el, nil
}

func (p *fakePage) QuerySelector(selector string) (Element, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.elements[selector], nil
}

func (p *fakePage) QuerySelectorAll(selector string) ([]Element, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if el := p.elements[selector]; el != nil {
		return []Element{el}, nil
	}
	return nil, nil
}

func (p *fakePage) Evaluate(expression string) (any, error) {
	return nil, nil
}

func (p *fakePage) Screenshot(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.screenshotErr != nil {
		return p.screenshotErr
	}
	p.screenshots = append(p.screenshots, path)
	return nil
}

func (p *fakePage) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

// fakeSession wraps a fakePage and counts Close calls.
type fakeSession struct {
	page   *fakePage
	closes atomic.Int32
}

func (s *fakeSession) Page() Page   { return s.page }
func (s *fakeSession) Close() error { s.closes.Add(1); return nil }
