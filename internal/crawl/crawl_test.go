package crawl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neboloop/webskills/internal/browser"
)

type stubElement struct {
	text string
}

func (e *stubElement) GetAttribute(name string) (string, error) { return "", nil }
func (e *stubElement) InnerText() (string, error)               { return e.text, nil }
func (e *stubElement) Evaluate(expression string) (any, error)  { return nil, nil }
func (e *stubElement) Click(force bool) error                   { return nil }
func (e *stubElement) Fill(value string) error                  { return nil }

type stubPage struct {
	bodyText string
	elements map[string][]browser.Element
	evals    []string
}

func (p *stubPage) Goto(url string, opts browser.GotoOptions) error { return nil }
func (p *stubPage) WaitForSelector(selector string, timeout time.Duration) (browser.Element, error) {
	return nil, browser.ErrElementNotFound
}
func (p *stubPage) QuerySelector(selector string) (browser.Element, error) { return nil, nil }
func (p *stubPage) QuerySelectorAll(selector string) ([]browser.Element, error) {
	return p.elements[selector], nil
}
func (p *stubPage) Evaluate(expression string) (any, error) {
	p.evals = append(p.evals, expression)
	return p.bodyText, nil
}
func (p *stubPage) Screenshot(path string) error { return nil }
func (p *stubPage) URL() string                  { return "https://example.test/feed" }

func TestActionExtractsBodyText(t *testing.T) {
	page := &stubPage{bodyText: "hello world"}

	payload, err := Action(Options{})(context.Background(), page)
	require.NoError(t, err)

	result := payload.(*Result)
	assert.Equal(t, "hello world", result.Content)
	assert.Equal(t, "https://example.test/feed", result.URL)
	assert.Empty(t, result.Saved)
}

func TestActionExtractsBySelector(t *testing.T) {
	page := &stubPage{elements: map[string][]browser.Element{
		".post": {&stubElement{text: " first "}, &stubElement{text: "second"}},
	}}

	payload, err := Action(Options{Selector: ".post"})(context.Background(), page)
	require.NoError(t, err)

	result := payload.(*Result)
	assert.Equal(t, "first\n\n---\n\nsecond", result.Content)
}

func TestActionSelectorMissing(t *testing.T) {
	page := &stubPage{elements: map[string][]browser.Element{}}

	_, err := Action(Options{Selector: ".nope"})(context.Background(), page)
	require.ErrorIs(t, err, browser.ErrElementNotFound)
}

func TestActionTruncates(t *testing.T) {
	page := &stubPage{bodyText: strings.Repeat("x", 100)}

	payload, err := Action(Options{MaxLength: 10})(context.Background(), page)
	require.NoError(t, err)

	result := payload.(*Result)
	assert.True(t, strings.HasPrefix(result.Content, strings.Repeat("x", 10)))
	assert.True(t, strings.HasSuffix(result.Content, "... (content truncated)"))
}

func TestActionSavesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	page := &stubPage{bodyText: "saved content"}

	payload, err := Action(Options{SavePath: path})(context.Background(), page)
	require.NoError(t, err)

	result := payload.(*Result)
	assert.Equal(t, path, result.Saved)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "saved content", string(data))
}

func TestActionCanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Action(Options{Wait: time.Minute})(ctx, &stubPage{})
	require.ErrorIs(t, err, context.Canceled)
}
