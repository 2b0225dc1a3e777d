package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBasics(t *testing.T) {
	html, err := Render("# Title\n\nSome **bold** text.")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Title")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestRenderGFMTable(t *testing.T) {
	html, err := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>1</td>")
}

func TestRenderCodeFenceHighlighted(t *testing.T) {
	html, err := Render("```go\nfunc main() {}\n```")
	require.NoError(t, err)

	assert.Contains(t, html, "<pre")
	// Highlighting marks the fence up with inline styles.
	assert.Contains(t, html, "style=")
	assert.Contains(t, html, "main")
}

func TestRenderAllowsRawHTML(t *testing.T) {
	html, err := Render(`text with <mark>raw html</mark>`)
	require.NoError(t, err)
	assert.Contains(t, html, "<mark>raw html</mark>")
}

func TestRenderDocument(t *testing.T) {
	html, err := RenderDocument("My <Doc>", "content here")
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>My &lt;Doc&gt;</title>")
	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, "content here")
}

func TestRenderDocumentWithoutTitle(t *testing.T) {
	html, err := RenderDocument("", "body")
	require.NoError(t, err)
	assert.NotContains(t, html, "<title>")
}
