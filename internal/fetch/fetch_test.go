package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Sample Doc</title><style>body { color: red }</style></head>
<body>
<script>var ignored = true;</script>
<article>First paragraph.   Second   sentence.</article>
<footer>Footer text</footer>
<a href="/guide">Guide</a>
<a href="https://other.example.com/page">Elsewhere</a>
<a href="/files/report.pdf">Report</a>
<a href="#top">Top</a>
<a href="mailto:x@example.com">Mail</a>
</body>
</html>`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(samplePage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPageExtractsText(t *testing.T) {
	srv := newServer(t)

	result, err := Page(context.Background(), srv.URL, PageOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Sample Doc", result.Title)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.Text, "First paragraph. Second sentence.")
	assert.NotContains(t, result.Text, "ignored")
	assert.NotContains(t, result.Text, "color: red")
}

func TestPageWithSelector(t *testing.T) {
	srv := newServer(t)

	result, err := Page(context.Background(), srv.URL, PageOptions{Selector: "article"})
	require.NoError(t, err)

	assert.Equal(t, "First paragraph. Second sentence.", result.Text)
	assert.NotContains(t, result.Text, "Footer")
}

func TestPageSelectorMiss(t *testing.T) {
	srv := newServer(t)

	_, err := Page(context.Background(), srv.URL, PageOptions{Selector: "#nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selector returned no elements")
}

func TestPageTruncates(t *testing.T) {
	srv := newServer(t)

	result, err := Page(context.Background(), srv.URL, PageOptions{MaxLength: 5})
	require.NoError(t, err)
	assert.Equal(t, "First…", result.Text)
}

func TestPageErrorStatus(t *testing.T) {
	srv := newServer(t)

	_, err := Page(context.Background(), srv.URL+"/missing", PageOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestPageInvalidURL(t *testing.T) {
	_, err := Page(context.Background(), "not a url", PageOptions{})
	require.Error(t, err)
}

func TestLinksClassification(t *testing.T) {
	srv := newServer(t)

	result, err := Links(context.Background(), srv.URL, 0)
	require.NoError(t, err)

	// Fragment and mailto links are skipped.
	require.Equal(t, 3, result.Count)

	kinds := map[string]string{}
	for _, l := range result.Links {
		kinds[l.Title] = l.Kind
	}
	assert.Equal(t, "internal", kinds["Guide"])
	assert.Equal(t, "external", kinds["Elsewhere"])
	assert.Equal(t, "resource", kinds["Report"])
}

func TestLinksLimit(t *testing.T) {
	srv := newServer(t)

	result, err := Links(context.Background(), srv.URL, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}
