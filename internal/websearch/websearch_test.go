package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2Fdoc%2F&amp;rut=abc">Go Documentation</a>
  <div class="result__snippet">The official  Go
  documentation.</div>
</div>
<div class="result">
  <a class="result__a" href="https://pkg.go.dev/">pkg.go.dev</a>
  <div class="result__snippet">Package index.</div>
</div>
<div class="result">
  <a class="result__a" href="">empty href, skipped</a>
</div>
</body></html>`

func newServer(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("q"))
		w.Write([]byte(resultsPage))
	}))
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL}
}

func TestSearchParsesResults(t *testing.T) {
	client := newServer(t)

	results, err := client.Search(context.Background(), "go docs", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Go Documentation", results[0].Title)
	// Redirect links unwrap to the destination.
	assert.Equal(t, "https://go.dev/doc/", results[0].URL)
	assert.Equal(t, "The official Go documentation.", results[0].Snippet)

	assert.Equal(t, "https://pkg.go.dev/", results[1].URL)
}

func TestSearchHonorsMax(t *testing.T) {
	client := newServer(t)

	results, err := client.Search(context.Background(), "go docs", 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchEmptyQuery(t *testing.T) {
	client := &Client{}
	_, err := client.Search(context.Background(), "   ", 0)
	require.Error(t, err)
}

func TestSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client := &Client{BaseURL: srv.URL}
	_, err := client.Search(context.Background(), "go", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestResolveRedirect(t *testing.T) {
	assert.Equal(t, "https://go.dev/", resolveRedirect("https://duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2F"))
	assert.Equal(t, "https://go.dev/", resolveRedirect("/l/?uddg=https%3A%2F%2Fgo.dev%2F"))
	assert.Equal(t, "https://plain.example.com/", resolveRedirect("https://plain.example.com/"))
}
