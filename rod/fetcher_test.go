//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/crawlrag/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	// Serve a page that uses JavaScript to add content
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
<div id="content">Loading...</div>
<script>
document.getElementById('content').textContent = 'JavaScript Rendered';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	defer manager.Close()

	fetcher := rod.NewFetcher(manager)

	html, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "JavaScript Rendered")
	assert.NotContains(t, html, "Loading...")
}

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {}
	}))
	defer srv.Close()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	defer manager.Close()

	fetcher := rod.NewFetcher(manager)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCapturer_Screenshot_ReturnsPNG(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Capture me</h1></body></html>`))
	}))
	defer srv.Close()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	defer manager.Close()

	capturer := rod.NewCapturer(manager)

	data, err := capturer.Screenshot(context.Background(), srv.URL, false)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestCapturer_PDF_ReturnsPDF(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Print me</h1></body></html>`))
	}))
	defer srv.Close()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	defer manager.Close()

	capturer := rod.NewCapturer(manager)

	data, err := capturer.PDF(context.Background(), srv.URL)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, []byte("%PDF"), data[:4])
}
