package goquery_test

import (
	"testing"

	"github.com/fwojciec/crawlrag/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against the base URL", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()
		html := `<a href="/docs/guide">Guide</a><a href="https://example.com/docs/api">API</a>`

		links, err := e.ExtractLinks(html, "https://example.com/docs/")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://example.com/docs/guide", links[0].URL)
		assert.Equal(t, "Guide", links[0].Text)
		assert.Equal(t, "https://example.com/docs/api", links[1].URL)
	})

	t.Run("includes links to other hosts", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()
		html := `<a href="https://other.com/ref">Reference</a>`

		links, err := e.ExtractLinks(html, "https://example.com/")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://other.com/ref", links[0].URL)
	})

	t.Run("skips non-HTTP schemes", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()
		html := `
			<a href="javascript:void(0)">JS</a>
			<a href="mailto:hi@example.com">Mail</a>
			<a href="tel:+1234">Call</a>
			<a href="/real">Real</a>`

		links, err := e.ExtractLinks(html, "https://example.com/")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/real", links[0].URL)
	})

	t.Run("strips fragments and deduplicates", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()
		html := `
			<a href="/page#intro">Intro</a>
			<a href="/page#usage">Usage</a>`

		links, err := e.ExtractLinks(html, "https://example.com/")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/page", links[0].URL)
		assert.Equal(t, "Intro", links[0].Text)
	})

	t.Run("skips self-referential anchors", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()
		html := `<a href="#top">Top</a><a href="/docs">Docs</a>`

		links, err := e.ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Empty(t, links, "both anchors resolve to the page itself")
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()

		_, err := e.ExtractLinks(`<a href="/x">x</a>`, "::bad::")

		assert.Error(t, err)
	})
}
