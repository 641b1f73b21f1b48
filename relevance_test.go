package crawlrag_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/crawlrag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSegments(t *testing.T) {
	t.Parallel()

	t.Run("ranks matching paragraph above unrelated one", func(t *testing.T) {
		t.Parallel()

		content := "Short.\n\n" +
			"Pricing starts at $10 per month for every one of the basic plans.\n\n" +
			"Unrelated filler text here that is long enough to pass the length filter."

		segments := crawlrag.ScoreSegments(content, "pricing")

		require.Len(t, segments, 1)
		assert.Contains(t, segments[0].Text, "Pricing starts")
		assert.Equal(t, 1, segments[0].Score)
	})

	t.Run("excludes segments shorter than minimum length", func(t *testing.T) {
		t.Parallel()

		content := "pricing info\n\nPricing for the enterprise tier is negotiated individually with sales."

		segments := crawlrag.ScoreSegments(content, "pricing")

		require.Len(t, segments, 1)
		assert.Contains(t, segments[0].Text, "enterprise tier")
	})

	t.Run("counts distinct terms not occurrences", func(t *testing.T) {
		t.Parallel()

		content := "The pricing page lists pricing for every pricing tier we currently offer today."

		segments := crawlrag.ScoreSegments(content, "pricing pricing tier")

		require.Len(t, segments, 1)
		assert.Equal(t, 2, segments[0].Score)
	})

	t.Run("matches terms as substrings", func(t *testing.T) {
		t.Parallel()

		content := "Authentication and authorization are both configured in the settings panel."

		segments := crawlrag.ScoreSegments(content, "auth")

		require.Len(t, segments, 1)
		assert.Equal(t, 1, segments[0].Score)
	})

	t.Run("sorts by descending score with stable ties", func(t *testing.T) {
		t.Parallel()

		first := "The cache layer stores sessions and nothing else worth mentioning here."
		second := "The database stores users, sessions, and tokens in separate tables for safety."
		third := "The backup archive also keeps sessions but only those flagged for retention."

		content := strings.Join([]string{first, second, third}, "\n\n")

		segments := crawlrag.ScoreSegments(content, "database sessions tokens")

		require.Len(t, segments, 3)
		// second matches all three terms; first and third tie on fewer
		// matches and keep document order.
		assert.Equal(t, second, segments[0].Text)
		assert.Equal(t, 3, segments[0].Score)
		assert.Equal(t, first, segments[1].Text)
		assert.Equal(t, third, segments[2].Text)
		assert.Equal(t, segments[1].Score, segments[2].Score)
	})

	t.Run("returns empty result when nothing matches", func(t *testing.T) {
		t.Parallel()

		content := "A perfectly ordinary paragraph that is long enough to be scored by the filter."

		segments := crawlrag.ScoreSegments(content, "blockchain")

		assert.Empty(t, segments)
	})

	t.Run("returns empty result for empty query", func(t *testing.T) {
		t.Parallel()

		content := "A perfectly ordinary paragraph that is long enough to be scored by the filter."

		assert.Empty(t, crawlrag.ScoreSegments(content, ""))
		assert.Empty(t, crawlrag.ScoreSegments(content, "   "))
	})

	t.Run("returns empty result for empty content", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, crawlrag.ScoreSegments("", "pricing"))
	})

	t.Run("query matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		content := "PRICING is displayed in the header of every page on the marketing site."

		segments := crawlrag.ScoreSegments(content, "Pricing")

		require.Len(t, segments, 1)
	})

	t.Run("trims segment text", func(t *testing.T) {
		t.Parallel()

		content := "   Pricing starts at $10 per month for basic plans, billed annually.   "

		segments := crawlrag.ScoreSegments(content, "pricing")

		require.Len(t, segments, 1)
		assert.Equal(t, segments[0].Text, strings.TrimSpace(segments[0].Text))
	})
}
