package crawlrag_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/crawlrag"
	"github.com/stretchr/testify/assert"
)

func TestTruncateContent(t *testing.T) {
	t.Parallel()

	t.Run("short content is unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short", crawlrag.TruncateContent("short", 100))
	})

	t.Run("content exactly at limit is unchanged", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("A", 100)

		assert.Equal(t, content, crawlrag.TruncateContent(content, 100))
	})

	t.Run("long content is truncated with notice", func(t *testing.T) {
		t.Parallel()

		result := crawlrag.TruncateContent(strings.Repeat("A", 1000), 100)

		assert.True(t, strings.HasPrefix(result, strings.Repeat("A", 100)))
		assert.Contains(t, result, "[Content truncated for length...]")
	})
}

func TestFormatRankedSegments(t *testing.T) {
	t.Parallel()

	t.Run("joins segments with blank lines", func(t *testing.T) {
		t.Parallel()

		segments := []crawlrag.ScoredSegment{
			{Text: "first", Score: 2},
			{Text: "second", Score: 1},
		}

		out := crawlrag.FormatRankedSegments(segments, 20, "ignored")

		assert.Equal(t, "first\n\nsecond", out)
	})

	t.Run("limits the number of segments", func(t *testing.T) {
		t.Parallel()

		segments := []crawlrag.ScoredSegment{
			{Text: "one", Score: 3},
			{Text: "two", Score: 2},
			{Text: "three", Score: 1},
		}

		out := crawlrag.FormatRankedSegments(segments, 2, "")

		assert.Equal(t, "one\n\ntwo", out)
	})

	t.Run("falls back to full content when nothing ranked", func(t *testing.T) {
		t.Parallel()

		out := crawlrag.FormatRankedSegments(nil, 20, "the whole page")

		assert.Contains(t, out, "No specifically relevant sections found")
		assert.Contains(t, out, "the whole page")
	})

	t.Run("fallback content is length-capped", func(t *testing.T) {
		t.Parallel()

		out := crawlrag.FormatRankedSegments(nil, 20, strings.Repeat("B", crawlrag.MaxFallbackContentLength+1000))

		assert.Contains(t, out, "[Content truncated for length...]")
	})
}
