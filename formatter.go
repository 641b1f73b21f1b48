package crawlrag

import "strings"

// TruncationNotice is appended to content cut off by TruncateContent.
const TruncationNotice = "\n\n[Content truncated for length...]"

// Default content caps used by the tool surface.
const (
	// MaxContentLength caps single-page crawl output.
	MaxContentLength = 50000

	// MaxBatchContentLength caps per-page content in batch reports.
	MaxBatchContentLength = 10000

	// MaxFallbackContentLength caps full-content fallback output when a
	// relevance query matches nothing.
	MaxFallbackContentLength = 30000
)

// TruncateContent truncates content to at most max characters, appending a
// notice when content was cut off. Content at or under the limit is
// returned unchanged.
func TruncateContent(content string, max int) string {
	if len(content) <= max {
		return content
	}
	return content[:max] + TruncationNotice
}

// FormatRankedSegments concatenates up to limit ranked segments with
// blank-line separators. When the ranked set is empty, the full content is
// substituted, capped at MaxFallbackContentLength, so callers never get an
// empty result.
func FormatRankedSegments(segments []ScoredSegment, limit int, fullContent string) string {
	if len(segments) == 0 {
		return "*No specifically relevant sections found. Full content:*\n\n" +
			TruncateContent(fullContent, MaxFallbackContentLength)
	}

	if limit > 0 && len(segments) > limit {
		segments = segments[:limit]
	}

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, "\n\n")
}
