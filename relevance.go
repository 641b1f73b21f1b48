package crawlrag

import (
	"sort"
	"strings"
)

// MinSegmentLength is the minimum trimmed length for a segment to be scored.
// Shorter segments (headers, boilerplate) are assumed non-substantive.
const MinSegmentLength = 50

// ScoredSegment is a paragraph of input text together with a relevance score.
type ScoredSegment struct {
	// Text is the trimmed segment content.
	Text string

	// Score counts the distinct query terms present in the segment.
	// Presence, not frequency: a term occurring twice counts once.
	Score int
}

// ScoreSegments splits content into blank-line-delimited paragraphs and
// ranks them by lexical overlap with the query.
//
// The query is lower-cased and split on whitespace into a set of terms. A
// segment's score is the number of distinct terms that occur as substrings
// of the lower-cased segment. Segments shorter than MinSegmentLength after
// trimming are discarded before scoring, and segments that match no term
// are excluded from the result.
//
// The result is sorted by descending score; segments with equal scores keep
// their original document order. Degenerate inputs (empty content or query)
// yield an empty result rather than an error.
func ScoreSegments(content, query string) []ScoredSegment {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var scored []ScoredSegment
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) < MinSegmentLength {
			continue
		}

		lower := strings.ToLower(para)
		score := 0
		for _, term := range terms {
			if strings.Contains(lower, term) {
				score++
			}
		}

		if score > 0 {
			scored = append(scored, ScoredSegment{Text: para, Score: score})
		}
	}

	// Stable sort preserves document order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// queryTerms lower-cases and tokenizes a query, deduplicating terms so that
// repeated words don't inflate scores.
func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fields))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		terms = append(terms, f)
	}
	return terms
}
