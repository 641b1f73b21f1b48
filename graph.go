package crawlrag

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// EntityKind identifies the type of a knowledge graph node.
type EntityKind string

// Entity kinds produced by graph extraction.
const (
	EntityWebPage EntityKind = "WebPage"
	EntityDomain  EntityKind = "Domain"
	EntityTopic   EntityKind = "Topic"
)

// RelationKind identifies the type of a directed edge between entities.
type RelationKind string

// Relation kinds produced by graph extraction.
const (
	RelationBelongsTo   RelationKind = "BELONGS_TO"
	RelationCoversTopic RelationKind = "COVERS_TOPIC"
	RelationLinksTo     RelationKind = "LINKS_TO"
)

// Entity is a typed node to be upserted into a graph store. Key is the
// natural identity within the kind: the URL for a WebPage, the host name
// for a Domain, the title-cased keyword for a Topic. Uniqueness is the
// store's responsibility (upsert by kind and key), not the extractor's.
type Entity struct {
	Kind       EntityKind        `json:"kind"`
	Key        string            `json:"key"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EntityRef identifies an entity structurally by kind and key.
type EntityRef struct {
	Kind EntityKind `json:"kind"`
	Key  string     `json:"key"`
}

// Relation is a typed, directed edge between two entities. A LINKS_TO
// relation may reference a target WebPage that is not materialized in the
// same extraction; the store creates a stub for it on upsert.
type Relation struct {
	Kind RelationKind `json:"kind"`
	From EntityRef    `json:"from"`
	To   EntityRef    `json:"to"`
}

// Extraction holds the entities and relations derived from a single page.
// Both slices are freshly allocated per call and duplicate-free within the
// call; deduplication across calls is the store's upsert discipline.
type Extraction struct {
	Entities  []Entity
	Relations []Relation
}

// GraphStore persists extractions with idempotent merge semantics: entities
// upsert by (kind, key), relations create-if-absent between endpoints.
// Applying the same extraction twice must not create duplicate rows.
type GraphStore interface {
	// UpsertExtraction merges an extraction's entities and relations.
	// Relation targets absent from the extraction's entity set are
	// materialized as stub entities so no relation dangles.
	UpsertExtraction(ctx context.Context, ex Extraction) error

	// FindEntities retrieves stored entities of a kind. An empty kind
	// matches all kinds.
	FindEntities(ctx context.Context, kind EntityKind) ([]Entity, error)

	// FindRelations retrieves stored relations originating at from.
	FindRelations(ctx context.Context, from EntityRef) ([]Relation, error)
}

// topicVocabulary is the fixed set of documentation-domain keywords scanned
// for during topic detection. Matching is whole-word and case-insensitive.
var topicVocabulary = []string{
	"api", "sdk", "authentication", "authorization", "database",
	"deployment", "configuration", "tutorial", "guide", "documentation",
	"example", "reference", "endpoint", "webhook", "integration",
	"security", "performance", "optimization", "testing", "debugging",
}

var topicPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(topicVocabulary, "|") + `)\b`)

// linkPattern matches absolute HTTP/HTTPS URLs embedded in page content.
var linkPattern = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)

// maxOutboundLinks caps how many link matches are examined per extraction.
const maxOutboundLinks = 20

// ExtractGraph derives a typed entity/relation graph from a crawled page.
//
// It always emits exactly one WebPage entity keyed by the input URL and one
// Domain entity keyed by the URL's host. When the URL cannot be parsed or
// has no host, the Domain key is the empty string and no BELONGS_TO
// relation is emitted. Topics are detected by whole-word, case-insensitive
// matches against a fixed vocabulary; each distinct keyword yields a Topic
// entity and a COVERS_TOPIC relation. The first 20 absolute URLs found in
// the raw content yield LINKS_TO relations to pages on other hosts; links
// back to the source host are dropped.
//
// ExtractGraph never fails: malformed URLs, empty titles, and empty content
// are valid inputs with minimal outputs. The crawledAt timestamp is
// recorded on the WebPage entity.
func ExtractGraph(pageURL, title, content string, crawledAt time.Time) Extraction {
	domain := hostOf(pageURL)

	if title == "" {
		title = pageURL
	}

	page := EntityRef{Kind: EntityWebPage, Key: pageURL}

	entities := []Entity{
		{
			Kind: EntityWebPage,
			Key:  pageURL,
			Attributes: map[string]string{
				"title":      title,
				"domain":     domain,
				"crawled_at": crawledAt.Format(time.RFC3339),
			},
		},
		{Kind: EntityDomain, Key: domain},
	}

	var relations []Relation
	if domain != "" {
		relations = append(relations, Relation{
			Kind: RelationBelongsTo,
			From: page,
			To:   EntityRef{Kind: EntityDomain, Key: domain},
		})
	}

	for _, topic := range extractTopics(content) {
		entities = append(entities, Entity{Kind: EntityTopic, Key: topic})
		relations = append(relations, Relation{
			Kind: RelationCoversTopic,
			From: page,
			To:   EntityRef{Kind: EntityTopic, Key: topic},
		})
	}

	for _, link := range extractOutboundLinks(content, domain) {
		relations = append(relations, Relation{
			Kind: RelationLinksTo,
			From: page,
			To:   EntityRef{Kind: EntityWebPage, Key: link},
		})
	}

	return Extraction{Entities: entities, Relations: relations}
}

// extractTopics returns the distinct vocabulary keywords present in
// content, title-cased for use as entity keys, in first-occurrence order.
// Embedded URLs are removed first so that path components like "api" in a
// link don't register as topics of the page.
func extractTopics(content string) []string {
	matches := topicPattern.FindAllString(linkPattern.ReplaceAllString(content, " "), -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var topics []string
	for _, m := range matches {
		folded := strings.ToLower(m)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		topics = append(topics, titleCase(folded))
	}
	return topics
}

// extractOutboundLinks scans raw content for absolute URLs and returns
// those pointing at hosts other than sourceDomain. Only the first
// maxOutboundLinks matches are examined; duplicates are dropped. Host
// comparison is exact: subdomains of the source count as external.
func extractOutboundLinks(content, sourceDomain string) []string {
	matches := linkPattern.FindAllString(content, maxOutboundLinks)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var links []string
	for _, m := range matches {
		host := hostOf(m)
		if host == "" || host == sourceDomain {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		links = append(links, m)
	}
	return links
}

// hostOf returns the host of a URL, or "" if the URL cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// titleCase upper-cases the first letter of an ASCII keyword.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
