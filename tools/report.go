package tools

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/crawlrag"
)

// Report section caps, matching the limits of the operation contracts.
const (
	maxInternalLinks  = 20
	maxExternalLinks  = 10
	maxImages         = 10
	maxLinkTextLength = 50
	maxRankedSegments = 20
)

// markdownLink matches markdown links and images in converted content.
// Group 1 is the image marker, 2 the text, 3 the destination.
var markdownLink = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)\s]+)[^)]*\)`)

// renderPageReport renders the crawl report for one page: title header,
// source and crawl time, truncated content, and optional link and image
// sections mined from the markdown.
func renderPageReport(page *crawlrag.Page, opts CrawlPageOptions) string {
	var sb strings.Builder

	if page.Title != "" {
		fmt.Fprintf(&sb, "# %s\n", page.Title)
	}
	fmt.Fprintf(&sb, "**Source:** %s\n", page.URL)
	fmt.Fprintf(&sb, "**Crawled:** %s\n", page.CrawledAt.Format(time.RFC3339))
	sb.WriteString("---\n")
	sb.WriteString(crawlrag.TruncateContent(page.Content, crawlrag.MaxContentLength))

	if opts.IncludeLinks {
		internal, external := contentLinks(page.Content, page.URL)
		if len(internal) > maxInternalLinks {
			internal = internal[:maxInternalLinks]
		}
		if len(external) > maxExternalLinks {
			external = external[:maxExternalLinks]
		}
		if len(internal) > 0 || len(external) > 0 {
			sb.WriteString("\n\n---\n## Links\n")
			if len(internal) > 0 {
				sb.WriteString("\n### Internal Links\n")
				writeLinkList(&sb, internal)
			}
			if len(external) > 0 {
				sb.WriteString("\n### External Links\n")
				writeLinkList(&sb, external)
			}
		}
	}

	if opts.IncludeImages {
		images := contentImages(page.Content)
		if len(images) > maxImages {
			images = images[:maxImages]
		}
		if len(images) > 0 {
			sb.WriteString("\n\n---\n## Images\n")
			for _, img := range images {
				alt := img.text
				if alt == "" {
					alt = "No description"
				}
				fmt.Fprintf(&sb, "- ![%s](%s)\n", alt, img.href)
			}
		}
	}

	return sb.String()
}

// renderBatchReport renders the combined report for a batch crawl.
func renderBatchReport(results []crawlrag.PageResult) string {
	succeeded := 0
	for _, r := range results {
		if r.Err == nil {
			succeeded++
		}
	}

	var sb strings.Builder
	sb.WriteString("# Batch Crawl Results\n")
	fmt.Fprintf(&sb, "**URLs crawled:** %d\n", len(results))
	fmt.Fprintf(&sb, "**Successful:** %d\n", succeeded)
	fmt.Fprintf(&sb, "**Failed:** %d\n", len(results)-succeeded)
	sb.WriteString("---\n\n")

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&sb, "## %s\n", r.URL)
			fmt.Fprintf(&sb, "**URL:** %s\n", r.URL)
			fmt.Fprintf(&sb, "\n**Error:** %s\n", r.Err)
			sb.WriteString("\n---\n\n")
			continue
		}

		title := r.Page.Title
		if title == "" {
			title = r.URL
		}
		fmt.Fprintf(&sb, "## %s\n", title)
		fmt.Fprintf(&sb, "**URL:** %s\n", r.URL)
		fmt.Fprintf(&sb, "\n%s\n", crawlrag.TruncateContent(r.Page.Content, crawlrag.MaxBatchContentLength))
		sb.WriteString("\n---\n\n")
	}

	return sb.String()
}

// renderSmartCrawlReport scores the crawled content against the query and
// renders the top ranked sections, falling back to truncated full content
// when nothing scores.
func renderSmartCrawlReport(pages []*crawlrag.Page, startURL, query string) string {
	var contents []string
	for _, p := range pages {
		contents = append(contents, p.Content)
	}
	content := strings.Join(contents, "\n\n")

	segments := crawlrag.ScoreSegments(content, query)

	var sb strings.Builder
	sb.WriteString("# Smart Crawl Results\n")
	fmt.Fprintf(&sb, "**Query:** %s\n", query)
	fmt.Fprintf(&sb, "**Source:** %s\n", startURL)
	fmt.Fprintf(&sb, "**Pages crawled:** %d\n", len(pages))
	fmt.Fprintf(&sb, "**Relevant sections found:** %d\n", len(segments))
	sb.WriteString("---\n\n")
	sb.WriteString(crawlrag.FormatRankedSegments(segments, maxRankedSegments, content))

	return sb.String()
}

// renderSearchResults renders search hits with similarity scores and
// content excerpts.
func renderSearchResults(query string, results []crawlrag.SearchResult) string {
	if len(results) == 0 {
		return "No matching content found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Search Results for: %s\n\n", query)

	for i, r := range results {
		doc := r.Document
		title := doc.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(&sb, "## Result %d\n", i+1)
		fmt.Fprintf(&sb, "**URL:** %s\n", doc.SourceURL)
		fmt.Fprintf(&sb, "**Title:** %s\n", title)
		fmt.Fprintf(&sb, "**Similarity:** %.3f\n\n", r.Score)

		excerpt := doc.Content
		if len(excerpt) > 2000 {
			excerpt = excerpt[:2000]
		}
		fmt.Fprintf(&sb, "%s\n\n---\n\n", excerpt)
	}

	return sb.String()
}

type contentLink struct {
	text string
	href string
}

// contentLinks mines markdown links out of converted page content and
// splits them into same-host and external groups. Relative destinations
// count as internal.
func contentLinks(content, pageURL string) (internal, external []contentLink) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil
	}

	for _, m := range markdownLink.FindAllStringSubmatch(content, -1) {
		if m[1] == "!" {
			continue
		}
		link := contentLink{text: truncateText(m[2]), href: m[3]}

		ref, err := url.Parse(link.href)
		if err != nil {
			continue
		}
		if ref.Host == "" || ref.Host == base.Host {
			internal = append(internal, link)
		} else {
			external = append(external, link)
		}
	}
	return internal, external
}

// contentImages mines markdown image references out of converted content.
func contentImages(content string) []contentLink {
	var images []contentLink
	for _, m := range markdownLink.FindAllStringSubmatch(content, -1) {
		if m[1] != "!" {
			continue
		}
		images = append(images, contentLink{text: m[2], href: m[3]})
	}
	return images
}

func writeLinkList(sb *strings.Builder, links []contentLink) {
	for _, l := range links {
		text := l.text
		if text == "" {
			text = l.href
		}
		fmt.Fprintf(sb, "- [%s](%s)\n", text, l.href)
	}
}

func truncateText(s string) string {
	if len(s) > maxLinkTextLength {
		return s[:maxLinkTextLength]
	}
	return s
}
