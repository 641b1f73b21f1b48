// Package gemini implements the language model backed services using Google
// Gemini: question answering over crawled content, text embeddings,
// instruction-driven structured extraction, and token counting.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/crawlrag"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// askSearchLimit is the number of search hits included in the prompt.
const askSearchLimit = 5

// Ensure Asker implements crawlrag.Asker at compile time.
var _ crawlrag.Asker = (*Asker)(nil)

// Asker answers questions about crawled content using Google Gemini,
// grounding each answer in the most relevant stored documents.
type Asker struct {
	client *genai.Client
	search crawlrag.SearchService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, search crawlrag.SearchService) *Asker {
	return &Asker{client: client, search: search}
}

// Ask answers a natural language question about the crawled corpus.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "question required")
	}

	results, err := a.search.Search(ctx, question, crawlrag.SearchOptions{Limit: askSearchLimit})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", crawlrag.Errorf(crawlrag.ENOTFOUND, "no documents matched the question")
	}

	prompt := BuildUserPrompt(results, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", crawlrag.Errorf(crawlrag.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about crawled web content. Answer based only on the documents provided. If the answer is not in the documents, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing search results and the
// question.
func BuildUserPrompt(results []crawlrag.SearchResult, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, r := range results {
		doc := r.Document
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", doc.SourceURL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
