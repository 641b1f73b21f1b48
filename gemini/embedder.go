package gemini

import (
	"context"

	"github.com/fwojciec/crawlrag"
	"google.golang.org/genai"
)

// embeddingModel is the Gemini model used for text embeddings.
const embeddingModel = "text-embedding-004"

// maxEmbedChars caps the text sent to the embedding API. Longer documents
// are truncated: the opening of a page carries most of its topical signal.
const maxEmbedChars = 8000

// Ensure Embedder implements crawlrag.Embedder at compile time.
var _ crawlrag.Embedder = (*Embedder)(nil)

// Embedder generates embedding vectors using the Gemini embedding API.
type Embedder struct {
	client *genai.Client
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client}
}

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, crawlrag.Errorf(crawlrag.EINVALID, "text required")
	}
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	result, err := e.client.Models.EmbedContent(ctx, embeddingModel,
		[]*genai.Content{
			genai.NewContentFromText(text, "user"),
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Embeddings) == 0 {
		return nil, crawlrag.Errorf(crawlrag.EINTERNAL, "gemini returned no embedding")
	}

	return result.Embeddings[0].Values, nil
}
