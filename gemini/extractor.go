package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/crawlrag"
	"google.golang.org/genai"
)

// maxExtractChars caps the page content sent to the model for extraction.
const maxExtractChars = 30000

// Ensure Extractor implements crawlrag.LLMExtractor at compile time.
var _ crawlrag.LLMExtractor = (*Extractor)(nil)

// Extractor extracts structured data from page content using Gemini with a
// constrained JSON response schema.
type Extractor struct {
	client *genai.Client
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractData asks the model to pull data matching schemaJSON out of the
// content, guided by the instruction. The response is the model's JSON
// output conforming to the schema.
func (e *Extractor) ExtractData(ctx context.Context, content, instruction string, schemaJSON []byte) (string, error) {
	if content == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "content required")
	}
	if instruction == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "instruction required")
	}

	var schema *genai.Schema
	if len(schemaJSON) > 0 {
		schema = &genai.Schema{}
		if err := json.Unmarshal(schemaJSON, schema); err != nil {
			return "", crawlrag.Errorf(crawlrag.EINVALID, "invalid extraction schema: %v", err)
		}
	}

	if len(content) > maxExtractChars {
		content = content[:maxExtractChars]
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildExtractionPrompt(content, instruction)}},
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

// BuildExtractionPrompt builds the user prompt for structured extraction.
func BuildExtractionPrompt(content, instruction string) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	sb.WriteString(content)
	sb.WriteString("\n</page>\n\n")
	fmt.Fprintf(&sb, "Instruction: %s", instruction)
	return sb.String()
}
