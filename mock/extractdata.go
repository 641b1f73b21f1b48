package mock

import (
	"context"

	"github.com/fwojciec/crawlrag"
)

var _ crawlrag.StructuredExtractor = (*StructuredExtractor)(nil)

// StructuredExtractor is a mock implementation of crawlrag.StructuredExtractor.
type StructuredExtractor struct {
	ExtractDataFn func(html string, schema crawlrag.ExtractionSchema) ([]map[string]string, error)
}

func (e *StructuredExtractor) ExtractData(html string, schema crawlrag.ExtractionSchema) ([]map[string]string, error) {
	return e.ExtractDataFn(html, schema)
}

var _ crawlrag.LLMExtractor = (*LLMExtractor)(nil)

// LLMExtractor is a mock implementation of crawlrag.LLMExtractor.
type LLMExtractor struct {
	ExtractDataFn func(ctx context.Context, content, instruction string, schemaJSON []byte) (string, error)
}

func (e *LLMExtractor) ExtractData(ctx context.Context, content, instruction string, schemaJSON []byte) (string, error) {
	return e.ExtractDataFn(ctx, content, instruction, schemaJSON)
}
