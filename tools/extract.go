package tools

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/crawlrag"
)

// ExtractStructured fetches the URL and extracts structured records using a
// CSS selector schema. Returns the records as indented JSON.
func (s *Service) ExtractStructured(ctx context.Context, url string, schema crawlrag.ExtractionSchema) (string, error) {
	if url == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "url required")
	}
	if err := schema.Validate(); err != nil {
		return "", err
	}

	html, err := s.Crawler.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	records, err := s.Structured.ExtractData(html, schema)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "No data matched the extraction schema", nil
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ExtractWithLLM crawls the URL and asks the language model to extract data
// matching the JSON schema, guided by the natural language instruction.
func (s *Service) ExtractWithLLM(ctx context.Context, url, instruction string, schemaJSON []byte) (string, error) {
	if url == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "url required")
	}
	if instruction == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "instruction required")
	}

	page, err := s.Crawler.CrawlPage(ctx, url)
	if err != nil {
		return "", err
	}

	extracted, err := s.LLM.ExtractData(ctx, page.Content, instruction, schemaJSON)
	if err != nil {
		return "", err
	}
	if extracted == "" {
		return "No data was extracted", nil
	}
	return extracted, nil
}
