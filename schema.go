package crawlrag

import "context"

// Field types for structured extraction.
const (
	FieldText      = "text"
	FieldAttribute = "attribute"
	FieldHTML      = "html"
)

// ExtractionField defines a single field to extract from each matched
// element.
type ExtractionField struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
	Type     string `json:"type"` // text, attribute, html
	Attr     string `json:"attribute,omitempty"`
}

// ExtractionSchema defines CSS-selector-driven structured extraction:
// BaseSelector matches repeating elements, Fields extract values from each.
type ExtractionSchema struct {
	Name         string            `json:"name"`
	BaseSelector string            `json:"baseSelector"`
	Fields       []ExtractionField `json:"fields"`
}

// Validate returns an error if the schema contains invalid fields.
func (s *ExtractionSchema) Validate() error {
	if s.BaseSelector == "" {
		return Errorf(EINVALID, "extraction schema base selector required")
	}
	if len(s.Fields) == 0 {
		return Errorf(EINVALID, "extraction schema requires at least one field")
	}
	for _, f := range s.Fields {
		if f.Name == "" {
			return Errorf(EINVALID, "extraction field name required")
		}
		if f.Type == FieldAttribute && f.Attr == "" {
			return Errorf(EINVALID, "attribute field %q requires an attribute name", f.Name)
		}
	}
	return nil
}

// StructuredExtractor extracts schema-defined records from HTML.
type StructuredExtractor interface {
	// ExtractData applies the schema to HTML and returns one record per
	// base selector match.
	ExtractData(html string, schema ExtractionSchema) ([]map[string]string, error)
}

// LLMExtractor extracts structured data from page content using a language
// model guided by a natural language instruction and a JSON schema.
type LLMExtractor interface {
	// ExtractData returns the model's JSON output conforming to schemaJSON.
	ExtractData(ctx context.Context, content, instruction string, schemaJSON []byte) (string, error)
}
