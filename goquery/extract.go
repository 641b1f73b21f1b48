// Package goquery provides CSS-selector based HTML processing: schema-driven
// structured data extraction and link discovery for adaptive crawling.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/crawlrag"
)

// Compile-time interface verification.
var _ crawlrag.StructuredExtractor = (*Extractor)(nil)

// Extractor extracts structured records from HTML using a CSS selector schema.
type Extractor struct{}

// NewExtractor returns a schema-driven extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractData applies the schema to the HTML and returns one record per
// element matched by the schema's base selector. Fields that match nothing
// are omitted from their record; records with no matching fields are
// dropped entirely.
func (e *Extractor) ExtractData(html string, schema crawlrag.ExtractionSchema) ([]map[string]string, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, crawlrag.Errorf(crawlrag.EINVALID, "failed to parse HTML: %v", err)
	}

	var records []map[string]string
	doc.Find(schema.BaseSelector).Each(func(_ int, base *goquery.Selection) {
		record := make(map[string]string, len(schema.Fields))
		for _, field := range schema.Fields {
			// An empty field selector reads from the base element itself.
			sel := base
			if field.Selector != "" {
				sel = base.Find(field.Selector)
			}
			if sel.Length() == 0 {
				continue
			}

			value, ok := fieldValue(sel.First(), field)
			if ok {
				record[field.Name] = value
			}
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	})

	return records, nil
}

// fieldValue reads a single field value from the selection according to the
// field type. The ok result is false when the value does not exist, for
// example a missing attribute.
func fieldValue(sel *goquery.Selection, field crawlrag.ExtractionField) (string, bool) {
	switch field.Type {
	case crawlrag.FieldAttribute:
		return sel.Attr(field.Attr)
	case crawlrag.FieldHTML:
		html, err := goquery.OuterHtml(sel)
		if err != nil {
			return "", false
		}
		return html, true
	default:
		return strings.TrimSpace(sel.Text()), true
	}
}
