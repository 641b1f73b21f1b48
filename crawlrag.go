// Package crawlrag provides web-crawling and retrieval-augmentation tools.
// It fetches pages with a browser engine, converts them to markdown, ranks
// content against queries, derives a lightweight knowledge graph from page
// text, and persists pages into vector and graph stores for later retrieval.
//
// This package contains domain types, pure extraction functions, and
// collaborator interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, rod/, gemini/).
package crawlrag
