package main

import (
	"context"
	"io"

	"github.com/fwojciec/crawlrag/sqlite"
	"github.com/fwojciec/crawlrag/tools"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB
	Tools  *tools.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log collaborator activity to stderr"`

	Crawl      CrawlCmd      `cmd:"" help:"Crawl a page and print its content as markdown"`
	Batch      BatchCmd      `cmd:"" help:"Crawl multiple pages concurrently"`
	Smart      SmartCmd      `cmd:"" help:"Crawl a page and follow its most relevant links for a query"`
	Site       SiteCmd       `cmd:"" help:"Crawl all pages discovered from a site's sitemap"`
	Extract    ExtractCmd    `cmd:"" help:"Extract structured data using a CSS selector schema"`
	ExtractLLM ExtractLLMCmd `cmd:"" name:"extract-llm" help:"Extract structured data using the language model"`
	Screenshot ScreenshotCmd `cmd:"" help:"Capture a page screenshot as a PNG data URI"`
	PDF        PDFCmd        `cmd:"" name:"pdf" help:"Capture a page as a PDF data URI"`
	Search     SearchCmd     `cmd:"" help:"Search crawled content by semantic similarity"`
	Ask        AskCmd        `cmd:"" help:"Ask a question about crawled content"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Links  bool   `short:"l" help:"Include internal and external link sections"`
	Images bool   `short:"i" help:"Include an image section"`
	Static bool   `help:"Fetch without a browser (no JavaScript rendering)"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" help:"Page URLs"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
	Static      bool     `help:"Fetch without a browser (no JavaScript rendering)"`
}

// SmartCmd is the "smart" subcommand.
type SmartCmd struct {
	URL      string `arg:"" help:"Starting page URL"`
	Query    string `arg:"" help:"Query guiding which links to follow"`
	MaxPages int    `short:"m" default:"10" help:"Maximum pages to crawl"`
	Static   bool   `help:"Fetch without a browser (no JavaScript rendering)"`
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	URL         string   `arg:"" help:"Site URL"`
	Filter      []string `short:"F" name:"filter" help:"Include URLs matching regex (repeatable)"`
	Exclude     []string `short:"X" name:"exclude" help:"Exclude URLs matching regex (repeatable)"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
	Static      bool     `help:"Fetch without a browser (no JavaScript rendering)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Schema string `short:"s" required:"" help:"Path to a JSON extraction schema file"`
	Static bool   `help:"Fetch without a browser (no JavaScript rendering)"`
}

// ExtractLLMCmd is the "extract-llm" subcommand.
type ExtractLLMCmd struct {
	URL         string `arg:"" help:"Page URL"`
	Instruction string `arg:"" help:"Natural language description of what to extract"`
	Schema      string `short:"s" help:"Path to a JSON schema file constraining the output"`
	Static      bool   `help:"Fetch without a browser (no JavaScript rendering)"`
}

// ScreenshotCmd is the "screenshot" subcommand.
type ScreenshotCmd struct {
	URL      string `arg:"" help:"Page URL"`
	FullPage bool   `short:"f" help:"Capture the full scrollable page"`
}

// PDFCmd is the "pdf" subcommand.
type PDFCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string `arg:"" help:"Search query"`
	Limit  int    `short:"n" default:"5" help:"Maximum results"`
	Source string `short:"s" help:"Only match documents whose URL contains this substring"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about crawled content"`
}
