package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/crawlrag"
	"github.com/fwojciec/crawlrag/crawl"
	"github.com/fwojciec/crawlrag/gemini"
	"github.com/fwojciec/crawlrag/goquery"
	"github.com/fwojciec/crawlrag/htmltomarkdown"
	crawlhttp "github.com/fwojciec/crawlrag/http"
	"github.com/fwojciec/crawlrag/readability"
	"github.com/fwojciec/crawlrag/rod"
	crawlslog "github.com/fwojciec/crawlrag/slog"
	"github.com/fwojciec/crawlrag/sqlite"
	"github.com/fwojciec/crawlrag/tools"
	"github.com/fwojciec/crawlrag/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService crawlrag.DocumentService
	SearchService   crawlrag.SearchService
	GraphStore      crawlrag.GraphStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("crawlrag"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'crawlrag --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CRAWLRAG_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.GraphStore = sqlite.NewGraphStore(m.DB)

	svc := &tools.Service{
		Documents: m.DocumentService,
		Graph:     crawlslog.NewLoggingGraphStore(m.GraphStore, logger),
		Sitemaps:  crawlslog.NewLoggingSitemapService(crawlhttp.NewSitemapService(nil), logger),
		Logger:    logger,
	}
	deps.DB = m.DB
	deps.Tools = svc

	// The Gemini client is required for the commands that cannot work
	// without it; crawl commands use it opportunistically for embeddings.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" && geminiRequired(cmd) {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	if apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		svc.Embedder = gemini.NewEmbedder(client)
		svc.LLM = gemini.NewExtractor(client)

		m.SearchService = sqlite.NewSearchService(m.DB, svc.Embedder)
		svc.Search = crawlslog.NewLoggingSearchService(m.SearchService, logger)
		svc.Asker = gemini.NewAsker(client, svc.Search)
	}

	if crawlerRequired(cmd) {
		var fetcher crawlrag.Fetcher
		if staticFetch(cli, cmd) {
			fetcher = crawlhttp.NewFetcher()
		} else {
			manager, err := rod.NewBrowserManager()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rod.NewLoggingFetcher(rod.NewFetcher(manager), logger)
		}
		defer fetcher.Close()

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		svc.Tokens = tokenCounter

		svc.Crawler = &crawl.Crawler{
			Fetcher: fetcher,
			Extractor: &crawl.FallbackExtractor{
				Primary:  trafilatura.NewExtractor(),
				Fallback: readability.NewExtractor(),
			},
			Converter:   htmltomarkdown.NewConverter(),
			Links:       goquery.NewLinkExtractor(),
			RateLimiter: crawl.NewDomainLimiter(1.0),
		}
		svc.Structured = goquery.NewExtractor()
	}

	if cmd == "screenshot" || cmd == "pdf" {
		manager, err := rod.NewBrowserManager()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer manager.Close()
		svc.Capturer = rod.NewLoggingCapturer(rod.NewCapturer(manager), logger)
	}

	return kongCtx.Run(deps)
}

// geminiRequired reports whether the command cannot run without the Gemini
// API.
func geminiRequired(cmd string) bool {
	switch cmd {
	case "search", "ask", "extract-llm":
		return true
	}
	return false
}

// crawlerRequired reports whether the command needs the fetch pipeline.
func crawlerRequired(cmd string) bool {
	switch cmd {
	case "crawl", "batch", "smart", "site", "extract", "extract-llm":
		return true
	}
	return false
}

// staticFetch reports whether the command was invoked with --static.
func staticFetch(cli *CLI, cmd string) bool {
	switch cmd {
	case "crawl":
		return cli.Crawl.Static
	case "batch":
		return cli.Batch.Static
	case "smart":
		return cli.Smart.Static
	case "site":
		return cli.Site.Static
	case "extract":
		return cli.Extract.Static
	case "extract-llm":
		return cli.ExtractLLM.Static
	}
	return false
}

// tokenizerModel is used for token counting of indexed pages.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("CRAWLRAG_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "crawlrag.db"
	}
	dir := filepath.Join(home, ".crawlrag")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "crawlrag.db")
}
