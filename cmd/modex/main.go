package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pulseai/modex"
	"github.com/pulseai/modex/crawl"
	"github.com/pulseai/modex/extract"
	"github.com/pulseai/modex/gemini"
	"github.com/pulseai/modex/goquery"
	"github.com/pulseai/modex/htmltomarkdown"
	modexhttp "github.com/pulseai/modex/http"
	"github.com/pulseai/modex/readability"
	modexslog "github.com/pulseai/modex/slog"
	"github.com/pulseai/modex/sqlite"
	"github.com/pulseai/modex/tiktoken"
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

	// SQLite database backing the page cache.
	DB *sqlite.DB

	// PageStore for end-to-end testing.
	PageStore modex.PageStore
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
	logger := newLogger(stderr)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("modex"),
		kong.Description("Extract a product module catalogue from a documentation website."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'modex --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// kongCtx.Command() is e.g. "extract <url>"; the first word selects
	// which dependencies get wired.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Open the page cache database.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MODEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.PageStore = sqlite.NewPageStore(m.DB)
	deps.Pages = m.PageStore
	deps.Sitemaps = modexslog.NewLoggingSitemapService(modexhttp.NewSitemapService(nil), logger)

	// Commands that fetch pages need the full crawler.
	needsCrawler := cmd == "crawl" || (cmd == "extract" && !cli.Extract.Cached)
	if needsCrawler {
		var rps float64
		var depth, concurrency int
		switch cmd {
		case "crawl":
			rps, depth, concurrency = cli.Crawl.Rate, cli.Crawl.Depth, cli.Crawl.Concurrency
		case "extract":
			rps, depth, concurrency = cli.Extract.Rate, cli.Extract.Depth, cli.Extract.Concurrency
		}

		fetcher := modexslog.NewLoggingFetcher(modexhttp.NewFetcher(), logger)
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			Extractor:   goquery.NewExtractor(),
			Fallback:    readability.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			Links:       goquery.NewLinkExtractor(),
			Sitemaps:    deps.Sitemaps,
			Limiter:     crawl.NewDomainLimiter(rps),
			Pages:       m.PageStore,
			Logger:      logger,
			MaxDepth:    depth,
			Concurrency: concurrency,
		}
	}

	// The extract command needs a model client; fail fast without a key.
	if cmd == "extract" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set GEMINI_API_KEY. Get an API key at https://aistudio.google.com/apikey")
			return err
		}

		model := cli.Extract.Model
		if model == "" {
			model = gemini.DefaultModel
		}

		counter, err := newTokenCounter(model, logger)
		if err != nil {
			return err
		}

		deps.Extractor = &extract.Extractor{
			Generator:      modexslog.NewLoggingGenerator(gemini.NewGenerator(client, model), logger),
			TokenCounter:   counter,
			Logger:         logger,
			MaxInputTokens: cli.Extract.MaxTokens,
		}
	}

	return kongCtx.Run(deps)
}

// newTokenCounter builds a model-aware token counter, falling back to a
// generic encoding when the model has no local tokenizer.
func newTokenCounter(model string, logger *slog.Logger) (modex.TokenCounter, error) {
	counter, err := gemini.NewTokenCounter(model, logger)
	if err == nil {
		return counter, nil
	}
	return tiktoken.NewFallbackFor(model, logger)
}

// newLogger builds the CLI logger. MODEX_DEBUG=1 enables debug output.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("MODEX_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("MODEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "modex.db"
	}
	dir := filepath.Join(home, ".modex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "modex.db")
}
