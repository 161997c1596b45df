package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/anthropic"
	"github.com/fwojciec/deepresearch/gemini"
	"github.com/fwojciec/deepresearch/goquery"
	drhttp "github.com/fwojciec/deepresearch/http"
	"github.com/fwojciec/deepresearch/ingest"
	"github.com/fwojciec/deepresearch/postgres"
	drslog "github.com/fwojciec/deepresearch/slog"
	"github.com/fwojciec/deepresearch/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// importRate is the per-host request rate used by the import command.
const importRate = 1.0

// Main represents the program.
type Main struct {
	// Database path used when DatabaseURL is empty. Set before calling Run().
	DBPath string

	// Postgres connection string. When set, Postgres replaces SQLite.
	DatabaseURL string

	// API keys for the enhancer. Anthropic wins when both are set.
	AnthropicAPIKey string
	GeminiAPIKey    string

	// Stores opened by Run.
	DB *sqlite.DB
	PG *postgres.DB

	// Researches is the store used by commands.
	Researches deepresearch.ResearchService
}

// NewMain returns a new instance of Main configured from the environment.
func NewMain() *Main {
	return &Main{
		DBPath:          defaultDBPath(),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.PG != nil {
		_ = m.PG.Close()
	}
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
		kong.Name("deepresearch"),
		kong.Description("Archive, search and rank shared AI research conversations."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'deepresearch --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := m.openStore(ctx, stderr); err != nil {
		return err
	}
	defer m.Close()

	deps.Researches = m.Researches
	if cli.Debug {
		deps.Researches = drslog.NewLoggingResearchService(m.Researches, logger)
	}

	if cmd == "submit" || cmd == "import" {
		var fetcher deepresearch.Fetcher = drhttp.NewFetcher()
		if cmd == "import" {
			fetcher = &ingest.RetryFetcher{Fetcher: fetcher, Logger: logger}
		}
		var extractor deepresearch.Extractor = goquery.NewDefaultRegistry(goquery.WithMaxLength(deepresearch.MaxContentLength))
		enhancer := m.newEnhancer(ctx, stderr)

		if cli.Debug {
			fetcher = drslog.NewLoggingFetcher(fetcher, logger)
			extractor = drslog.NewLoggingExtractor(extractor, logger)
			if enhancer != nil {
				enhancer = drslog.NewLoggingEnhancer(enhancer, logger)
			}
		}

		svc := &ingest.Service{
			Researches: deps.Researches,
			Fetcher:    fetcher,
			Extractor:  extractor,
			Enhancer:   enhancer,
			Logger:     logger,
		}
		deps.Submitter = svc
		deps.Importer = &ingest.Importer{
			Submitter:   svc,
			RateLimiter: ingest.NewDomainLimiter(importRate),
		}
	}

	return kongCtx.Run(deps)
}

// openStore opens Postgres when DatabaseURL is set and SQLite otherwise.
func (m *Main) openStore(ctx context.Context, stderr io.Writer) error {
	if m.DatabaseURL != "" {
		pg, err := postgres.Open(ctx, m.DatabaseURL)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: check DATABASE_URL or unset it to use SQLite")
			return err
		}
		m.PG = pg
		if err := pg.Migrate(ctx); err != nil {
			return err
		}
		m.Researches = postgres.NewResearchService(pg)
		return nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DEEPRESEARCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	m.Researches = sqlite.NewResearchService(m.DB)
	return nil
}

// newEnhancer returns the configured enhancer, or nil when no API key is
// available. Records submitted without an enhancer stay pending.
func (m *Main) newEnhancer(ctx context.Context, stderr io.Writer) deepresearch.Enhancer {
	if m.AnthropicAPIKey != "" {
		return anthropic.NewEnhancer(m.AnthropicAPIKey)
	}

	if m.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintf(stderr, "warning: Gemini unavailable, records will stay pending: %v\n", err)
			return nil
		}
		return gemini.NewEnhancer(client, gemini.DefaultModel)
	}

	fmt.Fprintln(stderr, "Hint: set ANTHROPIC_API_KEY or GEMINI_API_KEY to enable AI enhancement")
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("DEEPRESEARCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "deepresearch.db"
	}
	dir := filepath.Join(home, ".deepresearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "deepresearch.db")
}
