package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/kofiasare/aliscout"
	"github.com/kofiasare/aliscout/collect"
	"github.com/kofiasare/aliscout/csv"
	"github.com/kofiasare/aliscout/goquery"
	"github.com/kofiasare/aliscout/rod"
	alislog "github.com/kofiasare/aliscout/slog"
	"github.com/kofiasare/aliscout/sqlite"
	"github.com/kofiasare/aliscout/viper"
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
	// Configuration loaded during Run().
	Config *aliscout.Config

	// SQLite database used by the store services.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CategoryService aliscout.CategoryService
	ProductService  aliscout.ProductService

	// Fetcher and Extractor override the browser-backed defaults.
	// Tests set these to avoid launching Chrome.
	Fetcher   aliscout.Fetcher
	Extractor aliscout.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("aliscout"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'aliscout --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load configuration; a missing database section is fatal here,
	// before anything else runs.
	m.Config, err = viper.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: provide a config file with a database section, or set ALISCOUT_DATABASE_PATH")
		return err
	}
	deps.Config = m.Config

	// Open database
	m.DB = sqlite.NewDB(m.Config.Database.Path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", m.Config.Database.Path, err)
	}
	defer m.Close()

	// Wire store services
	m.CategoryService = sqlite.NewCategoryService(m.DB)
	m.ProductService = sqlite.NewProductService(m.DB)
	deps.DB = m.DB
	deps.Categories = m.CategoryService
	deps.Products = m.ProductService

	// Wire the collection pipeline for the search command only; the
	// query path never needs a browser. Gate on the parsed command, not
	// the raw arguments: kong accepts global flags before the subcommand.
	if strings.HasPrefix(kongCtx.Command(), "search") {
		fetcher := m.Fetcher
		if fetcher == nil {
			f, err := rod.NewFetcher(m.Config.Fetcher.FetchOptions())
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		}
		defer fetcher.Close()

		extractor := m.Extractor
		if extractor == nil {
			extractor = goquery.NewExtractor()
		}

		outDir := m.Config.Collector.OutputDir
		if cli.Search.Out != "" {
			outDir = cli.Search.Out
		}
		deps.Snapshots = csv.NewWriter(outDir)
		deps.Collector = &collect.Collector{
			Fetcher:   alislog.NewLoggingFetcher(fetcher, deps.Logger),
			Extractor: alislog.NewLoggingExtractor(extractor, deps.Logger),
			SearchURL: m.Config.Collector.SearchURL,
			MaxPages:  m.Config.Collector.MaxPages,
			Logger:    deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}
