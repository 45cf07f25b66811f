package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tenders"
	tendershttp "github.com/fwojciec/tenders/http"
	"github.com/fwojciec/tenders/rod"
	tslog "github.com/fwojciec/tenders/slog"
	"github.com/fwojciec/tenders/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides the --db flag when set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService    tenders.RunService
	RecordService tenders.RecordService
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
		Now:    time.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tenders"),
		kong.Description("Extract public tender publications into CSV and SQLite"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tenders --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dbPath := cli.DB
	if m.DBPath != "" {
		dbPath = m.DBPath
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TENDERS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	m.RecordService = sqlite.NewRecordService(m.DB)
	deps.Runs = m.RunService
	deps.Records = m.RecordService

	if kongCtx.Command() == "scrape" {
		httpFetcher := tendershttp.NewFetcher(tendershttp.WithTimeout(cli.Scrape.FetchTimeout))
		deps.DetailFetcher = tslog.NewLoggingFetcher(httpFetcher, deps.Logger)
		if !cli.Scrape.IgnoreRobots {
			deps.Policy = tslog.NewLoggingURLPolicy(tendershttp.NewRobots(httpFetcher), deps.Logger)
		}

		if cli.Scrape.NoScroll {
			deps.IndexFetcher = deps.DetailFetcher
		} else {
			browser, err := rod.NewFetcher(
				rod.WithScrollPause(cli.Scrape.ScrollPause),
				rod.WithFetchTimeout(cli.Scrape.IndexTimeout),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --no-scroll")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer browser.Close()
			deps.IndexFetcher = tslog.NewLoggingFetcher(browser, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}
