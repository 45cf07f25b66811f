package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/tenders"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Runs    tenders.RunService
	Records tenders.RecordService

	// Fetchers are only wired for the scrape command.
	IndexFetcher  tenders.Fetcher
	DetailFetcher tenders.Fetcher

	// Policy vetoes fetches. Nil when robots.txt is ignored.
	Policy tenders.URLPolicy

	// Now stamps runs and output file names.
	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log debug output"`
	DB      string `name:"db" env:"TENDERS_DB" default:"tenders.db" help:"SQLite database path"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape the listing and its detail pages"`
	Parse   ParseCmd   `cmd:"" help:"Extract records from previously cached pages"`
	Runs    RunsCmd    `cmd:"" help:"List stored runs"`
	Records RecordsCmd `cmd:"" help:"Print the records of a run"`
}

// OutputFlags control where a run's records go.
type OutputFlags struct {
	CSVDir  string `name:"csv-dir" env:"TENDERS_CSV_DIR" default:"csv" help:"Directory for CSV output"`
	NoStore bool   `help:"Do not record the run in the database"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	BaseURL      string        `name:"base-url" env:"TENDERS_BASE_URL" default:"https://www.meinauftrag.rib.de/public/publications" help:"Listing URL"`
	PagesDir     string        `name:"pages-dir" env:"TENDERS_PAGES_DIR" default:"pages" help:"Page cache directory"`
	NoCacheRead  bool          `help:"Fetch pages even when cached"`
	NoCacheWrite bool          `help:"Do not store fetched pages"`
	NoScroll     bool          `help:"Fetch the listing without a browser"`
	ScrollPause  time.Duration `default:"3s" help:"Pause between listing scrolls"`
	IndexTimeout time.Duration `default:"10m" help:"Timeout for loading the whole listing"`
	FetchTimeout time.Duration `default:"10s" help:"Timeout per detail page"`
	Throttle     time.Duration `default:"200ms" help:"Minimum interval between detail fetches"`
	Retries      int           `default:"3" help:"Retries per failed fetch"`
	IgnoreRobots bool          `help:"Do not consult robots.txt before fetching"`

	Output OutputFlags `embed:""`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	PagesDir string `arg:"" optional:"" default:"pages" help:"Page cache directory"`
	BaseURL  string `name:"base-url" env:"TENDERS_BASE_URL" default:"https://www.meinauftrag.rib.de/public/publications" help:"Listing URL the pages came from"`

	Output OutputFlags `embed:""`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of runs to show"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	RunID  string `arg:"" help:"Run ID"`
	Format string `short:"f" enum:"csv,yaml" default:"csv" help:"Output format (csv, yaml)"`
}
