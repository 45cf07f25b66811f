package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/tenders"
	"github.com/fwojciec/tenders/fs"
	"github.com/fwojciec/tenders/goquery"
	"github.com/fwojciec/tenders/scrape"
	tslog "github.com/fwojciec/tenders/slog"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	src := &scrape.Source{
		BaseURL:       c.BaseURL,
		IndexFetcher:  deps.IndexFetcher,
		DetailFetcher: deps.DetailFetcher,
		Cache:         fs.NewPageCache(c.PagesDir),
		ReadCache:     !c.NoCacheRead,
		WriteCache:    !c.NoCacheWrite,
		Policy:        deps.Policy,
		RateLimiter:   scrape.NewDomainLimiter(c.Throttle),
		RetryDelays:   retryDelays(c.Retries),
		Logf: func(format string, args ...any) {
			deps.Logger.Warn(fmt.Sprintf(format, args...))
		},
	}
	return extractAndSave(deps, src, c.BaseURL, c.Output)
}

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	src := &scrape.Source{
		BaseURL:   c.BaseURL,
		Cache:     fs.NewPageCache(c.PagesDir),
		ReadCache: true,
	}
	return extractAndSave(deps, src, c.BaseURL, c.Output)
}

// retryDelays returns n doubling delays starting at one second.
func retryDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := scrape.DefaultRetryDelays()
	for len(delays) < n {
		delays = append(delays, 2*delays[len(delays)-1])
	}
	return delays[:n]
}

// extractAndSave runs the extraction over src, writes the CSV file and
// records the run in the database.
func extractAndSave(deps *Dependencies, src tenders.PageSource, sourceURL string, out OutputFlags) error {
	started := deps.Now()

	s := &scrape.Scraper{
		Source: tslog.NewLoggingPageSource(src, deps.Logger),
		Parser: goquery.NewParser(),
	}

	progress := func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d items\n", e.Total)
		case scrape.ProgressCompleted:
			deps.Logger.Debug("item", "position", e.Position, "item", e.ItemID, "completed", e.Completed, "total", e.Total)
		case scrape.ProgressNoDetail:
			deps.Logger.Info("no details", "position", e.Position, "item", e.ItemID)
		case scrape.ProgressFailed:
			deps.Logger.Warn("skip item", "position", e.Position, "item", e.ItemID, "code", tenders.ErrorCode(e.Error), "err", e.Error)
		}
	}

	result, err := s.Run(deps.Ctx, progress)
	if err != nil {
		switch tenders.ErrorCode(err) {
		case tenders.ENOTFOUND:
			fmt.Fprintln(deps.Stderr, "Hint: the listing page is not cached; run 'tenders scrape' first")
		case tenders.EFORBIDDEN:
			fmt.Fprintln(deps.Stderr, "Hint: robots.txt disallows the listing; pass --ignore-robots to override")
		}
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	path := fs.CSVFilename(out.CSVDir, started)
	w := tslog.NewLoggingRecordWriter(fs.NewCSVWriter(path), "csv", deps.Logger)
	if err := w.WriteRecords(deps.Ctx, result.Records); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", path, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d records to %s (%d skipped, %d without details)\n",
		len(result.Records), path, result.Skipped, result.NoDetail)

	if out.NoStore {
		return nil
	}

	run := &tenders.Run{
		SourceURL: sourceURL,
		Saved:     len(result.Records),
		Skipped:   result.Skipped,
		NoDetail:  result.NoDetail,
		StartedAt: started,
	}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tenders.ErrorMessage(err))
		return err
	}
	if err := deps.Records.CreateRecords(deps.Ctx, run.ID, result.Records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tenders.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s\n", run.ID)
	return nil
}
