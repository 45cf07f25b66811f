// Package scrape runs a full extraction pass: it loads the listing, walks
// its entries one at a time, loads each detail page and assembles the
// output records.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/tenders"
	"github.com/fwojciec/tenders/extract"
)

// Scraper orchestrates one run over the listing.
type Scraper struct {
	Source tenders.PageSource
	Parser tenders.Parser
}

// Result holds the outcome of a run.
type Result struct {
	// Records are the assembled rows in listing order.
	Records []*tenders.Record

	// Skipped counts entries dropped because of an error.
	Skipped int

	// NoDetail counts entries dropped because their detail page has no
	// tender details.
	NoDetail int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int

	// Position is the entry's zero-based index on the listing page.
	Position int

	// ItemID is zero for entries that failed before their ID was known.
	ItemID int
	Error  error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressNoDetail
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run extracts every record reachable from the listing page.
//
// Only a listing page that cannot be loaded or has no listing container
// fails the run. Entries that fail are reported as ProgressFailed and
// dropped; entries whose detail page lacks tender details are reported as
// ProgressNoDetail and dropped. Entries are processed strictly in order.
func (s *Scraper) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	html, err := s.Source.IndexPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("index page: %w", err)
	}
	doc, err := s.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("index page: %w", err)
	}

	var indexFailures []skipped
	entries, err := extract.Index(doc, func(position int, err error) {
		indexFailures = append(indexFailures, skipped{position, err})
	})
	if err != nil {
		return nil, fmt.Errorf("index page: %w", err)
	}

	total := len(entries) + len(indexFailures)
	result := &Result{Skipped: len(indexFailures)}
	completed := 0

	notify(ProgressEvent{Type: ProgressStarted, Total: total})
	for _, f := range indexFailures {
		completed++
		notify(ProgressEvent{
			Type:      ProgressFailed,
			Completed: completed,
			Total:     total,
			Position:  f.position,
			Error:     f.err,
		})
	}

	positions := listingPositions(len(entries), indexFailures)
	seen := make(map[int]bool, len(entries))
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		completed++

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Position:  positions[i],
			ItemID:    entry.ItemID,
		}

		var record *tenders.Record
		if seen[entry.ItemID] {
			err = tenders.Errorf(tenders.ECONFLICT, "item %d listed more than once", entry.ItemID)
		} else {
			seen[entry.ItemID] = true
			record, err = s.processEntry(ctx, entry)
		}

		switch {
		case err != nil:
			result.Skipped++
			event.Type = ProgressFailed
			event.Error = err
		case record == nil:
			result.NoDetail++
			event.Type = ProgressNoDetail
		default:
			result.Records = append(result.Records, record)
		}
		notify(event)
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	return result, nil
}

type skipped struct {
	position int
	err      error
}

// listingPositions returns the listing position of each extracted entry,
// given the positions that failed extraction.
func listingPositions(n int, failures []skipped) []int {
	failed := make(map[int]bool, len(failures))
	for _, f := range failures {
		failed[f.position] = true
	}
	positions := make([]int, 0, n)
	for p := 0; len(positions) < n; p++ {
		if !failed[p] {
			positions = append(positions, p)
		}
	}
	return positions
}

// processEntry loads and extracts one item's detail page and assembles its
// record. A nil record with a nil error means the item has no details.
func (s *Scraper) processEntry(ctx context.Context, entry *tenders.ListingEntry) (*tenders.Record, error) {
	html, err := s.Source.DetailPage(ctx, entry.ItemID)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", entry.ItemID, err)
	}
	doc, err := s.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", entry.ItemID, err)
	}

	detail, err := extract.Detail(doc)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", entry.ItemID, err)
	}
	if detail == nil {
		return nil, nil
	}

	return tenders.Assemble(entry, detail)
}
