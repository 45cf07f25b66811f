package tenders

import (
	"context"
	"time"
)

// Run represents one scraping pass over the listing.
type Run struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"sourceUrl"`
	Saved     int       `json:"saved"`
	Skipped   int       `json:"skipped"`
	NoDetail  int       `json:"noDetail"`
	StartedAt time.Time `json:"startedAt"`

	// Digest summarizes the stored records. Runs over identical pages
	// have identical digests.
	Digest string `json:"digest"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "run source URL required")
	}
	if r.Saved < 0 || r.Skipped < 0 || r.NoDetail < 0 {
		return Errorf(EINVALID, "run counts must not be negative")
	}
	return nil
}

// RunService represents a service for managing scraping runs.
type RunService interface {
	// CreateRun creates a new run. ID and StartedAt are assigned.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService represents a service for storing the records of a run.
type RecordService interface {
	// CreateRecords stores records for a run in order and updates the
	// run's digest. Returns ENOTFOUND if the run does not exist.
	CreateRecords(ctx context.Context, runID string, records []*Record) error

	// FindRecords retrieves records matching the filter in stored order.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	RunID  *string `json:"runId"`
	ItemID *int    `json:"itemId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
