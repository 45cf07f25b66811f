package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/tenders"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tenders.RunService = (*RunService)(nil)

// RunService implements tenders.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run.
func (s *RunService) CreateRun(ctx context.Context, run *tenders.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	run.StartedAt = run.StartedAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_url, saved, skipped, no_detail, digest, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SourceURL, run.Saved, run.Skipped, run.NoDetail, run.Digest,
		run.StartedAt.Format(time.RFC3339))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*tenders.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, saved, skipped, no_detail, digest, started_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, tenders.Errorf(tenders.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context, filter tenders.RunFilter) ([]*tenders.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, saved, skipped, no_detail, digest, started_at FROM runs ORDER BY started_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*tenders.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*tenders.Run, error) {
	var run tenders.Run
	var startedAt string

	if err := row.Scan(&run.ID, &run.SourceURL, &run.Saved, &run.Skipped, &run.NoDetail,
		&run.Digest, &startedAt); err != nil {
		return nil, err
	}

	var err error
	run.StartedAt, err = parseRFC3339(startedAt, "started_at")
	if err != nil {
		return nil, err
	}
	return &run, nil
}
