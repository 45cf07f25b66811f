package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/tenders"
)

// Compile-time interface verification.
var _ tenders.RecordService = (*RecordService)(nil)

// RecordService implements tenders.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// recordColumns is the column list of a stored record in
// tenders.RecordFields order.
var recordColumns = strings.Join(tenders.RecordFields, ", ")

// CreateRecords stores records for a run in order and updates its digest.
func (s *RecordService) CreateRecords(ctx context.Context, runID string, records []*tenders.Record) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs WHERE id = ?", runID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return tenders.Errorf(tenders.ENOTFOUND, "run not found")
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(tenders.RecordFields)), ", ")
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (run_id, position, `+recordColumns+`, content_hash)
		VALUES (?, ?, `+placeholders+`, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	hashes := make([]string, 0, len(records))
	for i, r := range records {
		values := r.Values()
		hash := hashValues(values)
		hashes = append(hashes, hash)

		args := make([]any, 0, len(values)+3)
		args = append(args, runID, i, r.ItemID)
		for _, v := range values[1:] {
			args = append(args, v)
		}
		args = append(args, hash)

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			if strings.Contains(err.Error(), "UNIQUE") {
				return tenders.Errorf(tenders.ECONFLICT, "item %d already stored for run", r.ItemID)
			}
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, "UPDATE runs SET digest = ? WHERE id = ?", hashValues(hashes), runID); err != nil {
		return err
	}

	return tx.Commit()
}

// FindRecords retrieves records matching the filter in stored order.
func (s *RecordService) FindRecords(ctx context.Context, filter tenders.RecordFilter) ([]*tenders.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.ItemID != nil {
		query.WriteString(" AND item_id = ?")
		args = append(args, *filter.ItemID)
	}

	query.WriteString(" ORDER BY run_id, position")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*tenders.Record
	for rows.Next() {
		values := make([]string, len(tenders.RecordFields))
		dest := make([]any, len(values))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		r, err := tenders.RecordFromValues(values)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
