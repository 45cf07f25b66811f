package mock

import (
	"context"

	"github.com/fwojciec/tenders"
)

// Compile-time interface verification.
var (
	_ tenders.RunService    = (*RunService)(nil)
	_ tenders.RecordService = (*RecordService)(nil)
)

// RunService is a mock implementation of tenders.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *tenders.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*tenders.Run, error)
	FindRunsFn    func(ctx context.Context, filter tenders.RunFilter) ([]*tenders.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *tenders.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*tenders.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter tenders.RunFilter) ([]*tenders.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

// RecordService is a mock implementation of tenders.RecordService.
type RecordService struct {
	CreateRecordsFn func(ctx context.Context, runID string, records []*tenders.Record) error
	FindRecordsFn   func(ctx context.Context, filter tenders.RecordFilter) ([]*tenders.Record, error)
}

func (s *RecordService) CreateRecords(ctx context.Context, runID string, records []*tenders.Record) error {
	return s.CreateRecordsFn(ctx, runID, records)
}

func (s *RecordService) FindRecords(ctx context.Context, filter tenders.RecordFilter) ([]*tenders.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
