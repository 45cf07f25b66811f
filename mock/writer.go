package mock

import (
	"context"

	"github.com/fwojciec/tenders"
)

var _ tenders.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of tenders.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*tenders.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*tenders.Record) error {
	return w.WriteRecordsFn(ctx, records)
}
