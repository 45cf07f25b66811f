package fs

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"path/filepath"
	"time"

	"github.com/fwojciec/tenders"
)

// CSVFilename returns the output path for a run started at t, e.g.
// dir/2023_03_15_10_30_00_parsed_items.csv.
func CSVFilename(dir string, t time.Time) string {
	return filepath.Join(dir, t.Format("2006_01_02_15_04_05")+"_parsed_items.csv")
}

// WriteCSV writes a header row of tenders.RecordFields followed by one row
// per record.
func WriteCSV(w io.Writer, records []*tenders.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tenders.RecordFields); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Ensure CSVWriter implements tenders.RecordWriter at compile time.
var _ tenders.RecordWriter = (*CSVWriter)(nil)

// CSVWriter writes records to a CSV file. The file appears only once
// it is complete.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a CSVWriter for the file at path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the output file path.
func (w *CSVWriter) Path() string {
	return w.path
}

// WriteRecords writes the records, replacing any existing file.
func (w *CSVWriter) WriteRecords(ctx context.Context, records []*tenders.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return err
	}
	return writeFileAtomic(w.path, buf.Bytes())
}
