package main

import (
	"fmt"

	"github.com/fwojciec/tenders"
	"github.com/fwojciec/tenders/fs"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	if _, err := deps.Runs.FindRunByID(deps.Ctx, c.RunID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tenders.ErrorMessage(err))
		return err
	}

	records, err := deps.Records.FindRecords(deps.Ctx, tenders.RecordFilter{RunID: &c.RunID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tenders.ErrorMessage(err))
		return err
	}

	if c.Format == "yaml" {
		return fs.WriteYAML(deps.Stdout, records)
	}
	return fs.WriteCSV(deps.Stdout, records)
}
