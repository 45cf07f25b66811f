package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fwojciec/tenders"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, tenders.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tenders.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'tenders scrape' to create one.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.StartedAt.Format(time.RFC3339),
			strconv.Itoa(r.Saved),
			strconv.Itoa(r.Skipped),
			strconv.Itoa(r.NoDetail),
			r.SourceURL,
			shortDigest(r.Digest),
		})
	}

	return writeTable(deps.Stdout,
		[]string{"ID", "STARTED", "SAVED", "SKIPPED", "NO DETAIL", "SOURCE", "DIGEST"}, rows)
}

func shortDigest(digest string) string {
	if len(digest) > 8 {
		return digest[:8]
	}
	return digest
}
