package tenders

import (
	"fmt"
	"strconv"
	"time"
)

// ListingEntry is one publication as summarized on the index page.
type ListingEntry struct {
	ItemID          int
	Title           string
	Description     string
	PublicationDate Date

	// Column values default to "" when the entry lacks the column.
	ApplicationPeriod   string
	ExpirationTime      string
	ApplicationDeadline string
	ExecutionTimeframe  string
	PlaceOfExecution    string
}

// Validate returns an error if the entry contains invalid fields.
func (e *ListingEntry) Validate() error {
	if e.ItemID <= 0 {
		return Errorf(EBADID, "item ID must be a positive integer, got %d", e.ItemID)
	}
	return nil
}

// NewListingEntry builds an entry from its summary fields and the column
// values keyed by IndexColumns keys. Columns missing from the map are "".
func NewListingEntry(itemID int, title, description string, published Date, columns map[Key]string) *ListingEntry {
	return &ListingEntry{
		ItemID:              itemID,
		Title:               title,
		Description:         description,
		PublicationDate:     published,
		ApplicationPeriod:   columns[KeyIndexApplicationPeriod],
		ExpirationTime:      columns[KeyExpirationTime],
		ApplicationDeadline: columns[KeyIndexApplicationDeadline],
		ExecutionTimeframe:  columns[KeyIndexExecutionTimeframe],
		PlaceOfExecution:    columns[KeyIndexPlaceOfExecution],
	}
}

// Date is a calendar day as printed on the listing page.
type Date struct {
	Day   int
	Month time.Month
	Year  int

	// DayText is the day block as printed, e.g. "05". When empty, Day is
	// rendered without padding.
	DayText string
}

// String renders the date as "15. 03. 2023", keeping the printed day text.
func (d Date) String() string {
	day := d.DayText
	if day == "" {
		day = strconv.Itoa(d.Day)
	}
	return fmt.Sprintf("%s. %02d. %d", day, int(d.Month), d.Year)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}
