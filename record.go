package tenders

import (
	"context"
	"strconv"
)

// Record is the flat output row for one publication: the listing entry
// merged with the emitted subset of its detail record.
type Record struct {
	ItemID          int
	Name            string
	Description     string
	PublicationDate string

	ApplicationPeriod   string
	ExpirationTime      string
	ApplicationDeadline string
	ExecutionTimeframe  string
	PlaceOfExecution    string

	AwardedNumber             string
	AwardedName               string
	AwardedPlaceOfExecution   string
	AwardedExecutionTimeframe string
	AwardedApplicationPeriod  string
	AwardedOpeningDate        string
	AwardedPeriod             string
	AwardedBiddersRequest     string

	ActionNumber string
	ActionName   string

	ContractingAuthorityName    string
	ContractingAuthorityAddress string
	ContractingAuthorityEmail   string

	BriefDescription string
}

// RecordFields is the published column order of a Record.
// Persistence layers depend on it; do not reorder.
var RecordFields = []string{
	"item_id",
	"index_name",
	"index_description",
	"index_publication_date",
	string(KeyIndexApplicationPeriod),
	string(KeyExpirationTime),
	string(KeyIndexApplicationDeadline),
	string(KeyIndexExecutionTimeframe),
	string(KeyIndexPlaceOfExecution),
	string(KeyAwardedNumber),
	string(KeyAwardedName),
	string(KeyAwardedPlaceOfExecution),
	string(KeyAwardedExecutionTimeframe),
	string(KeyAwardedApplicationPeriod),
	string(KeyAwardedOpeningDate),
	string(KeyAwardedPeriod),
	string(KeyAwardedBiddersRequest),
	string(KeyActionNumber),
	string(KeyActionName),
	string(KeyContractingAuthorityName),
	string(KeyContractingAuthorityAddress),
	string(KeyContractingAuthorityEmail),
	string(KeyBriefDescription),
}

// Values returns the record's fields in RecordFields order.
func (r *Record) Values() []string {
	return []string{
		strconv.Itoa(r.ItemID),
		r.Name,
		r.Description,
		r.PublicationDate,
		r.ApplicationPeriod,
		r.ExpirationTime,
		r.ApplicationDeadline,
		r.ExecutionTimeframe,
		r.PlaceOfExecution,
		r.AwardedNumber,
		r.AwardedName,
		r.AwardedPlaceOfExecution,
		r.AwardedExecutionTimeframe,
		r.AwardedApplicationPeriod,
		r.AwardedOpeningDate,
		r.AwardedPeriod,
		r.AwardedBiddersRequest,
		r.ActionNumber,
		r.ActionName,
		r.ContractingAuthorityName,
		r.ContractingAuthorityAddress,
		r.ContractingAuthorityEmail,
		r.BriefDescription,
	}
}

// RecordFromValues is the inverse of Record.Values.
// Returns EINVALID if the number of values does not match RecordFields
// or the item ID is not an integer.
func RecordFromValues(values []string) (*Record, error) {
	if len(values) != len(RecordFields) {
		return nil, Errorf(EINVALID, "record has %d values, want %d", len(values), len(RecordFields))
	}
	id, err := strconv.Atoi(values[0])
	if err != nil {
		return nil, Errorf(EINVALID, "record item ID %q is not an integer", values[0])
	}
	return &Record{
		ItemID:                      id,
		Name:                        values[1],
		Description:                 values[2],
		PublicationDate:             values[3],
		ApplicationPeriod:           values[4],
		ExpirationTime:              values[5],
		ApplicationDeadline:         values[6],
		ExecutionTimeframe:          values[7],
		PlaceOfExecution:            values[8],
		AwardedNumber:               values[9],
		AwardedName:                 values[10],
		AwardedPlaceOfExecution:     values[11],
		AwardedExecutionTimeframe:   values[12],
		AwardedApplicationPeriod:    values[13],
		AwardedOpeningDate:          values[14],
		AwardedPeriod:               values[15],
		AwardedBiddersRequest:       values[16],
		ActionNumber:                values[17],
		ActionName:                  values[18],
		ContractingAuthorityName:    values[19],
		ContractingAuthorityAddress: values[20],
		ContractingAuthorityEmail:   values[21],
		BriefDescription:            values[22],
	}, nil
}

// Assemble merges a listing entry and its detail record into one Record.
// Returns EINVALID if either part is nil: items without a detail record are
// excluded from output rather than emitted with blank detail fields.
func Assemble(entry *ListingEntry, detail *DetailRecord) (*Record, error) {
	if entry == nil {
		return nil, Errorf(EINVALID, "listing entry required")
	}
	if detail == nil {
		return nil, Errorf(EINVALID, "item %d: detail record required", entry.ItemID)
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return &Record{
		ItemID:          entry.ItemID,
		Name:            entry.Title,
		Description:     entry.Description,
		PublicationDate: entry.PublicationDate.String(),

		ApplicationPeriod:   entry.ApplicationPeriod,
		ExpirationTime:      entry.ExpirationTime,
		ApplicationDeadline: entry.ApplicationDeadline,
		ExecutionTimeframe:  entry.ExecutionTimeframe,
		PlaceOfExecution:    entry.PlaceOfExecution,

		AwardedNumber:             detail.Awarded.Number,
		AwardedName:               detail.Awarded.Name,
		AwardedPlaceOfExecution:   detail.Awarded.PlaceOfExecution,
		AwardedExecutionTimeframe: detail.Awarded.ExecutionTimeframe,
		AwardedApplicationPeriod:  detail.Awarded.ApplicationPeriod,
		AwardedOpeningDate:        detail.Awarded.OpeningDate,
		AwardedPeriod:             detail.Awarded.Period,
		AwardedBiddersRequest:     detail.Awarded.BiddersRequest,

		ActionNumber: detail.Action.Number,
		ActionName:   detail.Action.Name,

		ContractingAuthorityName:    detail.ContractingAuthority.Name,
		ContractingAuthorityAddress: detail.ContractingAuthority.Address,
		ContractingAuthorityEmail:   detail.ContractingAuthority.Email,

		BriefDescription: detail.BriefDescription,
	}, nil
}

// RecordWriter persists a completed sequence of records.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []*Record) error
}
