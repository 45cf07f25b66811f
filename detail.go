package tenders

// DetailRecord holds the sections parsed from one item's detail page.
// Sections are independently optional; a section that was absent leaves
// all of its fields empty. BriefDescription is always read from its own
// container; a detail page without it fails extraction.
type DetailRecord struct {
	Awarded              Awarded
	Action               Action
	ContractingAuthority ContractingAuthority
	BriefDescription     string
}

// Awarded holds the fields of the "Awarded" section.
type Awarded struct {
	Number                   string
	Name                     string
	PlaceOfExecution         string
	ExecutionTimeframe       string
	ApplicationPeriod        string
	OpeningDate              string
	Period                   string
	BiddersRequest           string
	Regulation               string
	TenderProcedures         string
	SubdivisionIntoLots      string
	SideOffersAllowed        string
	SeveralMainOffersAllowed string
	CPVCodes                 string
	DeliveryForm             string
	ApplicationDeadline      string
	IssueDate                string
	ExpirationTime           string
}

// NewAwarded builds the section from values keyed by AwardedFields keys.
func NewAwarded(fields map[Key]string) Awarded {
	return Awarded{
		Number:                   fields[KeyAwardedNumber],
		Name:                     fields[KeyAwardedName],
		PlaceOfExecution:         fields[KeyAwardedPlaceOfExecution],
		ExecutionTimeframe:       fields[KeyAwardedExecutionTimeframe],
		ApplicationPeriod:        fields[KeyAwardedApplicationPeriod],
		OpeningDate:              fields[KeyAwardedOpeningDate],
		Period:                   fields[KeyAwardedPeriod],
		BiddersRequest:           fields[KeyAwardedBiddersRequest],
		Regulation:               fields[KeyAwardedRegulation],
		TenderProcedures:         fields[KeyAwardedTenderProcedures],
		SubdivisionIntoLots:      fields[KeyAwardedSubdivisionIntoLots],
		SideOffersAllowed:        fields[KeyAwardedSideOffersAllowed],
		SeveralMainOffersAllowed: fields[KeyAwardedSeveralMainOffersAllowed],
		CPVCodes:                 fields[KeyAwardedCPVCodes],
		DeliveryForm:             fields[KeyAwardedDeliveryForm],
		ApplicationDeadline:      fields[KeyAwardedApplicationDeadline],
		IssueDate:                fields[KeyAwardedIssueDate],
		ExpirationTime:           fields[KeyAwardedExpirationTime],
	}
}

// Action holds the fields of the "Action" section.
type Action struct {
	Number string
	Name   string
}

// NewAction builds the section from values keyed by ActionFields keys.
func NewAction(fields map[Key]string) Action {
	return Action{
		Number: fields[KeyActionNumber],
		Name:   fields[KeyActionName],
	}
}

// ContractingAuthority holds the fields of the "Contracting Authority" section.
type ContractingAuthority struct {
	Name    string
	Address string
	Email   string
}

// NewContractingAuthority builds the section from values keyed by
// ContractingAuthorityFields keys.
func NewContractingAuthority(fields map[Key]string) ContractingAuthority {
	return ContractingAuthority{
		Name:    fields[KeyContractingAuthorityName],
		Address: fields[KeyContractingAuthorityAddress],
		Email:   fields[KeyContractingAuthorityEmail],
	}
}
