package tenders

import (
	"fmt"
	"time"
)

// Key is the canonical name a labeled value is stored under, independent of
// the wording the site uses for the label.
type Key string

// KeySkip marks a label that is recognized but intentionally ignored.
const KeySkip Key = "-"

// Index column keys.
const (
	KeyIndexApplicationPeriod   Key = "index_application_period"
	KeyExpirationTime           Key = "expiration_time"
	KeyIndexApplicationDeadline Key = "index_application_deadline"
	KeyIndexExecutionTimeframe  Key = "index_execution_timeframe"
	KeyIndexPlaceOfExecution    Key = "index_place_of_execution"
)

// Detail section keys.
const (
	KeyAwarded              Key = "awarded"
	KeyAction               Key = "action"
	KeyContractingAuthority Key = "contracting_authority"
	KeyBriefDescription     Key = "brief_description"
)

// Awarded section field keys.
const (
	KeyAwardedNumber                   Key = "awarded_number"
	KeyAwardedName                     Key = "awarded_name"
	KeyAwardedPlaceOfExecution         Key = "awarded_place_of_execution"
	KeyAwardedExecutionTimeframe       Key = "awarded_execution_timeframe"
	KeyAwardedApplicationPeriod        Key = "awarded_application_period"
	KeyAwardedOpeningDate              Key = "awarded_opening_date"
	KeyAwardedPeriod                   Key = "awarded_period"
	KeyAwardedBiddersRequest           Key = "awarded_bidders_request"
	KeyAwardedRegulation               Key = "awarded_regulation"
	KeyAwardedTenderProcedures         Key = "awarded_tender_procedures"
	KeyAwardedSubdivisionIntoLots      Key = "awarded_subdivision_into_lots"
	KeyAwardedSideOffersAllowed        Key = "awarded_side_offers_allowed"
	KeyAwardedSeveralMainOffersAllowed Key = "awarded_several_main_offers_allowed"
	KeyAwardedCPVCodes                 Key = "awarded_cpv_codes"
	KeyAwardedDeliveryForm             Key = "awarded_delivery_form"
	KeyAwardedApplicationDeadline      Key = "awarded_application_deadline"
	KeyAwardedIssueDate                Key = "awarded_issue_date"
	KeyAwardedExpirationTime           Key = "awarded_expiration_time"
)

// Action and contracting authority field keys.
const (
	KeyActionNumber Key = "action_number"
	KeyActionName   Key = "action_name"

	KeyContractingAuthorityName    Key = "contracting_authority_name"
	KeyContractingAuthorityAddress Key = "contracting_authority_address"
	KeyContractingAuthorityEmail   Key = "contracting_authority_email"
)

// Vocabulary is a closed table of recognized labels. Resolving a label
// outside the table is an error, never a default.
type Vocabulary struct {
	name   string
	labels map[string]Key
	order  []string
}

// NewVocabulary builds a vocabulary from label/key pairs.
// It panics on an empty label or key and on a duplicated label, since
// vocabularies are static tables declared at package level.
func NewVocabulary(name string, pairs ...LabelKey) *Vocabulary {
	v := &Vocabulary{
		name:   name,
		labels: make(map[string]Key, len(pairs)),
		order:  make([]string, 0, len(pairs)),
	}
	for _, p := range pairs {
		if p.Label == "" || p.Key == "" {
			panic(fmt.Sprintf("tenders: %s vocabulary: empty label or key in %+v", name, p))
		}
		if _, ok := v.labels[p.Label]; ok {
			panic(fmt.Sprintf("tenders: %s vocabulary: duplicate label %q", name, p.Label))
		}
		v.labels[p.Label] = p.Key
		v.order = append(v.order, p.Label)
	}
	return v
}

// LabelKey pairs a site label with its canonical key.
type LabelKey struct {
	Label string
	Key   Key
}

// Name returns the vocabulary's identifier.
func (v *Vocabulary) Name() string {
	return v.name
}

// Resolve returns the canonical key for label.
// Returns EUNKNOWNLABEL if the label is not in the vocabulary.
func (v *Vocabulary) Resolve(label string) (Key, error) {
	key, ok := v.labels[label]
	if !ok {
		return "", Errorf(EUNKNOWNLABEL, "unknown %s label %q", v.name, label)
	}
	return key, nil
}

// Labels returns the recognized labels in declaration order.
func (v *Vocabulary) Labels() []string {
	return append([]string(nil), v.order...)
}

// Keys returns the keys of all labels in declaration order, without KeySkip.
func (v *Vocabulary) Keys() []Key {
	keys := make([]Key, 0, len(v.order))
	for _, label := range v.order {
		if key := v.labels[label]; key != KeySkip {
			keys = append(keys, key)
		}
	}
	return keys
}

// IndexColumns maps the column labels of a listing entry.
var IndexColumns = NewVocabulary("index column",
	LabelKey{"Application Period", KeyIndexApplicationPeriod},
	LabelKey{"Expiration time", KeyExpirationTime},
	LabelKey{"Application deadline", KeyIndexApplicationDeadline},
	LabelKey{"Execution Timeframe", KeyIndexExecutionTimeframe},
	LabelKey{"Place of Execution", KeyIndexPlaceOfExecution},
)

// Sections maps the headings of detail page sections.
// "Place of Execution" is valid at this level but its value is taken from
// the listing entry, so it resolves to KeySkip.
var Sections = NewVocabulary("section",
	LabelKey{"Awarded", KeyAwarded},
	LabelKey{"Action", KeyAction},
	LabelKey{"Contracting Authority", KeyContractingAuthority},
	LabelKey{"Brief description", KeyBriefDescription},
	LabelKey{"Place of Execution", KeySkip},
)

// AwardedFields maps the row labels of the "Awarded" section.
var AwardedFields = NewVocabulary("awarded field",
	LabelKey{"Number", KeyAwardedNumber},
	LabelKey{"Name", KeyAwardedName},
	LabelKey{"Place of Execution", KeyAwardedPlaceOfExecution},
	LabelKey{"Execution Timeframe", KeyAwardedExecutionTimeframe},
	LabelKey{"Application Period", KeyAwardedApplicationPeriod},
	LabelKey{"Opening Date", KeyAwardedOpeningDate},
	LabelKey{"Award period", KeyAwardedPeriod},
	LabelKey{"Bidders requests", KeyAwardedBiddersRequest},
	LabelKey{"Regulation", KeyAwardedRegulation},
	LabelKey{"Tender Procedures", KeyAwardedTenderProcedures},
	LabelKey{"Subdivision into lots", KeyAwardedSubdivisionIntoLots},
	LabelKey{"Side-offers allowed", KeyAwardedSideOffersAllowed},
	LabelKey{"Several main offers allowed", KeyAwardedSeveralMainOffersAllowed},
	LabelKey{"CPV Codes", KeyAwardedCPVCodes},
	LabelKey{"Delivery form", KeyAwardedDeliveryForm},
	LabelKey{"Application deadline", KeyAwardedApplicationDeadline},
	LabelKey{"Issue date", KeyAwardedIssueDate},
	LabelKey{"Expiration time", KeyAwardedExpirationTime},
)

// ActionFields maps the row labels of the "Action" section.
// Some actions repeat the place of execution, which is taken from the
// listing entry instead.
var ActionFields = NewVocabulary("action field",
	LabelKey{"Number", KeyActionNumber},
	LabelKey{"Name", KeyActionName},
	LabelKey{"Place of Execution", KeySkip},
)

// ContractingAuthorityFields maps the row labels of the "Contracting
// Authority" section.
var ContractingAuthorityFields = NewVocabulary("contracting authority field",
	LabelKey{"Name", KeyContractingAuthorityName},
	LabelKey{"Address", KeyContractingAuthorityAddress},
	LabelKey{"Email", KeyContractingAuthorityEmail},
	LabelKey{"Place of Execution", KeySkip},
)

// briefDescriptionFields is empty: the brief description is read from its
// own container, so rows under a "Brief description" section heading are
// not recognized.
var briefDescriptionFields = NewVocabulary("brief description field")

// FieldsFor returns the row vocabulary of a detail section.
// Returns EINVALID for keys that are not section keys.
func FieldsFor(section Key) (*Vocabulary, error) {
	switch section {
	case KeyAwarded:
		return AwardedFields, nil
	case KeyAction:
		return ActionFields, nil
	case KeyContractingAuthority:
		return ContractingAuthorityFields, nil
	case KeyBriefDescription:
		return briefDescriptionFields, nil
	}
	return nil, Errorf(EINVALID, "no field vocabulary for section %q", section)
}

var months = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// ParseMonth resolves an English month name.
// Returns EUNKNOWNMONTH for anything outside the 12 month names.
func ParseMonth(name string) (time.Month, error) {
	m, ok := months[name]
	if !ok {
		return 0, Errorf(EUNKNOWNMONTH, "unknown month name %q", name)
	}
	return m, nil
}
