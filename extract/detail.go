package extract

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tenders"
)

// Selectors of the detail page.
var (
	detailsSelector = tenders.Selector{Tag: "div", Class: "tender-details"}
	sectionSelector = tenders.Selector{Tag: "div", Class: "col-md-6"}
	briefSelector   = tenders.Selector{Tag: "div", Class: "col-md-12"}
	legendSelector  = tenders.Selector{Tag: "legend"}
	rowSelector     = tenders.Selector{Tag: "tr"}
	cellSelector    = tenders.Selector{Tag: "td"}
)

// Detail extracts the detail record of one item.
//
// It returns (nil, nil) when the page has no tender details container:
// some publications have no detail data, which is not an error. A page
// with several containers, an unknown section heading or an unknown row
// label fails.
func Detail(doc tenders.Node) (*tenders.DetailRecord, error) {
	containers := doc.FindAll(detailsSelector)
	switch len(containers) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, tenders.Errorf(tenders.ESTRUCTURE, "expected one %s element, found %d", detailsSelector, len(containers))
	}
	details := containers[0]

	groups := make(map[tenders.Key]map[tenders.Key]string)
	for _, section := range details.FindAll(sectionSelector) {
		key, fields, err := Section(section)
		if err != nil {
			return nil, err
		}
		if key == tenders.KeySkip {
			continue
		}
		if groups[key] == nil {
			groups[key] = make(map[tenders.Key]string, len(fields))
		}
		for k, v := range fields {
			groups[key][k] = v
		}
	}

	brief, err := BriefDescription(details)
	if err != nil {
		return nil, fmt.Errorf("brief description: %w", err)
	}

	return &tenders.DetailRecord{
		Awarded:              tenders.NewAwarded(groups[tenders.KeyAwarded]),
		Action:               tenders.NewAction(groups[tenders.KeyAction]),
		ContractingAuthority: tenders.NewContractingAuthority(groups[tenders.KeyContractingAuthority]),
		BriefDescription:     brief,
	}, nil
}

// Section reads one labeled section: its heading resolved through
// tenders.Sections and its rows resolved through the section's field
// vocabulary. A skipped section returns tenders.KeySkip and no fields;
// rows whose label resolves to tenders.KeySkip are dropped.
// When a label repeats, the last row wins.
func Section(section tenders.Node) (tenders.Key, map[tenders.Key]string, error) {
	legend, err := section.FindUnique(legendSelector)
	if err != nil {
		return "", nil, err
	}
	heading := text(legend)

	key, err := tenders.Sections.Resolve(heading)
	if err != nil {
		return "", nil, err
	}
	if key == tenders.KeySkip {
		return key, nil, nil
	}

	vocab, err := tenders.FieldsFor(key)
	if err != nil {
		return "", nil, err
	}

	fields := make(map[tenders.Key]string)
	for _, row := range section.FindAll(rowSelector) {
		label, value, err := Row(row)
		if err != nil {
			return "", nil, fmt.Errorf("section %q: %w", heading, err)
		}
		field, err := vocab.Resolve(label)
		if err != nil {
			return "", nil, fmt.Errorf("section %q: %w", heading, err)
		}
		if field == tenders.KeySkip {
			continue
		}
		fields[field] = value
	}
	return key, fields, nil
}

// Row returns the label of a table row, taken from its first cell, and
// the value, taken from its last cell.
func Row(row tenders.Node) (label, value string, err error) {
	cells := row.FindAll(cellSelector)
	if len(cells) == 0 {
		return "", "", tenders.Errorf(tenders.ESTRUCTURE, "row without %s cells", cellSelector)
	}
	return text(cells[0]), text(cells[len(cells)-1]), nil
}

// BriefDescription reads the brief description container, which must be
// headed exactly "Brief Description" and hold exactly one cell.
func BriefDescription(details tenders.Node) (string, error) {
	div, err := details.FindUnique(briefSelector)
	if err != nil {
		return "", err
	}
	legend, err := div.FindUnique(legendSelector)
	if err != nil {
		return "", err
	}
	if heading := text(legend); heading != briefDescriptionHeading {
		return "", tenders.Errorf(tenders.ESTRUCTURE, "brief description heading is %q, want %q", heading, briefDescriptionHeading)
	}

	cells := div.FindAll(cellSelector)
	if len(cells) != 1 {
		return "", tenders.Errorf(tenders.ESTRUCTURE, "brief description has %d cells, want 1", len(cells))
	}
	return strings.TrimSpace(stripLineBreaks(cells[0].Text())), nil
}
