package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/tenders"
)

// Selectors of the listing page.
var (
	listSelector      = tenders.Selector{Tag: "ul", Class: "stream"}
	entrySelector     = tenders.Selector{Tag: "li"}
	itemSelector      = tenders.Selector{Tag: "div", Class: "item"}
	itemLeftSelector  = tenders.Selector{Tag: "div", Class: "item-left"}
	itemRightSelector = tenders.Selector{Tag: "div", Class: "item-right"}
	columnSelector    = tenders.Selector{Tag: "div", Class: "col-6"}
	actionsSelector   = tenders.Selector{Tag: "span", Class: "info-actions"}
	mutedSelector     = tenders.Selector{Tag: "div", Class: "text-muted"}
	monthSelector     = tenders.Selector{Tag: "div", Class: "month"}
	daySelector       = tenders.Selector{Tag: "div", Class: "date"}
	anchorSelector    = tenders.Selector{Tag: "a"}
	divSelector       = tenders.Selector{Tag: "div"}
	strongSelector    = tenders.Selector{Tag: "strong"}
)

// SkipFunc is called for every listing entry that failed extraction.
// The position is the entry's zero-based index on the listing page.
type SkipFunc func(position int, err error)

// Index extracts all listing entries from the index page.
// A missing or duplicated listing container fails the whole page. Entries
// that fail extraction are reported to skip, if provided, and left out.
func Index(doc tenders.Node, skip SkipFunc) ([]*tenders.ListingEntry, error) {
	list, err := doc.FindUnique(listSelector)
	if err != nil {
		return nil, fmt.Errorf("listing: %w", err)
	}

	items := list.FindAll(entrySelector)
	entries := make([]*tenders.ListingEntry, 0, len(items))
	for i, li := range items {
		entry, err := Entry(li)
		if err != nil {
			if skip != nil {
				skip(i, err)
			}
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Entry extracts one listing entry from its list item.
// Every required field must be present; optional columns default to "".
func Entry(li tenders.Node) (*tenders.ListingEntry, error) {
	item, err := li.FindUnique(itemSelector)
	if err != nil {
		return nil, err
	}
	left, err := item.FindUnique(itemLeftSelector)
	if err != nil {
		return nil, err
	}

	columns, err := Columns(left)
	if err != nil {
		return nil, err
	}

	id, err := ItemID(left)
	if err != nil {
		return nil, err
	}

	title, err := Title(left)
	if err != nil {
		return nil, fmt.Errorf("item %d: title: %w", id, err)
	}

	description, err := Description(left)
	if err != nil {
		return nil, fmt.Errorf("item %d: description: %w", id, err)
	}

	published, err := PublicationDate(item)
	if err != nil {
		return nil, fmt.Errorf("item %d: publication date: %w", id, err)
	}

	return tenders.NewListingEntry(id, title, description, published, columns), nil
}

// Columns reads the labeled column blocks of an entry. The first inner
// block holds the label, the last one the value.
// Returns EUNKNOWNLABEL for a label outside tenders.IndexColumns.
func Columns(left tenders.Node) (map[tenders.Key]string, error) {
	columns := make(map[tenders.Key]string)
	for _, col := range left.FindAll(columnSelector) {
		divs := col.FindAll(divSelector)
		if len(divs) == 0 {
			return nil, tenders.Errorf(tenders.ESTRUCTURE, "column without %s blocks", divSelector)
		}
		key, err := tenders.IndexColumns.Resolve(text(divs[0]))
		if err != nil {
			return nil, err
		}
		columns[key] = strings.TrimSpace(stripLineBreaks(divs[len(divs)-1].Text()))
	}
	return columns, nil
}

// ItemID parses the identifier from the last path segment of the entry's
// action link, e.g. ".../publications/12345/".
// Returns EBADID unless the segment is a positive integer.
func ItemID(left tenders.Node) (int, error) {
	actions, err := left.FindUnique(actionsSelector)
	if err != nil {
		return 0, err
	}
	a, err := first(actions, anchorSelector)
	if err != nil {
		return 0, err
	}
	href, ok := a.Attr("href")
	if !ok {
		return 0, tenders.Errorf(tenders.ESTRUCTURE, "item link has no href")
	}

	path := strings.TrimRight(strings.TrimSpace(href), "/")
	segment := strings.TrimSpace(path[strings.LastIndex(path, "/")+1:])
	id, err := strconv.Atoi(segment)
	if err != nil || id <= 0 {
		return 0, tenders.Errorf(tenders.EBADID, "item identifier %q in link %q is not a positive integer", segment, href)
	}
	return id, nil
}

// Title returns the first bold text of the entry's first block.
func Title(left tenders.Node) (string, error) {
	div, err := first(left, divSelector)
	if err != nil {
		return "", err
	}
	strong, err := first(div, strongSelector)
	if err != nil {
		return "", err
	}
	return text(strong), nil
}

// Description returns the muted text of the entry without line breaks and
// without the trailing "further assignments" boilerplate.
func Description(left tenders.Node) (string, error) {
	div, err := left.FindUnique(mutedSelector)
	if err != nil {
		return "", err
	}
	s := stripLineBreaks(div.Text())
	if i := strings.Index(s, furtherAssignmentsMarker); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s), nil
}

// PublicationDate reads the date badge of an entry: a month block such as
// "March 2023" and a day block such as "15".
// Returns EUNKNOWNMONTH if the month name is not an English month.
func PublicationDate(item tenders.Node) (tenders.Date, error) {
	right, err := item.FindUnique(itemRightSelector)
	if err != nil {
		return tenders.Date{}, err
	}
	monthDiv, err := right.FindUnique(monthSelector)
	if err != nil {
		return tenders.Date{}, err
	}
	dayDiv, err := right.FindUnique(daySelector)
	if err != nil {
		return tenders.Date{}, err
	}

	parts := strings.Fields(monthDiv.Text())
	if len(parts) == 0 {
		return tenders.Date{}, tenders.Errorf(tenders.ESTRUCTURE, "empty %s block", monthSelector)
	}
	month, err := tenders.ParseMonth(parts[0])
	if err != nil {
		return tenders.Date{}, err
	}
	year, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return tenders.Date{}, tenders.Errorf(tenders.EINVALID, "invalid year in %q", monthDiv.Text())
	}
	dayText := text(dayDiv)
	day, err := strconv.Atoi(dayText)
	if err != nil {
		return tenders.Date{}, tenders.Errorf(tenders.EINVALID, "invalid day %q", dayText)
	}

	return tenders.Date{Day: day, Month: month, Year: year, DayText: dayText}, nil
}
