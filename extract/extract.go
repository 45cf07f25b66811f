// Package extract turns listing and detail page markup into tenders records.
// It only reads the markup trees it is given and performs no I/O.
package extract

import (
	"strings"

	"github.com/fwojciec/tenders"
)

// furtherAssignmentsMarker starts the boilerplate that ends every listing
// description.
const furtherAssignmentsMarker = "Show further assignments by"

// briefDescriptionHeading is the legend of the brief description container.
const briefDescriptionHeading = "Brief Description"

// Cached pages may hold the escaped sequences as well as the raw characters.
var lineBreaks = strings.NewReplacer("\r", "", "\n", "", `\r`, "", `\n`, "")

func stripLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

// first returns the first descendant matching sel.
// Returns ESTRUCTURE when there is none.
func first(n tenders.Node, sel tenders.Selector) (tenders.Node, error) {
	nodes := n.FindAll(sel)
	if len(nodes) == 0 {
		return nil, tenders.Errorf(tenders.ESTRUCTURE, "no %s element found", sel)
	}
	return nodes[0], nil
}

// text returns the trimmed text of a node.
func text(n tenders.Node) string {
	return strings.TrimSpace(n.Text())
}
