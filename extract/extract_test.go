package extract_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/tenders"
	"github.com/fwojciec/tenders/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) tenders.Node {
	t.Helper()
	doc, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return doc
}

// column renders one labeled column block of a listing entry.
func column(label, value string) string {
	return fmt.Sprintf(`<div class="col-6"><div>%s</div><div>%s</div></div>`, label, value)
}

// listItem renders one listing entry.
func listItem(href, title, description, month, day string, columns ...string) string {
	return fmt.Sprintf(`<li>
  <div class="item">
    <div class="item-left">
      <div><strong>%s</strong> <span>Public tender</span></div>
      <div class="text-muted">%s</div>
      <div class="row">%s</div>
      <span class="info-actions"><a href="%s">Details</a> <a href="#share">Share</a></span>
    </div>
    <div class="item-right"><div class="month">%s</div><div class="date">%s</div></div>
  </div>
</li>`, title, description, strings.Join(columns, ""), href, month, day)
}

func listing(items ...string) string {
	return `<html><body><ul class="stream">` + strings.Join(items, "\n") + `</ul></body></html>`
}

// row renders a table row with the given cells.
func row(cells ...string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, c := range cells {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

// section renders a labeled detail section.
func section(heading string, rows ...string) string {
	return `<div class="col-md-6"><fieldset><legend>` + heading + `</legend><table>` +
		strings.Join(rows, "") + `</table></fieldset></div>`
}

// brief renders the brief description container.
func brief(heading string, cells ...string) string {
	return `<div class="col-md-12"><fieldset><legend>` + heading + `</legend><table>` +
		row(cells...) + `</table></fieldset></div>`
}

func detailPage(parts ...string) string {
	return `<html><body><div class="tender-details"><div class="row">` +
		strings.Join(parts, "\n") + `</div></div></body></html>`
}
