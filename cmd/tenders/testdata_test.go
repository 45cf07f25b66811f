package main_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func indexEntry(id int, title string) string {
	return fmt.Sprintf(`<li><div class="item">
  <div class="item-left">
    <div><strong>%s</strong></div>
    <div class="text-muted">About %s. Show further assignments by Acme Corp</div>
    <div class="col-6"><div>Expiration time</div><div>30.04.2023</div></div>
    <span class="info-actions"><a href="/public/publications/%d/">Details</a></span>
  </div>
  <div class="item-right"><div class="month">March 2023</div><div class="date">15</div></div>
</div></li>`, title, title, id)
}

func detailPage(authority string) string {
	return `<html><body><div class="tender-details">
<div class="col-md-6"><fieldset><legend>Contracting Authority</legend><table>
<tr><td>Name</td><td>` + authority + `</td></tr>
</table></fieldset></div>
<div class="col-md-12"><fieldset><legend>Brief Description</legend><table><tr><td>Works.</td></tr></table></fieldset></div>
</div></body></html>`
}

const indexPage = `<html><body><ul class="stream">%s%s%s</ul></body></html>`

// writePages writes a page cache with three items: two with details and
// one without.
func writePages(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "detailed_pages"), 0755))

	index := fmt.Sprintf(indexPage, indexEntry(12345, "Road Resurfacing Contract"), indexEntry(2, "Bridge"), indexEntry(3, "Tunnel"))
	files := map[string]string{
		"index_page_fully_scrolled.html": index,
		"detailed_pages/12345.html":      detailPage("Acme Corp"),
		"detailed_pages/2.html":          `<html><body><p>No details.</p></body></html>`,
		"detailed_pages/3.html":          detailPage("Tunnel Corp"),
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), []byte(content), 0644))
	}
	return dir
}
