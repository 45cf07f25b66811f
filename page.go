package tenders

import "context"

// PageSource supplies the listing page and the detail page of each item.
// Implementations hide caching, throttling and retries.
type PageSource interface {
	// IndexPage returns the fully loaded listing page.
	IndexPage(ctx context.Context) (string, error)

	// DetailPage returns the detail page for an item.
	DetailPage(ctx context.Context, itemID int) (string, error)
}

// PageCache keeps fetched pages on disk keyed by a relative name.
type PageCache interface {
	// Get returns the cached page. The boolean is false on a cache miss.
	Get(name string) (html string, ok bool, err error)

	// Put stores a page, replacing any previous version atomically.
	Put(name string, html string) error
}
