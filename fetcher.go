package tenders

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations range from plain HTTP requests to a browser that scrolls
// an infinite listing until it stops growing.
type Fetcher interface {
	// Fetch returns the HTML of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// URLPolicy decides whether a URL may be fetched at all.
type URLPolicy interface {
	// Allowed reports whether rawURL may be fetched.
	Allowed(ctx context.Context, rawURL string) (bool, error)
}
