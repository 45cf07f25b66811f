package mock

import (
	"context"

	"github.com/fwojciec/tenders"
)

var _ tenders.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of tenders.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ tenders.URLPolicy = (*URLPolicy)(nil)

// URLPolicy is a mock implementation of tenders.URLPolicy.
type URLPolicy struct {
	AllowedFn func(ctx context.Context, rawURL string) (bool, error)
}

func (p *URLPolicy) Allowed(ctx context.Context, rawURL string) (bool, error) {
	return p.AllowedFn(ctx, rawURL)
}
