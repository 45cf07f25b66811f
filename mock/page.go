package mock

import (
	"context"

	"github.com/fwojciec/tenders"
)

// Compile-time interface verification.
var (
	_ tenders.PageSource    = (*PageSource)(nil)
	_ tenders.PageCache     = (*PageCache)(nil)
	_ tenders.Parser        = (*Parser)(nil)
	_ tenders.DomainLimiter = (*DomainLimiter)(nil)
)

// PageSource is a mock implementation of tenders.PageSource.
type PageSource struct {
	IndexPageFn  func(ctx context.Context) (string, error)
	DetailPageFn func(ctx context.Context, itemID int) (string, error)
}

func (s *PageSource) IndexPage(ctx context.Context) (string, error) {
	return s.IndexPageFn(ctx)
}

func (s *PageSource) DetailPage(ctx context.Context, itemID int) (string, error) {
	return s.DetailPageFn(ctx, itemID)
}

// PageCache is a mock implementation of tenders.PageCache.
type PageCache struct {
	GetFn func(name string) (string, bool, error)
	PutFn func(name string, html string) error
}

func (c *PageCache) Get(name string) (string, bool, error) {
	return c.GetFn(name)
}

func (c *PageCache) Put(name string, html string) error {
	return c.PutFn(name, html)
}

// Parser is a mock implementation of tenders.Parser.
type Parser struct {
	ParseFn func(html string) (tenders.Node, error)
}

func (p *Parser) Parse(html string) (tenders.Node, error) {
	return p.ParseFn(html)
}

// DomainLimiter is a mock implementation of tenders.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
