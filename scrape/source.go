package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/tenders"
)

// DefaultBaseURL is the publications listing of the tender portal.
const DefaultBaseURL = "https://www.meinauftrag.rib.de/public/publications"

// Cache names of fetched pages, relative to the cache root.
const (
	IndexPageName = "index_page_fully_scrolled.html"
	detailPageDir = "detailed_pages"
)

// DetailPageName returns the cache name of an item's detail page.
func DetailPageName(itemID int) string {
	return detailPageDir + "/" + strconv.Itoa(itemID) + ".html"
}

var _ tenders.PageSource = (*Source)(nil)

// Source supplies listing and detail pages, reading through a page cache
// and fetching what the cache does not hold.
type Source struct {
	// BaseURL is the listing URL; detail pages live at BaseURL/<id>/.
	BaseURL string

	// IndexFetcher loads the listing. Usually a browser that scrolls the
	// infinite listing to the end.
	IndexFetcher tenders.Fetcher

	// DetailFetcher loads detail pages.
	DetailFetcher tenders.Fetcher

	// Cache is optional. ReadCache and WriteCache control its use.
	Cache      tenders.PageCache
	ReadCache  bool
	WriteCache bool

	// Policy vetoes fetches, typically from robots.txt. Optional.
	// Cached pages are served regardless.
	Policy tenders.URLPolicy

	// RateLimiter throttles detail fetches. Optional.
	RateLimiter tenders.DomainLimiter

	// RetryDelays are the waits between fetch attempts. Empty means no retry.
	RetryDelays []time.Duration

	// Logf receives retry messages. Optional.
	Logf LogFunc
}

// IndexPage returns the listing page.
func (s *Source) IndexPage(ctx context.Context) (string, error) {
	return s.page(ctx, IndexPageName, s.BaseURL, s.IndexFetcher, false)
}

// DetailPage returns the detail page of an item.
func (s *Source) DetailPage(ctx context.Context, itemID int) (string, error) {
	if itemID <= 0 {
		return "", tenders.Errorf(tenders.EBADID, "item ID must be a positive integer, got %d", itemID)
	}
	return s.page(ctx, DetailPageName(itemID), s.DetailURL(itemID), s.DetailFetcher, true)
}

// DetailURL returns the URL of an item's detail page.
func (s *Source) DetailURL(itemID int) string {
	return fmt.Sprintf("%s/%d/", strings.TrimRight(s.BaseURL, "/"), itemID)
}

func (s *Source) page(ctx context.Context, name, rawURL string, fetcher tenders.Fetcher, throttle bool) (string, error) {
	if s.Cache != nil && s.ReadCache {
		html, ok, err := s.Cache.Get(name)
		if err != nil {
			return "", fmt.Errorf("read cache %s: %w", name, err)
		}
		if ok {
			return html, nil
		}
	}

	if fetcher == nil {
		return "", tenders.Errorf(tenders.ENOTFOUND, "page %s is not cached and no fetcher is configured", name)
	}

	if s.Policy != nil {
		ok, err := s.Policy.Allowed(ctx, rawURL)
		if err != nil {
			return "", fmt.Errorf("check policy for %s: %w", rawURL, err)
		}
		if !ok {
			return "", tenders.Errorf(tenders.EFORBIDDEN, "fetching %s is disallowed", rawURL)
		}
	}

	if throttle && s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, hostOf(rawURL)); err != nil {
			return "", err
		}
	}

	html, err := FetchWithRetry(ctx, rawURL, fetcher.Fetch, s.Logf, s.RetryDelays)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	if s.Cache != nil && s.WriteCache {
		if err := s.Cache.Put(name, html); err != nil {
			return "", fmt.Errorf("write cache %s: %w", name, err)
		}
	}
	return html, nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
