// Package slog provides logging decorators for tenders services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tenders"
)

// Ensure LoggingFetcher implements tenders.Fetcher.
var _ tenders.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Successful fetches log at
// info level; failures log at warn level with their error code.
type LoggingFetcher struct {
	next   tenders.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next tenders.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			f.logger.Warn("fetch failed",
				"url", url,
				"code", tenders.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingURLPolicy implements tenders.URLPolicy.
var _ tenders.URLPolicy = (*LoggingURLPolicy)(nil)

// LoggingURLPolicy wraps a URLPolicy and logs every URL it refuses.
type LoggingURLPolicy struct {
	next   tenders.URLPolicy
	logger *slog.Logger
}

// NewLoggingURLPolicy creates a new LoggingURLPolicy.
func NewLoggingURLPolicy(next tenders.URLPolicy, logger *slog.Logger) *LoggingURLPolicy {
	return &LoggingURLPolicy{next: next, logger: logger}
}

// Allowed delegates to the wrapped policy.
func (p *LoggingURLPolicy) Allowed(ctx context.Context, rawURL string) (bool, error) {
	ok, err := p.next.Allowed(ctx, rawURL)
	switch {
	case err != nil:
		p.logger.Warn("url policy", "url", rawURL, "err", err)
	case !ok:
		p.logger.Info("url disallowed", "url", rawURL)
	}
	return ok, err
}
