package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tenders"
)

// Ensure LoggingPageSource implements tenders.PageSource.
var _ tenders.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with debug logging.
type LoggingPageSource struct {
	next   tenders.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next tenders.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// IndexPage delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) IndexPage(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("index page",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.IndexPage(ctx)
}

// DetailPage delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) DetailPage(ctx context.Context, itemID int) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("detail page",
			"item", itemID,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DetailPage(ctx, itemID)
}
