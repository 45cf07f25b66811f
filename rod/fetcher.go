// Package rod provides a browser-based tenders.Fetcher built on go-rod.
// It renders the infinite-scroll listing by scrolling until the page stops
// growing.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/tenders"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a whole fetch including all scrolling.
const DefaultFetchTimeout = 10 * time.Minute

// DefaultScrollPause is the wait after each scroll for new entries to load.
const DefaultScrollPause = 3 * time.Second

// Ensure Fetcher implements tenders.Fetcher at compile time.
var _ tenders.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using headless Chrome.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher

	timeout     time.Duration
	scrollPause time.Duration
	maxScrolls  int

	closeOnce sync.Once
	closed    atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout of one fetch, scrolling included.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithScrollPause sets the wait between scrolls. A zero pause disables
// scrolling, so the page is returned as soon as it has loaded.
func WithScrollPause(d time.Duration) Option {
	return func(f *Fetcher) {
		f.scrollPause = d
	}
}

// WithMaxScrolls caps the number of scrolls. Zero means no cap.
func WithMaxScrolls(n int) Option {
	return func(f *Fetcher) {
		f.maxScrolls = n
	}
}

// NewFetcher launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		scrollPause: DefaultScrollPause,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to url, scrolls until the page stops growing and returns
// the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", tenders.Errorf(tenders.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", wrapContextErr(ctx, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", wrapContextErr(ctx, err)
	}

	if f.scrollPause > 0 {
		if err := ScrollUntilStable(ctx, &pageScroller{page: page}, f.scrollPause, f.maxScrolls); err != nil {
			return "", wrapContextErr(ctx, err)
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", wrapContextErr(ctx, err)
	}
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	var err error
	f.closeOnce.Do(func() {
		f.closed.Store(true)
		err = f.browser.Close()
		f.launcher.Kill()
	})
	return err
}

// wrapContextErr reports the context error when rod fails because the
// context ended.
func wrapContextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}

// pageScroller scrolls a rod page.
type pageScroller struct {
	page *rod.Page
}

func (s *pageScroller) ScrollHeight() (int, error) {
	res, err := s.page.Eval(`() => document.body.scrollHeight`)
	if err != nil {
		return 0, err
	}
	return res.Value.Int(), nil
}

func (s *pageScroller) ScrollToBottom() error {
	_, err := s.page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	return err
}
