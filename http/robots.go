package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/fwojciec/tenders"
	"github.com/temoto/robotstxt"
)

// Ensure Robots implements tenders.URLPolicy at compile time.
var _ tenders.URLPolicy = (*Robots)(nil)

// Robots is a tenders.URLPolicy backed by each host's robots.txt.
// The file is fetched once per scheme and host and kept for the lifetime of
// the policy. Missing files allow everything; server errors disallow
// everything until a new policy is created.
type Robots struct {
	client    *http.Client
	userAgent string

	mu     sync.Mutex
	groups map[string]*robotstxt.Group
}

// NewRobots returns a policy that reads robots.txt with the fetcher's
// client and user agent, so the rules matched are those for the agent that
// actually fetches.
func NewRobots(f *Fetcher) *Robots {
	return &Robots{
		client:    f.client,
		userAgent: f.userAgent,
		groups:    make(map[string]*robotstxt.Group),
	}
}

// Allowed reports whether rawURL may be fetched under the host's robots.txt.
func (r *Robots) Allowed(ctx context.Context, rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false, tenders.Errorf(tenders.EINVALID, "invalid URL %q", rawURL)
	}

	group, err := r.group(ctx, u)
	if err != nil {
		return false, err
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return group.Test(path), nil
}

func (r *Robots) group(ctx context.Context, u *url.URL) (*robotstxt.Group, error) {
	origin := u.Scheme + "://" + u.Host

	r.mu.Lock()
	group, ok := r.groups[origin]
	r.mu.Unlock()
	if ok {
		return group, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return nil, err
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt for %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt for %s: %w", u.Host, err)
	}
	group = data.FindGroup(r.userAgent)

	r.mu.Lock()
	r.groups[origin] = group
	r.mu.Unlock()

	return group, nil
}
