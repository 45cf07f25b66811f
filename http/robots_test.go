package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/tenders"
	tendershttp "github.com/fwojciec/tenders/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func robotsServer(t *testing.T, status int, body string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		if hits != nil {
			hits.Add(1)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRobots_Allowed(t *testing.T) {
	t.Parallel()

	t.Run("applies disallow rules for all agents", func(t *testing.T) {
		t.Parallel()

		server := robotsServer(t, http.StatusOK, "User-agent: *\nDisallow: /private/\n", nil)
		robots := tendershttp.NewRobots(tendershttp.NewFetcher())

		ok, err := robots.Allowed(context.Background(), server.URL+"/public/publications/12345/")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = robots.Allowed(context.Background(), server.URL+"/private/report")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("matches the group of the configured user agent", func(t *testing.T) {
		t.Parallel()

		body := "User-agent: tenders\nDisallow: /\n\nUser-agent: *\nAllow: /\n"
		server := robotsServer(t, http.StatusOK, body, nil)

		own := tendershttp.NewRobots(tendershttp.NewFetcher())
		ok, err := own.Allowed(context.Background(), server.URL+"/public/publications")
		require.NoError(t, err)
		assert.False(t, ok)

		other := tendershttp.NewRobots(tendershttp.NewFetcher(tendershttp.WithUserAgent("otherbot/2.0")))
		ok, err = other.Allowed(context.Background(), server.URL+"/public/publications")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("allows everything when robots.txt is missing", func(t *testing.T) {
		t.Parallel()

		server := robotsServer(t, http.StatusNotFound, "", nil)
		robots := tendershttp.NewRobots(tendershttp.NewFetcher())

		ok, err := robots.Allowed(context.Background(), server.URL+"/anything")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("disallows everything on server error", func(t *testing.T) {
		t.Parallel()

		server := robotsServer(t, http.StatusServiceUnavailable, "", nil)
		robots := tendershttp.NewRobots(tendershttp.NewFetcher())

		ok, err := robots.Allowed(context.Background(), server.URL+"/anything")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("fetches robots.txt once per host", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := robotsServer(t, http.StatusOK, "User-agent: *\nDisallow:\n", &hits)
		robots := tendershttp.NewRobots(tendershttp.NewFetcher())

		for _, path := range []string{"/a", "/b", "", "/c/d"} {
			ok, err := robots.Allowed(context.Background(), server.URL+path)
			require.NoError(t, err)
			assert.True(t, ok)
		}
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("rejects URLs without a host", func(t *testing.T) {
		t.Parallel()

		robots := tendershttp.NewRobots(tendershttp.NewFetcher())

		_, err := robots.Allowed(context.Background(), "not a url")
		assert.Equal(t, tenders.EINVALID, tenders.ErrorCode(err))
	})

	t.Run("returns error when the host is unreachable", func(t *testing.T) {
		t.Parallel()

		server := robotsServer(t, http.StatusOK, "", nil)
		addr := server.URL
		server.Close()

		robots := tendershttp.NewRobots(tendershttp.NewFetcher())
		_, err := robots.Allowed(context.Background(), addr+"/x")
		assert.Error(t, err)
	})
}
