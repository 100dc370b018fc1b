// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/christmastree/internal/fault"
	"github.com/staranto/christmastree/internal/puzzle"
)

// DefaultUserAgent identifies the tool to the puzzle site.
const DefaultUserAgent = "christmastree (+https://github.com/staranto/christmastree)"

// ErrNoSession is returned when a fetch is attempted without a credential.
var ErrNoSession = errors.New("no session credential")

// Config is what a Fetcher needs to build a request. Session is resolved by
// the caller once per process and never logged.
type Config struct {
	BaseURL string
	Year    int
	Session string
}

// Fetcher downloads puzzle input. It never touches the cache.
type Fetcher struct {
	cfg       Config
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP client used for requests.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// New returns a Fetcher for cfg.
func New(cfg Config, opts ...Option) *Fetcher {
	f := &Fetcher{
		cfg:       cfg,
		client:    http.DefaultClient,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = http.DefaultClient
	}
	return f
}

// URL returns the input URL for day.
func (f *Fetcher) URL(day puzzle.Day) string {
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(f.cfg.BaseURL, "/"), f.cfg.Year, int(day))
}

// Fetch performs a single GET for day's input. There is no retry: a missing
// session, a transport failure or a non-2xx status all fail the call.
func (f *Fetcher) Fetch(ctx context.Context, day puzzle.Day) (puzzle.Record, error) {
	if f.cfg.Session == "" {
		return puzzle.Record{}, fault.Configuration("fetch", ErrNoSession)
	}

	url := f.URL(day)
	log.Infof("fetching input for day %d", int(day))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return puzzle.Record{}, fault.Configuration("fetch", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Cookie", "session="+f.cfg.Session)
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return puzzle.Record{}, fault.Network("fetch", fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return puzzle.Record{}, fault.Network("fetch", fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return puzzle.Record{}, fault.Network("fetch", &StatusError{
			URL:    url,
			Status: resp.StatusCode,
			Body:   summarize(doc.String()),
		})
	}

	log.Debugf("fetched %d bytes from %s", doc.Len(), url)
	return puzzle.Record{Day: day, Input: doc.String()}, nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("GET %s: %d %s", e.URL, e.Status, http.StatusText(e.Status))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// summarize trims an error body down to its first line.
func summarize(body string) string {
	body = strings.TrimSpace(body)
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[:i]
	}
	const limit = 120
	if len(body) > limit {
		body = body[:limit] + "..."
	}
	return body
}
