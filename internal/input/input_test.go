// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/christmastree/internal/cache"
	"github.com/staranto/christmastree/internal/config"
	"github.com/staranto/christmastree/internal/fault"
	"github.com/staranto/christmastree/internal/puzzle"
	"github.com/staranto/christmastree/internal/remote"
)

// countingStore wraps a real cache.Store and counts writes.
type countingStore struct {
	*cache.Store
	writes atomic.Int32
}

func (s *countingStore) Write(day puzzle.Day, rec puzzle.Record) error {
	s.writes.Add(1)
	return s.Store.Write(day, rec)
}

type fakeFetcher struct {
	calls atomic.Int32
	err   error
}

func (f *fakeFetcher) Fetch(_ context.Context, day puzzle.Day) (puzzle.Record, error) {
	f.calls.Add(1)
	if f.err != nil {
		return puzzle.Record{}, f.err
	}
	return puzzle.Record{Day: day, Input: fmt.Sprintf("input for day %d\nline two ✓\n", int(day))}, nil
}

type failingStore struct {
	readErr  error
	writeErr error
}

func (s failingStore) Read(puzzle.Day) (puzzle.Record, bool, error) {
	return puzzle.Record{}, false, s.readErr
}

func (s failingStore) Write(puzzle.Day, puzzle.Record) error {
	return s.writeErr
}

func TestGet_FetchesOnceThenServesFromCache(t *testing.T) {
	for day := puzzle.FirstDay; day <= puzzle.LastDay; day++ {
		store := &countingStore{Store: cache.New(t.TempDir())}
		fetcher := &fakeFetcher{}
		src := New(store, fetcher)

		first, err := src.Get(context.Background(), day)
		require.NoError(t, err)
		second, err := src.Get(context.Background(), day)
		require.NoError(t, err)

		assert.Equal(t, first, second, "day %d", day)
		assert.Equal(t, int32(1), fetcher.calls.Load(), "day %d", day)
		assert.Equal(t, int32(1), store.writes.Load(), "day %d", day)
	}
}

func TestGet_CacheHitNeverWrites(t *testing.T) {
	store := &countingStore{Store: cache.New(t.TempDir())}
	require.NoError(t, store.Store.Write(9, puzzle.Record{Day: 9, Input: "cached"}))

	fetcher := &fakeFetcher{}
	src := New(store, fetcher)

	rec, err := src.Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "cached", rec.Input)
	assert.Zero(t, fetcher.calls.Load())
	assert.Zero(t, store.writes.Load())
}

func TestGet_CorruptionDoesNotFetch(t *testing.T) {
	store := cache.New(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path(6), []byte("input: [broken\n"), 0o600))

	fetcher := &fakeFetcher{}
	src := New(store, fetcher)

	_, err := src.Get(context.Background(), 6)
	assert.ErrorIs(t, err, fault.ErrCorruption)
	assert.Zero(t, fetcher.calls.Load())
}

func TestGet_FetchFailureWritesNothing(t *testing.T) {
	store := &countingStore{Store: cache.New(t.TempDir())}
	fetcher := &fakeFetcher{err: fault.Network("fetch", errors.New("connection refused"))}
	src := New(store, fetcher)

	rec, err := src.Get(context.Background(), 2)
	assert.ErrorIs(t, err, fault.ErrNetwork)
	assert.Equal(t, puzzle.Record{}, rec)
	assert.Zero(t, store.writes.Load())
	assert.NoFileExists(t, store.Path(2))
}

func TestGet_WriteFailureReturnsNoData(t *testing.T) {
	fetcher := &fakeFetcher{}
	src := New(failingStore{writeErr: fault.Storage("cache write", errors.New("disk full"))}, fetcher)

	rec, err := src.Get(context.Background(), 4)
	assert.ErrorIs(t, err, fault.ErrStorage)
	assert.Equal(t, puzzle.Record{}, rec)
	assert.Equal(t, int32(1), fetcher.calls.Load())
}

func TestGet_RejectsOutOfRangeDay(t *testing.T) {
	fetcher := &fakeFetcher{}
	src := New(failingStore{readErr: errors.New("should not be read")}, fetcher)

	for _, day := range []puzzle.Day{0, 26} {
		_, err := src.Get(context.Background(), day)
		assert.ErrorIs(t, err, fault.ErrValidation)
	}
	assert.Zero(t, fetcher.calls.Load())
}

func TestGet_ConcurrentCallersShareOneFetch(t *testing.T) {
	store := &countingStore{Store: cache.New(t.TempDir())}
	fetcher := &fakeFetcher{}
	src := New(store, fetcher)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := src.Get(context.Background(), 11)
			assert.NoError(t, err)
			assert.Equal(t, puzzle.Day(11), rec.Day)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fetcher.calls.Load())
	assert.Equal(t, int32(1), store.writes.Load())
}

// gatedFetcher blocks inside Fetch until released, or until its ctx ends.
type gatedFetcher struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
	calls   atomic.Int32
}

func (f *gatedFetcher) Fetch(ctx context.Context, day puzzle.Day) (puzzle.Record, error) {
	f.calls.Add(1)
	f.once.Do(func() { close(f.started) })
	select {
	case <-f.release:
		return puzzle.Record{Day: day, Input: "shared\n"}, nil
	case <-ctx.Done():
		return puzzle.Record{}, ctx.Err()
	}
}

func TestGet_CancelledCallerDoesNotFailOthers(t *testing.T) {
	store := &countingStore{Store: cache.New(t.TempDir())}
	fetcher := &gatedFetcher{started: make(chan struct{}), release: make(chan struct{})}
	src := New(store, fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := src.Get(ctx, 8)
		first <- err
	}()
	<-fetcher.started

	type result struct {
		rec puzzle.Record
		err error
	}
	second := make(chan result, 1)
	go func() {
		rec, err := src.Get(context.Background(), 8)
		second <- result{rec, err}
	}()

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(fetcher.release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, "shared\n", got.rec.Input)

	assert.Equal(t, int32(1), fetcher.calls.Load())
	assert.Equal(t, int32(1), store.writes.Load())
}

func TestOpen_EndToEnd(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/2023/day/8/input", r.URL.Path)
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		_, _ = w.Write([]byte("RL\n\nAAA = (BBB, CCC)\n"))
	}))
	defer srv.Close()

	const env = "CHRISTMASTREE_TEST_SESSION"
	t.Setenv(env, "abc")
	dir := t.TempDir()

	settings := config.Settings{
		Year:       2023,
		BaseURL:    srv.URL,
		SessionEnv: env,
		EnvFile:    filepath.Join(dir, ".env"),
		CacheDir:   filepath.Join(dir, ".cache"),
	}

	src := Open(settings, remote.WithClient(srv.Client()))
	for i := 0; i < 3; i++ {
		rec, err := src.Get(context.Background(), 8)
		require.NoError(t, err)
		assert.Equal(t, "RL\n\nAAA = (BBB, CCC)\n", rec.Input)
	}
	assert.Equal(t, int32(1), hits.Load())
	assert.FileExists(t, filepath.Join(dir, ".cache", "day8.yaml"))

	// A fresh process sees the cached file and never calls out.
	again := Open(settings, remote.WithClient(srv.Client()))
	_, err := again.Get(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestOpen_MissingSessionFailsBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	const env = "CHRISTMASTREE_TEST_SESSION"
	t.Setenv(env, "")
	dir := t.TempDir()

	settings := config.Settings{
		Year:       2023,
		BaseURL:    srv.URL,
		SessionEnv: env,
		EnvFile:    filepath.Join(dir, ".env"),
		CacheDir:   filepath.Join(dir, ".cache"),
	}
	src := Open(settings, remote.WithClient(srv.Client()))

	_, err := src.Get(context.Background(), 5)
	assert.ErrorIs(t, err, fault.ErrConfiguration)
	assert.Contains(t, err.Error(), env)
	assert.Zero(t, hits.Load())
	assert.NoDirExists(t, filepath.Join(dir, ".cache"))

	// Cached days are still served without a session.
	require.NoError(t, cache.New(settings.CacheDir).Write(5, puzzle.Record{Day: 5, Input: "seeds: 79 14"}))
	rec, err := src.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "seeds: 79 14", rec.Input)
}
