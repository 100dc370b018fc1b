// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/singleflight"

	"github.com/staranto/christmastree/internal/puzzle"
)

// SharedTimeout bounds a lookup shared by concurrent callers.
const SharedTimeout = time.Minute

// Store is the slice of cache.Store the Source needs.
type Store interface {
	Read(day puzzle.Day) (puzzle.Record, bool, error)
	Write(day puzzle.Day, rec puzzle.Record) error
}

// Fetcher is the slice of remote.Fetcher the Source needs.
type Fetcher interface {
	Fetch(ctx context.Context, day puzzle.Day) (puzzle.Record, error)
}

// Source hands out puzzle input, going to the network only for days the
// store has never seen. It is safe for concurrent use.
type Source struct {
	store   Store
	fetcher Fetcher
	group   singleflight.Group
}

// New returns a Source over store and fetcher.
func New(store Store, fetcher Fetcher) *Source {
	return &Source{store: store, fetcher: fetcher}
}

// Get returns the record for day. A cached record is returned as is. On a
// miss the record is fetched, written to the store, and only then returned;
// if either step fails nothing is returned. A corrupt cache entry is an
// error and never triggers a fetch.
//
// Concurrent callers for the same day share one lookup. The shared lookup
// runs detached from any single caller's cancellation, bounded by
// SharedTimeout, so each caller waits only as long as its own ctx allows and
// a cancelled caller never fails the others.
func (s *Source) Get(ctx context.Context, day puzzle.Day) (puzzle.Record, error) {
	if err := day.Check(); err != nil {
		return puzzle.Record{}, err
	}

	ch := s.group.DoChan(strconv.Itoa(int(day)), func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), SharedTimeout)
		defer cancel()
		return s.get(shared, day)
	})

	select {
	case <-ctx.Done():
		return puzzle.Record{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return puzzle.Record{}, res.Err
		}
		return res.Val.(puzzle.Record), nil //nolint:forcetypeassert
	}
}

func (s *Source) get(ctx context.Context, day puzzle.Day) (puzzle.Record, error) {
	rec, ok, err := s.store.Read(day)
	if err != nil {
		return puzzle.Record{}, err
	}
	if ok {
		return rec, nil
	}

	log.Debugf("cache miss for day %d", int(day))

	rec, err = s.fetcher.Fetch(ctx, day)
	if err != nil {
		return puzzle.Record{}, fmt.Errorf("failed to get input for day %d: %w", int(day), err)
	}

	if err := s.store.Write(day, rec); err != nil {
		return puzzle.Record{}, fmt.Errorf("failed to cache input for day %d: %w", int(day), err)
	}

	return rec, nil
}
