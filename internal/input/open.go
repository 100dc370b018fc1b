// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"context"

	"github.com/apex/log"

	"github.com/staranto/christmastree/internal/cache"
	"github.com/staranto/christmastree/internal/config"
	"github.com/staranto/christmastree/internal/puzzle"
	"github.com/staranto/christmastree/internal/remote"
)

// Open wires a Source from resolved settings: the cache at
// settings.CacheDir and a fetcher for settings.BaseURL. The session is
// resolved here, once. If it cannot be resolved the Source still serves
// cached days and reports the configuration error on the first miss.
func Open(settings config.Settings, opts ...remote.Option) *Source {
	store := cache.New(settings.CacheDir)

	session, err := settings.Session()
	if err != nil {
		log.Debugf("session unavailable: %v", err)
		return New(store, unconfigured{err: err})
	}

	return New(store, remote.New(remote.Config{
		BaseURL: settings.BaseURL,
		Year:    settings.Year,
		Session: session,
	}, opts...))
}

// unconfigured stands in for a fetcher whose credential is missing.
type unconfigured struct {
	err error
}

func (u unconfigured) Fetch(context.Context, puzzle.Day) (puzzle.Record, error) {
	return puzzle.Record{}, u.err
}
