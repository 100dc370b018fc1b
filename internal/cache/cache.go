// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/staranto/christmastree/internal/fault"
	"github.com/staranto/christmastree/internal/puzzle"
)

// Ext is the extension of every cache file.
const Ext = ".yaml"

// entry is the on-disk schema. Input is a pointer so a file without the key
// can be told apart from one holding an empty input.
type entry struct {
	Input *string `yaml:"input"`
}

// Entry describes a cached day on disk.
type Entry struct {
	Day     puzzle.Day
	Path    string
	Size    int64
	ModTime time.Time
}

// Store persists one record per day under a single root directory. It is
// the only writer of that directory.
type Store struct {
	root string
}

// New returns a Store rooted at root. Nothing is created until the first
// Write.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the cache root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the file path for day's entry, whether or not it exists.
func (s *Store) Path(day puzzle.Day) string {
	return filepath.Join(s.root, day.Name()+Ext)
}

// Read returns the cached record for day. A missing file is a miss, not an
// error. A file that exists but cannot be read or decoded is corruption.
func (s *Store) Read(day puzzle.Day) (puzzle.Record, bool, error) {
	p := s.Path(day)

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return puzzle.Record{}, false, nil
		}
		return puzzle.Record{}, false, fault.Corruption("cache read", fmt.Errorf("%s: %w", p, err))
	}

	input, err := decode(b)
	if err != nil {
		return puzzle.Record{}, false, fault.Corruption("cache read", fmt.Errorf("%s: %w", p, err))
	}

	log.Debugf("cache hit: %s", p)
	return puzzle.Record{Day: day, Input: input}, true, nil
}

// Write stores rec under day, replacing anything already there. The file is
// written beside its final name and renamed into place, so another process
// never sees a half-written entry. When two processes race on the same day
// the last rename wins; the content is identical either way.
func (s *Store) Write(day puzzle.Day, rec puzzle.Record) error {
	data, err := encode(rec.Input)
	if err != nil {
		return fault.Storage("cache write", err)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil { //nolint:mnd
		return fault.Storage("cache write", fmt.Errorf("failed to create cache directory: %w", err))
	}

	p := s.Path(day)
	tmp, err := os.CreateTemp(s.root, "."+day.Name()+"-*")
	if err != nil {
		return fault.Storage("cache write", fmt.Errorf("failed to write to cache: %w", err))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fault.Storage("cache write", fmt.Errorf("failed to write to cache: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fault.Storage("cache write", fmt.Errorf("failed to write to cache: %w", err))
	}
	if err := os.Rename(tmpPath, p); err != nil {
		_ = os.Remove(tmpPath)
		return fault.Storage("cache write", fmt.Errorf("failed to write to cache: %w", err))
	}

	log.Debugf("cached %s of input at %s", humanize.Bytes(uint64(len(data))), p)
	return nil
}

// List returns the cached days in day order. A missing root is an empty
// cache.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fault.Storage("cache list", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		day, ok := parseName(de.Name())
		if !ok || de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Day:     day,
			Path:    filepath.Join(s.root, de.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Day < entries[j].Day })
	return entries, nil
}

// parseName maps "day7.yaml" back to day 7. Only the exact name Path would
// produce for a valid day is accepted, so day0, day07 and day99 are skipped.
func parseName(name string) (puzzle.Day, bool) {
	if !strings.HasPrefix(name, "day") || !strings.HasSuffix(name, Ext) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "day"), Ext))
	if err != nil {
		return 0, false
	}
	d := puzzle.Day(n)
	if !d.Valid() || d.Name()+Ext != name {
		return 0, false
	}
	return d, true
}

func encode(input string) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2) //nolint:mnd
	if err := enc.Encode(entry{Input: &input}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(b []byte) (string, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var e entry
	if err := dec.Decode(&e); err != nil {
		if errors.Is(err, io.EOF) {
			return "", errors.New("empty cache file")
		}
		return "", err
	}
	if e.Input == nil {
		return "", errors.New("cache file has no input")
	}
	return *e.Input, nil
}
