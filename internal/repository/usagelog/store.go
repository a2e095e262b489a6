// Package usagelog keeps the request usage log as a tab separated file.
package usagelog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/onep_client/internal/domain"
)

const DefaultPath = "/var/log/onep_usage.tsv"

type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}

	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) RecordUsage(_ context.Context, entries ...*domain.UsageEntry) (err error) {
	if len(entries) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open usage log: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat usage log: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	enc := csvutil.NewEncoder(w)
	enc.AutoHeader = info.Size() == 0

	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode usage entry: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write usage log: %w", err)
	}

	return nil
}

// Entries returns entries requested at or after since. A missing log has
// no entries.
func (s *Store) Entries(_ context.Context, since time.Time) ([]*domain.UsageEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readEntries(since)
}

// DeleteBefore rewrites the log without entries older than before and
// returns how many were dropped. The log is removed once nothing is left.
func (s *Store) DeleteBefore(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries(time.Time{})
	if err != nil {
		return 0, err
	}

	kept := slices.DeleteFunc(slices.Clone(entries), func(e *domain.UsageEntry) bool {
		return e.RequestedAt.Before(before)
	})

	deleted := int64(len(entries) - len(kept))
	if deleted == 0 {
		return 0, nil
	}

	if len(kept) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("failed to remove usage log: %w", err)
		}
		return deleted, nil
	}

	if err := s.rewrite(kept); err != nil {
		return 0, err
	}

	return deleted, nil
}

func (s *Store) readEntries(since time.Time) (_ []*domain.UsageEntry, err error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open usage log: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	r := csv.NewReader(f)
	r.Comma = '\t'

	dec, err := csvutil.NewDecoder(r)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	var entries []*domain.UsageEntry
	for {
		var e domain.UsageEntry

		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode usage entry #%d: %w", len(entries)+1, err)
		}

		if e.RequestedAt.Before(since) {
			continue
		}

		entries = append(entries, &e)
	}

	return entries, nil
}

// rewrite replaces the log atomically through a temp file in the same directory.
func (s *Store) rewrite(entries []*domain.UsageEntry) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".usage-*.tsv")
	if err != nil {
		return fmt.Errorf("failed to create temp usage log: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	w.Comma = '\t'

	enc := csvutil.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to encode usage entry: %w", err)
		}
	}

	w.Flush()
	if err := errors.Join(w.Error(), tmp.Close()); err != nil {
		return fmt.Errorf("failed to write temp usage log: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace usage log: %w", err)
	}

	return nil
}
