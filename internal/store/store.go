// Package store accumulates validated records and persists them as a single
// indented JSON array, deduplicated by url_source. The store is the only
// process-wide mutable state in the pipeline; all mutations go through one
// mutex so concurrent record arrivals cannot lose updates.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"copenhagen-vendor-scraper/internal/types"
)

// SecondarySink receives a copy of every accepted record, upserting by
// url_source. Sink failures never block or roll back the primary file write.
type SecondarySink interface {
	Upsert(rec types.Record) error
	Close() error
}

type entry struct {
	url  string
	data json.RawMessage
}

// Store is the durable collection of accepted records for a run. Construct it
// at process start, Load prior state, Add during the run, Flush exactly once
// at shutdown.
type Store struct {
	mu     sync.Mutex
	path   string
	logger types.Logger
	items  []entry
	sink   SecondarySink
}

// New creates a store backed by the JSON file at path.
func New(path string, logger types.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// SetSecondary attaches an optional secondary sink. Absence of a sink means
// primary file store only.
func (s *Store) SetSecondary(sink SecondarySink) {
	s.sink = sink
}

// Load merges records persisted by prior runs into the working set. A missing
// file starts empty; malformed prior state is discarded with a warning rather
// than failing the run.
func (s *Store) Load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf("Could not read existing store %s: %v. Starting fresh.", s.path, err)
		}
		return
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warnf("Could not parse existing store %s: %v. Starting fresh.", s.path, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range raw {
		s.items = append(s.items, entry{url: probeURL(msg), data: msg})
	}
	s.logger.Infof("Loaded %d existing vendors from %s", len(raw), s.path)
}

// Add appends a validated record to the working set and mirrors it to the
// secondary sink when one is configured.
func (s *Store) Add(rec types.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	base := rec.Common()
	s.mu.Lock()
	s.items = append(s.items, entry{url: base.URLSource, data: data})
	s.mu.Unlock()
	s.logger.Infof("Collected %s vendor: %s", base.VendorType, base.Name)

	if s.sink != nil {
		if err := s.sink.Upsert(rec); err != nil {
			s.logger.Errorf("Secondary sink write failed for %s: %v", base.URLSource, err)
		}
	}
	return nil
}

// Len returns the current working-set size, before dedup.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Flush deduplicates the working set by url_source (last write wins, records
// without a url_source are all retained) and atomically rewrites the backing
// file. A flush failure loses the run's collected work and is the only error
// this package surfaces to the operator.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unique := dedupe(s.items)

	payload := make([]json.RawMessage, 0, len(unique))
	for _, item := range unique {
		payload = append(payload, item.data)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store contents: %w", err)
	}

	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("failed to write store %s: %w", s.path, err)
	}
	s.logger.Infof("Successfully wrote %d vendors to %s", len(unique), s.path)
	return nil
}

// Close shuts down the secondary sink, if any.
func (s *Store) Close() {
	if s.sink != nil {
		if err := s.sink.Close(); err != nil {
			s.logger.Errorf("Failed to close secondary sink: %v", err)
		}
	}
}

// dedupe keeps the last write per url_source at the position the URL was
// first seen, so repeated runs produce stable ordering. Entries without a
// url_source are retained as-is.
func dedupe(items []entry) []entry {
	index := make(map[string]int)
	var unique []entry
	for _, item := range items {
		if item.url == "" {
			unique = append(unique, item)
			continue
		}
		if at, seen := index[item.url]; seen {
			unique[at] = item
			continue
		}
		index[item.url] = len(unique)
		unique = append(unique, item)
	}
	return unique
}

// writeAtomic writes data to a temp file in the target directory and renames
// it into place, so a failed write never leaves a truncated store behind.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// probeURL pulls url_source out of a previously persisted object so reloaded
// records participate in dedup.
func probeURL(msg json.RawMessage) string {
	var probe struct {
		URLSource string `json:"url_source"`
	}
	if err := json.Unmarshal(msg, &probe); err != nil {
		return ""
	}
	return probe.URLSource
}
