// Package store holds the in-memory observation collection over the row-log
// persistence boundary. It is the only shared mutable state in the process:
// appends go to the log before memory, so the two can never disagree about
// which records exist.
package store

import (
	"sync"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/errors"
	"github.com/knagasaki/spectra/internal/observation"
	"github.com/knagasaki/spectra/internal/rowlog"
)

// Predicate selects records in a Query.
type Predicate func(*observation.Record) bool

// Store is the record store. Safe for use from the web surface and the CLI
// lifecycle; there is exactly one writer at a time.
type Store struct {
	mu      sync.RWMutex
	log     rowlog.Log
	cfg     *config.Config
	records []*observation.Record
	index   map[string]int
}

// Open replays the row log into memory. Any stored row that fails record
// validation, or that reuses an id, aborts the load with CORRUPT_DATA so the
// operator can inspect the file; nothing is silently dropped or clamped.
func Open(log rowlog.Log, cfg *config.Config) (*Store, error) {
	rows, err := log.ReadAllRows()
	if err != nil {
		return nil, errors.NewPersistenceFailed(err)
	}

	s := &Store{
		log:     log,
		cfg:     cfg,
		records: make([]*observation.Record, 0, len(rows)),
		index:   make(map[string]int, len(rows)),
	}

	for i, row := range rows {
		rec, err := decodeRow(row, cfg.ScoreMin, cfg.ScoreMax)
		if err != nil {
			return nil, errors.NewCorruptData(i+1, err)
		}
		if _, exists := s.index[rec.ID]; exists {
			return nil, errors.NewCorruptData(i+1, errors.NewDuplicateID(rec.ID))
		}
		s.index[rec.ID] = len(s.records)
		s.records = append(s.records, rec)
	}

	return s, nil
}

// Append adds a record to the collection. The row is written to the log
// first; only a durable write updates memory, so Append never reports
// success for a record that was not saved.
func (s *Store) Append(rec *observation.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[rec.ID]; exists {
		return errors.NewDuplicateID(rec.ID)
	}

	if err := s.log.AppendRow(encodeRow(rec)); err != nil {
		return errors.NewPersistenceFailed(err)
	}

	s.index[rec.ID] = len(s.records)
	s.records = append(s.records, rec)
	return nil
}

// All returns every record in insertion order.
func (s *Store) All() []*observation.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*observation.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (*observation.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, errors.NewNotFound(id)
	}
	return s.records[i], nil
}

// Query returns records matching pred, in insertion order. Read-only.
func (s *Store) Query(pred Predicate) []*observation.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*observation.Record
	for _, rec := range s.records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of records in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Close closes the underlying row log.
func (s *Store) Close() error {
	return s.log.Close()
}
