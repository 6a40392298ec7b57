// Package memory provides an in-memory roster used by default and in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"sanctuary/internal/infra/persistence/ids"
	"sanctuary/pkg/domain"
)

// Compile-time contract assertion ensuring memory.Store satisfies the roster interface.
var _ domain.Roster = (*Store)(nil)

// Store keeps admitted records in a map guarded by a mutex, remembering
// admission order separately.
type Store struct {
	mu      sync.RWMutex
	records map[string]domain.Record
	order   []string
	nowFn   func() time.Time
}

// NewStore constructs an empty in-memory roster.
func NewStore() *Store {
	return &Store{
		records: make(map[string]domain.Record),
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
}

// Add stores rec, assigning an ID when missing and stamping AdmittedAt.
func (s *Store) Add(_ context.Context, rec domain.Record) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == "" {
		rec.ID = ids.New()
	}
	if _, exists := s.records[rec.ID]; !exists {
		s.order = append(s.order, rec.ID)
	}
	rec.AdmittedAt = s.nowFn()
	s.records[rec.ID] = rec
	return rec, nil
}

// Get returns the record with the given id.
func (s *Store) Get(_ context.Context, id string) (domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return domain.Record{}, domain.ErrNotFound{ID: id}
	}
	return rec, nil
}

// List returns every record in admission order.
func (s *Store) List(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

// CountByCategory tallies records per taxonomy category.
func (s *Store) CountByCategory(_ context.Context) (map[domain.Category]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[domain.Category]int)
	for _, rec := range s.records {
		counts[rec.Category]++
	}
	return counts, nil
}

// Close is a no-op for the in-memory roster.
func (s *Store) Close() error { return nil }
