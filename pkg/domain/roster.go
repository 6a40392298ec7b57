package domain

import (
	"context"
	"fmt"
	"time"
)

// Record is the roster entry written when a specimen is admitted.
type Record struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Species        string    `json:"species"`
	Category       Category  `json:"category"`
	Description    string    `json:"description"`
	EndangerStatus string    `json:"endanger_status,omitempty"`
	AdmittedAt     time.Time `json:"admitted_at"`
}

// NewRecord snapshots a specimen into a roster record. ID and AdmittedAt are
// assigned by the roster.
func NewRecord(s Specimen) Record {
	rec := Record{
		Name:        s.Name(),
		Species:     s.Species(),
		Category:    s.Category(),
		Description: s.Describe(),
	}
	if c, ok := s.(Classified); ok {
		rec.EndangerStatus = c.EndangerStatus()
	}
	return rec
}

// Roster stores admitted specimens. Implementations list records in
// admission order.
type Roster interface {
	Add(ctx context.Context, rec Record) (Record, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	CountByCategory(ctx context.Context) (map[Category]int, error)
	Close() error
}

// ErrNotFound is returned when a roster lookup misses.
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("record %s not found", e.ID)
}
