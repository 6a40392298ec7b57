// Package sqlite provides a roster backed by an in-memory SQLite database.
// Nothing is written to disk; the database lives as long as the Store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sanctuary/internal/infra/persistence/ids"
	"sanctuary/pkg/domain"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Compile-time contract assertion ensuring the store satisfies the roster interface.
var _ domain.Roster = (*Store)(nil)

const memoryDSN = ":memory:"

// Store keeps roster records as JSON payloads in a single SQLite table.
type Store struct {
	db    *sql.DB
	nowFn func() time.Time
}

// NewStore opens a private in-memory SQLite database and creates the roster table.
func NewStore(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// every new connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS roster (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create roster table: %w", err)
	}
	return &Store{db: db, nowFn: func() time.Time { return time.Now().UTC() }}, nil
}

// Add inserts rec, assigning an ID when missing and stamping AdmittedAt.
// Re-adding an existing ID replaces its payload and keeps its position.
func (s *Store) Add(ctx context.Context, rec domain.Record) (domain.Record, error) {
	if rec.ID == "" {
		rec.ID = ids.New()
	}
	rec.AdmittedAt = s.nowFn()
	payload, err := json.Marshal(rec)
	if err != nil {
		return domain.Record{}, fmt.Errorf("encode record: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO roster(id, category, payload) VALUES(?,?,?)
		ON CONFLICT(id) DO UPDATE SET category=excluded.category, payload=excluded.payload`,
		rec.ID, string(rec.Category), payload); err != nil {
		return domain.Record{}, fmt.Errorf("insert %s: %w", rec.ID, err)
	}
	return rec, nil
}

// Get returns the record with the given id.
func (s *Store) Get(ctx context.Context, id string) (domain.Record, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM roster WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, domain.ErrNotFound{ID: id}
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("select %s: %w", id, err)
	}
	return decode(payload)
}

// List returns every record in admission order.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM roster ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select roster: %w", err)
	}
	defer func() { _ = rows.Close() }()
	out := []domain.Record{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		rec, err := decode(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// CountByCategory tallies records per taxonomy category.
func (s *Store) CountByCategory(ctx context.Context) (map[domain.Category]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM roster GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("count roster: %w", err)
	}
	defer func() { _ = rows.Close() }()
	counts := make(map[domain.Category]int)
	for rows.Next() {
		var (
			category string
			n        int
		)
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		counts[domain.Category(category)] = n
	}
	return counts, rows.Err()
}

// Close releases the database; its contents are discarded.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

func decode(payload []byte) (domain.Record, error) {
	var rec domain.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return domain.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
