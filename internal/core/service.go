// Package core wires the sanctuary roster, logging and metrics behind a
// single service used by the command line.
package core

import (
	"context"
	"log/slog"
	"time"

	"sanctuary/internal/logging"
	"sanctuary/internal/observability"
	"sanctuary/pkg/domain"
)

// Service admits specimens into a roster and mediates interactions with them.
type Service struct {
	roster     domain.Roster
	interactor domain.Interactor
	logger     *slog.Logger
	metrics    *observability.Metrics
	now        func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the structured logger. Nil leaves the discard logger in place.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewService constructs a service backed by the supplied roster.
func NewService(roster domain.Roster, opts ...Option) *Service {
	s := &Service{
		roster: roster,
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = observability.NewMetrics()
	}
	return s
}

// NewInMemoryService creates a service over a fresh in-memory roster.
func NewInMemoryService(opts ...Option) *Service {
	return NewService(newMemoryRoster(), opts...)
}

// Metrics returns the service's metrics sink.
func (s *Service) Metrics() *observability.Metrics {
	return s.metrics
}

// Admit records specimen in the roster.
func (s *Service) Admit(ctx context.Context, specimen domain.Specimen) (rec domain.Record, err error) {
	defer s.observe(ctx, "admit", s.now(), &err)
	rec, err = s.roster.Add(ctx, domain.NewRecord(specimen))
	if err != nil {
		s.logger.ErrorContext(ctx, "admit failed", "name", specimen.Name(), "error", err)
		return domain.Record{}, err
	}
	s.metrics.Admitted(rec.Category)
	s.logger.InfoContext(ctx, "admitted",
		"id", rec.ID,
		"name", rec.Name,
		"species", rec.Species,
		"category", rec.Category,
	)
	return rec, nil
}

// Interact asks subject to describe itself. Capability errors from the
// interactor are returned unchanged.
func (s *Service) Interact(ctx context.Context, subject any) (desc string, err error) {
	defer s.observe(ctx, "interact", s.now(), &err)
	desc, err = s.interactor.Interact(subject)
	if err != nil {
		s.logger.WarnContext(ctx, "interaction failed", "error", err)
		return "", err
	}
	s.logger.DebugContext(ctx, "interacted", "description", desc)
	return desc, nil
}

// Roster lists admitted records in admission order.
func (s *Service) Roster(ctx context.Context) ([]domain.Record, error) {
	return s.roster.List(ctx)
}

// Lookup returns the admitted record with the given id.
func (s *Service) Lookup(ctx context.Context, id string) (domain.Record, error) {
	return s.roster.Get(ctx, id)
}

// Census summarises the population counter and roster composition.
type Census struct {
	Population int64
	Summary    string
	ByCategory map[domain.Category]int
}

// Census reports the current population and per-category roster counts.
func (s *Service) Census(ctx context.Context) (Census, error) {
	counts, err := s.roster.CountByCategory(ctx)
	if err != nil {
		return Census{}, err
	}
	return Census{
		Population: domain.Population(),
		Summary:    domain.PopAmount(),
		ByCategory: counts,
	}, nil
}

// Close releases the roster.
func (s *Service) Close() error {
	return s.roster.Close()
}

func (s *Service) observe(ctx context.Context, operation string, started time.Time, errp *error) {
	s.metrics.Observe(ctx, operation, *errp == nil, s.now().Sub(started))
}
