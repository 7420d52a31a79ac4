package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DateLayout is the layout of QSO_DATE values and query dates.
const DateLayout = "20060102"

// Service applies the daily uniqueness filter to a Source.
type Service struct {
	mu     sync.RWMutex
	src    Source
	logger *slog.Logger
	runs   int
}

// NewService creates a new Service.
func NewService(src Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{src: src, logger: logger}
}

// UniqueCalls reads the source and returns the distinct calls logged on date.
func (s *Service) UniqueCalls(ctx context.Context, date string) (CallSet, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	records, err := s.src.Records(ctx)
	if err != nil {
		return nil, err
	}

	calls := UniqueCalls(records, date)

	s.mu.Lock()
	s.runs++
	s.mu.Unlock()

	s.logger.Debug("filtered records",
		"source", s.src.Location(),
		"date", date,
		"records", len(records),
		"unique", calls.Len(),
	)
	return calls, nil
}

// Summarize is UniqueCalls packaged with the source location and date.
func (s *Service) Summarize(ctx context.Context, date string) (Summary, error) {
	calls, err := s.UniqueCalls(ctx, date)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Path: s.src.Location(), Date: date, Calls: calls}, nil
}

// Watch observes changes in the source if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.src.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	return w.Watch(ctx)
}

// ValidateDate checks that date is a real calendar day written as YYYYMMDD.
func ValidateDate(date string) error {
	if len(date) != len(DateLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}
