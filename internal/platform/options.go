package platform

import (
	"log/slog"
	"time"

	"github.com/k5aq/adifcount/pkg/core"
)

// options holds the internal configuration for the counting service.
type options struct {
	source       core.Source
	logger       *slog.Logger
	homeDir      string
	location     *time.Location
	now          func() time.Time
	debounce     time.Duration
	errorHandler func(error)
}

// Option defines a functional option for configuring adifcount.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		source:   nil,
		logger:   nil,
		homeDir:  "",
		location: time.UTC,
		now:      time.Now,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithHomeDir sets the directory that relative log paths are resolved against.
func WithHomeDir(dir string) Option {
	return func(o *options) {
		o.homeDir = dir
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLocation sets the fixed time zone used to compute "today".
// Defaults to UTC, the zone QSO_DATE is logged in.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithClock overrides the time source (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithSource allows injecting a custom record source (e.g. fixture, stdin).
// If provided, the default filesystem adapter will be skipped.
func WithSource(src core.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithDebounce sets how long the watcher waits for writes to settle.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
