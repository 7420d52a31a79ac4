package adifcount

import (
	"log/slog"
	"time"

	"github.com/k5aq/adifcount/internal/platform"
	"github.com/k5aq/adifcount/pkg/core"
)

// --- Types ---

// Record is a public alias for a decoded QSO record.
type Record = core.Record

// CallSet is a public alias for a set of uppercase calls.
type CallSet = core.CallSet

// Summary is a public alias for a daily count result.
type Summary = core.Summary

// Config is a public alias for the user configuration.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring adifcount.
type Option = platform.Option

// WithHomeDir sets the directory that relative log paths are resolved against.
func WithHomeDir(dir string) Option {
	return platform.WithHomeDir(dir)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithLocation sets the fixed time zone used to compute the default date.
func WithLocation(loc *time.Location) Option {
	return platform.WithLocation(loc)
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithSource allows injecting a custom record source.
func WithSource(src core.Source) Option {
	return platform.WithSource(src)
}

// WithDebounce sets how long the watcher waits for writes to settle.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithWatcherErrorHandler registers a callback for errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// LoadConfig reads the YAML config at path, then .env and the environment.
func LoadConfig(path string) (*Config, error) {
	return platform.LoadConfig(path)
}

// --- Factory ---

// New creates a counting service for the log at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// --- Dates ---

// Today returns today's date as YYYYMMDD in the configured zone (UTC by default).
func Today(opts ...Option) string {
	return platform.Today(opts...)
}

// ResolveDate validates a YYYYMMDD argument, or returns today in loc when arg is empty.
func ResolveDate(arg string, now time.Time, loc *time.Location) (string, error) {
	return platform.ResolveDate(arg, now, loc)
}
