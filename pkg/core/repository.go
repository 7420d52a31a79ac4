package core

import "context"

// Source supplies the decoded records of one log.
// Adhering to this interface keeps the filter independent of where the
// text comes from (local file, fixture, stdin).
type Source interface {
	// Records reads the log fully and returns its records in file order.
	Records(ctx context.Context) ([]Record, error)

	// Location describes where the records come from, for reporting.
	Location() string
}

// Watchable defines an interface for sources that can signal changes.
type Watchable interface {
	// Watch emits an Event each time the log changes until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
