// Package core holds the QSO domain: records decoded from a log and the
// daily uniqueness filter applied to them.
package core

import "strings"

// Well-known field names used by the filter.
const (
	FieldCall    = "CALL"
	FieldQSODate = "QSO_DATE"
)

// Record is one logged contact: uppercase field name to value.
type Record map[string]string

// Get returns the value for name, matching case-insensitively.
func (r Record) Get(name string) (string, bool) {
	v, ok := r[strings.ToUpper(name)]
	return v, ok
}

// Call returns the station identifier of the contact, if any.
func (r Record) Call() string {
	return r[FieldCall]
}

// Date returns the QSO date as stored in the log (YYYYMMDD by convention).
func (r Record) Date() string {
	return r[FieldQSODate]
}

// Field is a single tagged value found in source text.
// Value is already truncated to Length characters. Type is informational only.
type Field struct {
	Name   string
	Length int
	Type   string
	Value  string
}

// Summary is the result of a daily count, ready to be rendered.
type Summary struct {
	Path  string
	Date  string
	Calls CallSet
}

// EventType represents the type of change observed on a log source.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventCreate EventType = "CREATE"
	EventDelete EventType = "DELETE"
)

// Event signals that the underlying log changed and should be re-read.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
