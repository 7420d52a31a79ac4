package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// LogFileState exposes internal state for observability.
type LogFileState struct {
	Path          string     `json:"path"`
	HomeDir       string     `json:"home_dir,omitempty"`
	Resolved      string     `json:"resolved,omitempty"`
	LastRead      *time.Time `json:"last_read,omitempty"`
	LastSize      int64      `json:"last_size"`
	LastRecords   int        `json:"last_records"`
	WatcherActive bool       `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (l *LogFile) State() any {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return LogFileState{
		Path:          l.config.Path,
		HomeDir:       l.config.HomeDir,
		Resolved:      l.path,
		LastRead:      l.lastRead,
		LastSize:      l.lastSize,
		LastRecords:   l.lastRecords,
		WatcherActive: l.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (l *LogFile) ComponentType() string {
	return "logfile"
}

var _ introspection.Introspectable = (*LogFile)(nil)
var _ introspection.Component = (*LogFile)(nil)

func (l *LogFile) setWatcherActive(active bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.watcherActive = active
}
