// Package fs reads QSO logs from the local filesystem.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/k5aq/adifcount/pkg/adif"
	"github.com/k5aq/adifcount/pkg/core"
)

// Config holds the configuration for a LogFile.
type Config struct {
	// Path is the log file as given by the user.
	Path string
	// HomeDir is prepended to relative paths. Empty means the working directory.
	HomeDir string
	Logger  *slog.Logger
	// Debounce coalesces bursts of writes while watching. Zero means 250ms.
	Debounce time.Duration
	// ErrorHandler receives runtime watcher errors. Optional.
	ErrorHandler func(error)
}

// LogFile is a core.Source backed by one ADIF file on disk.
type LogFile struct {
	config Config

	mu            sync.RWMutex
	path          string
	lastRead      *time.Time
	lastSize      int64
	lastRecords   int
	watcherActive bool
}

// NewLogFile creates a LogFile. The path is resolved lazily on first use.
func NewLogFile(config Config) *LogFile {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Debounce <= 0 {
		config.Debounce = 250 * time.Millisecond
	}
	return &LogFile{config: config}
}

// Resolve resolves and caches the concrete path of the log.
func (l *LogFile) Resolve() (string, error) {
	l.mu.RLock()
	path := l.path
	l.mu.RUnlock()
	if path != "" {
		return path, nil
	}

	path, err := ResolvePath(l.config.Path, l.config.HomeDir)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	l.path = path
	l.mu.Unlock()
	return path, nil
}

// Location implements core.Source.
func (l *LogFile) Location() string {
	if path, err := l.Resolve(); err == nil {
		return path
	}
	return l.config.Path
}

// Records implements core.Source. The file is read fully before parsing.
func (l *LogFile) Records(ctx context.Context) ([]core.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.Resolve()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", core.ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := adif.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	now := time.Now()
	l.mu.Lock()
	l.lastRead = &now
	l.lastSize = info.Size()
	l.lastRecords = len(records)
	l.mu.Unlock()

	l.config.Logger.Debug("log read", "path", path, "bytes", info.Size(), "records", len(records))
	return records, nil
}

var _ core.Source = (*LogFile)(nil)
var _ core.Watchable = (*LogFile)(nil)
