package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/k5aq/adifcount/pkg/core"
)

// Watch implements core.Watchable.
//
// The parent directory is watched rather than the file itself so that
// loggers which replace the file on save keep being tracked. The returned
// channel is closed when ctx is done.
func (l *LogFile) Watch(ctx context.Context) (<-chan core.Event, error) {
	path, err := l.Resolve()
	if err != nil {
		return nil, err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	events := make(chan core.Event, 1)
	w := &watchWorker{
		log:       l,
		path:      path,
		watcher:   watcher,
		events:    events,
		stop:      make(chan struct{}),
		debouncer: newDebouncer(l.config.Debounce),
	}

	l.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		l.handleError(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

type watchWorker struct {
	log       *LogFile
	path      string
	watcher   *fsnotify.Watcher
	events    chan core.Event
	stop      chan struct{}
	debouncer *debouncer
}

// run is the main event loop for the watcher.
func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.log.setWatcherActive(false)
	defer w.watcher.Close()
	// Drain timers before the deferred close of w.events runs.
	defer w.debouncer.stopAndWait()
	defer close(w.stop)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.process(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.handleError(err)
		}
	}
}

func (w *watchWorker) process(ctx context.Context, event fsnotify.Event) {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.path {
		return
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return
	}

	w.log.config.Logger.Debug("log changed", "path", w.path, "op", event.Op.String())

	w.debouncer.add(core.Event{
		Type:      eType,
		Path:      w.path,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		select {
		case w.events <- e:
		case <-w.stop:
		case <-ctx.Done():
		}
	})
}

func (l *LogFile) handleError(err error) {
	l.config.Logger.Error("watcher error", "error", err)
	if l.config.ErrorHandler != nil {
		l.config.ErrorHandler(err)
	}
}

// debouncer delivers only the last event of a burst.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if d.timer != nil && d.timer.Stop() {
		// The pending callback will never run.
		d.wg.Done()
	}

	d.wg.Add(1)
	d.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		fire(e)
	})
}

// stopAndWait cancels a pending event and waits for a running callback.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.mu.Unlock()

	d.wg.Wait()
}
