package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/chordsense/chordsense/pkg/core"
)

const debounceDelay = 50 * time.Millisecond

// Watch reports changes to content files until ctx is cancelled.
// The returned channel is closed once the watcher has shut down.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.Path, err)
	}

	events := make(chan core.Event, r.config.EventBuffer)
	deb := newDebouncer(debounceDelay)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		// Pending timers must finish before the channel closes.
		defer deb.stopAndWait(5 * time.Second)

		return r.watchLoop(ctx, watcher, deb, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.reportError(fmt.Errorf("watcher stopped: %w", err))
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, deb *debouncer, events chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := r.toEvent(event)
			if !ok {
				continue
			}
			r.config.Logger.Debug("content changed", "type", e.Type, "slug", e.Slug)
			deb.add(e, func(e core.Event) {
				defer func() {
					// Channel may already be closed during shutdown.
					_ = recover()
				}()
				r.recordEvent()
				select {
				case events <- e:
				case <-ctx.Done():
				}
			})

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.config.Logger.Error("fsnotify error", "error", wErr)
			r.reportError(wErr)
		}
	}
}

// toEvent maps a raw filesystem notification to a content event.
// Notifications for non-content files and attribute-only changes are dropped.
func (r *Repository) toEvent(event fsnotify.Event) (core.Event, bool) {
	name := filepath.Base(event.Name)
	if filepath.Dir(event.Name) != filepath.Clean(r.Path) || !r.isContent(name) {
		return core.Event{}, false
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
		return core.Event{}, false
	}

	return core.Event{
		Type:      eType,
		Slug:      r.slugOf(name),
		Timestamp: time.Now().Unix(),
	}, true
}

func (r *Repository) reportError(err error) {
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
		return
	}
	r.config.Logger.Error("watcher error", "error", err)
}
