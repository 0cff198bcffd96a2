package fs

import (
	"sync"
	"time"

	"github.com/chordsense/chordsense/pkg/core"
)

// debouncer coalesces bursts of events for the same slug.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	pending map[string]*pendingEvent
	wg      sync.WaitGroup
	stopped bool
}

type pendingEvent struct {
	event core.Event
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		pending: make(map[string]*pendingEvent),
	}
}

// add schedules e for delivery through emit once the slug has been quiet
// for the debounce delay.
func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	// A timer that already fired is waiting on mu and will see it was
	// replaced, so its event is merged here either way.
	if prev, ok := d.pending[e.Slug]; ok {
		if prev.timer.Stop() {
			d.wg.Done()
		}
		e = mergeEvents(prev.event, e)
	}

	p := &pendingEvent{event: e}
	d.wg.Add(1)
	p.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		current, ok := d.pending[e.Slug]
		if !ok || current != p {
			d.mu.Unlock()
			return
		}
		delete(d.pending, e.Slug)
		d.mu.Unlock()

		emit(p.event)
	})
	d.pending[e.Slug] = p
}

// stopAndWait drops pending events and waits for in-flight deliveries.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for slug, p := range d.pending {
		if p.timer.Stop() {
			d.wg.Done()
		}
		delete(d.pending, slug)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}

// A file created and then written within one window is still a creation.
func mergeEvents(prev, next core.Event) core.Event {
	if prev.Type == core.EventCreate && next.Type == core.EventModify {
		next.Type = core.EventCreate
	}
	return next
}
