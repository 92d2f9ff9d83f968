package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventMapChanged indicates the watched slot's map document changed on
	// disk (written by this session or another one).
	EventMapChanged EventType = iota

	// EventProjectsInvalidated signals that the user's project index
	// changed and dashboards should refresh their full view.
	EventProjectsInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  Key
}

// Watch streams change events for the key's slot until ctx is cancelled.
// Callers should drain the returned channel to avoid losing events. The
// channel is closed once ctx is done or the watcher encounters an
// unrecoverable error.
func (p *persistence) Watch(ctx context.Context, key Key) (<-chan Event, error) {
	if !key.valid() {
		return nil, errors.New("store: user and project required")
	}
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	slotDir := p.slotDir(key)
	userDir := p.userDir(key.User)
	if err := os.MkdirAll(slotDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure slot path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	for _, dir := range []string{slotDir, userDir} {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next
				// notification triggers a full re-read anyway, and this
				// keeps filesystem storms from blocking the watcher
				// goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a map refresh to keep the
				// session in sync even when the change cannot be
				// classified.
				throttle.Enqueue(Event{Type: EventMapChanged, Key: key}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(evt.Name)
				dir := filepath.Dir(filepath.Clean(evt.Name))
				switch {
				case dir == filepath.Clean(slotDir) && name == mapFileName:
					throttle.Enqueue(Event{Type: EventMapChanged, Key: key}, send)
				case name == projectsIndexFile:
					throttle.Enqueue(Event{Type: EventProjectsInvalidated, Key: key}, send)
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so consumers re-read
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]Event
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]Event),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = ev
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]Event)
	t.timer = nil
	t.mu.Unlock()

	for _, ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
