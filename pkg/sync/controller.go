// Package sync bridges an editing session's local map document with its
// remote store slot: remote changes are applied locally as the single
// source of truth for read-back, and local edits are written back on a
// debounced timer, coalesced to the latest document.
package sync

import (
	"context"
	"fmt"
	"os"
	stdsync "sync"
	"time"

	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/store"
)

// DefaultDebounce is the quiet period after the last local edit before the
// document is written back.
const DefaultDebounce = time.Second

// Option configures a Controller.
type Option func(*Controller)

// WithDebounce overrides the write-back delay.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// Controller owns the sync state machine for one (user, project) slot.
// One controller serves one editing session; it is safe for use from the
// session goroutine plus the watch callback it spawns.
type Controller struct {
	persistence store.Persistence
	key         store.Key
	debounce    time.Duration

	mu           stdsync.Mutex
	doc          journey.Document
	suppressEcho bool
	timer        *time.Timer
	closed       bool

	cancelWatch context.CancelFunc
	updates     chan journey.Document
}

// New creates a controller for the given slot. Call Start before use.
func New(p store.Persistence, key store.Key, opts ...Option) *Controller {
	c := &Controller{
		persistence: p,
		key:         key,
		debounce:    DefaultDebounce,
		updates:     make(chan journey.Document, 16),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start loads the stored document (a read failure degrades to an empty
// map rather than blocking the editor) and subscribes to remote change
// notifications. The initial snapshot is applied with echo suppression:
// it seeds local state without scheduling a redundant write-after-read.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	c.suppressEcho = true
	c.mu.Unlock()

	doc, ok, err := c.persistence.ReadMap(ctx, c.key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sync: initial read: %v\n", err)
		ok = false
	}
	if !ok {
		doc = journey.NewDocument()
	}
	// The seed goes through the local path so suppressEcho can eat it.
	c.Apply(doc)

	watchCtx, cancel := context.WithCancel(context.Background())
	events, err := c.persistence.Watch(watchCtx, c.key)
	if err != nil {
		cancel()
		return fmt.Errorf("sync: subscribe: %w", err)
	}
	c.mu.Lock()
	c.cancelWatch = cancel
	c.mu.Unlock()

	go func() {
		for evt := range events {
			if evt.Type != store.EventMapChanged {
				continue
			}
			remote, ok, err := c.persistence.ReadMap(watchCtx, c.key)
			if err != nil {
				fmt.Fprintf(os.Stderr, "sync: remote read: %v\n", err)
				continue
			}
			if !ok {
				continue
			}
			c.applyRemote(remote)
		}
	}()
	return nil
}

// Updates delivers documents applied from remote notifications. The store
// is the authority for read-back: received values replace local state
// whether they originated here (own echo) or in another session.
func (c *Controller) Updates() <-chan journey.Document {
	return c.updates
}

// Document returns the current local document.
func (c *Controller) Document() journey.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

// Apply records a new document produced by a local mutation and (re)starts
// the debounce timer. Edits arriving before the timer fires coalesce: only
// the latest document is ever written. The very first Apply after Start is
// the initial snapshot seed and schedules nothing.
func (c *Controller) Apply(doc journey.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.doc = doc
	if c.suppressEcho {
		c.suppressEcho = false
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.flush)
}

func (c *Controller) applyRemote(doc journey.Document) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.doc = doc
	c.mu.Unlock()

	select {
	case c.updates <- doc:
	default:
		// A stale update is fine to drop; the consumer will read the
		// newer one on the next notification.
	}
}

// flush writes the latest document and then touches the owning project's
// metadata (updatedAt plus mirrored title) as a best-effort secondary
// write. Failures are logged and dropped: the next edit or subscription
// event is the recovery path.
func (c *Controller) flush() {
	c.mu.Lock()
	doc := c.doc
	c.timer = nil
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}

	if err := c.persistence.WriteMap(c.key, doc); err != nil {
		fmt.Fprintf(os.Stderr, "sync: write map: %v\n", err)
		return
	}
	if err := c.persistence.TouchProject(c.key.User, c.key.Project, doc.Title, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "sync: touch project: %v\n", err)
	}
}

// Close unsubscribes and cancels any pending debounce without a final
// flush; an unflushed edit at teardown is an accepted loss.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	cancel := c.cancelWatch
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
