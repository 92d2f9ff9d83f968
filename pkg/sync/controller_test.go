package sync

import (
	"context"
	stdsync "sync"
	"testing"
	"time"

	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/project"
	"tableflip.dev/jmap/pkg/store"
)

// fakeStore is an in-memory Persistence for exercising the controller
// without the filesystem.
type fakeStore struct {
	mu      stdsync.Mutex
	docs    map[store.Key]journey.Document
	writes  []journey.Document
	touches []string
	events  chan store.Event
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:   make(map[store.Key]journey.Document),
		events: make(chan store.Event, 8),
	}
}

func (f *fakeStore) ReadMap(ctx context.Context, key store.Key) (journey.Document, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[key]
	return doc, ok, nil
}

func (f *fakeStore) WriteMap(key store.Key, doc journey.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[key] = doc
	f.writes = append(f.writes, doc)
	return nil
}

func (f *fakeStore) DeleteMap(key store.Key) error { return nil }

func (f *fakeStore) Projects(ctx context.Context, user string) ([]project.Meta, error) {
	return nil, nil
}

func (f *fakeStore) PutProject(user string, meta project.Meta) error { return nil }

func (f *fakeStore) TouchProject(user, projectID, title string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touches = append(f.touches, title)
	return nil
}

func (f *fakeStore) DeleteProject(user, projectID string) error { return nil }

func (f *fakeStore) Watch(ctx context.Context, key store.Key) (<-chan store.Event, error) {
	return f.events, nil
}

func (f *fakeStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

func (f *fakeStore) lastWrite() (journey.Document, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.writes) == 0 {
		return journey.Document{}, false
	}
	return f.writes[len(f.writes)-1], true
}

var testKey = store.Key{User: "dev@innovate-design.co.uk", Project: "p-1"}

func TestInitialSnapshotIsNotEchoed(t *testing.T) {
	f := newFakeStore()
	seeded := journey.UpdateTitle(journey.NewDocument(), "X")
	f.docs[testKey] = seeded

	c := New(f, testKey, WithDebounce(40*time.Millisecond))
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer c.Close()

	time.Sleep(150 * time.Millisecond)
	if n := f.writeCount(); n != 0 {
		t.Fatalf("initial snapshot must not trigger writes, got %d", n)
	}
	if got := c.Document(); got.Title != "X" {
		t.Fatalf("expected seeded document, got title %q", got.Title)
	}
}

func TestDebounceCoalescesToLatest(t *testing.T) {
	f := newFakeStore()
	c := New(f, testKey, WithDebounce(100*time.Millisecond))
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer c.Close()

	doc := c.Document()
	for i, title := range []string{"one", "two", "three"} {
		doc = journey.UpdateTitle(doc, title)
		doc, _ = journey.AddItem(doc, journey.Current, glyph.Step)
		c.Apply(doc)
		if i < 2 {
			time.Sleep(20 * time.Millisecond)
		}
	}

	time.Sleep(300 * time.Millisecond)
	if n := f.writeCount(); n != 1 {
		t.Fatalf("expected exactly one coalesced write, got %d", n)
	}
	got, _ := f.lastWrite()
	if got.Title != "three" || len(got.Current.Items) != 3 {
		t.Fatalf("expected the latest state written, got title %q with %d items",
			got.Title, len(got.Current.Items))
	}

	f.mu.Lock()
	touches := append([]string(nil), f.touches...)
	f.mu.Unlock()
	if len(touches) != 1 || touches[0] != "three" {
		t.Fatalf("expected one meta touch mirroring the title, got %v", touches)
	}
}

func TestRemoteNotificationReplacesLocal(t *testing.T) {
	f := newFakeStore()
	c := New(f, testKey, WithDebounce(40*time.Millisecond))
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer c.Close()

	remote := journey.UpdateTitle(journey.NewDocument(), "from elsewhere")
	f.mu.Lock()
	f.docs[testKey] = remote
	f.mu.Unlock()
	f.events <- store.Event{Type: store.EventMapChanged, Key: testKey}

	select {
	case got := <-c.Updates():
		if got.Title != "from elsewhere" {
			t.Fatalf("unexpected update %q", got.Title)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for remote update")
	}
	if got := c.Document(); got.Title != "from elsewhere" {
		t.Fatalf("remote value must replace local state, got %q", got.Title)
	}

	// Read-back application alone schedules no write.
	time.Sleep(120 * time.Millisecond)
	if n := f.writeCount(); n != 0 {
		t.Fatalf("remote application must not write, got %d writes", n)
	}
}

func TestCloseCancelsPendingWrite(t *testing.T) {
	f := newFakeStore()
	c := New(f, testKey, WithDebounce(80*time.Millisecond))
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	c.Apply(journey.UpdateTitle(c.Document(), "doomed"))
	c.Close()

	time.Sleep(200 * time.Millisecond)
	if n := f.writeCount(); n != 0 {
		t.Fatalf("close must cancel the pending debounce, got %d writes", n)
	}
}
