package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/project"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Domains() []string {
	return nil
}

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestMapRoundTrip(t *testing.T) {
	p := testPersistence(t)
	key := Key{User: "dev@innovate-design.co.uk", Project: "p-1"}
	ctx := context.Background()

	if _, ok, err := p.ReadMap(ctx, key); err != nil || ok {
		t.Fatalf("expected empty slot, ok=%v err=%v", ok, err)
	}

	doc := journey.NewDocument()
	doc, _ = journey.AddItem(doc, journey.Current, glyph.Step)
	doc = journey.UpdateTitle(doc, "Checkout revamp")
	if err := p.WriteMap(key, doc); err != nil {
		t.Fatalf("write map: %v", err)
	}

	got, ok, err := p.ReadMap(ctx, key)
	if err != nil || !ok {
		t.Fatalf("read map: ok=%v err=%v", ok, err)
	}
	if got.Title != "Checkout revamp" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if len(got.Current.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got.Current.Items))
	}
	if got.Current.ID != journey.Current || got.Future.ID != journey.Future {
		t.Fatalf("column roles must be fixed on read")
	}

	if err := p.DeleteMap(key); err != nil {
		t.Fatalf("delete map: %v", err)
	}
	if _, ok, _ := p.ReadMap(ctx, key); ok {
		t.Fatalf("slot should be empty after delete")
	}
}

func TestProjectsIndex(t *testing.T) {
	p := testPersistence(t)
	ctx := context.Background()
	user := "dev@innovate-design.co.uk"

	older := project.New(time.Now().Add(-time.Hour))
	newer := project.New(time.Now())
	if err := p.PutProject(user, older); err != nil {
		t.Fatalf("put older: %v", err)
	}
	if err := p.PutProject(user, newer); err != nil {
		t.Fatalf("put newer: %v", err)
	}

	list, err := p.Projects(ctx, user)
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(list))
	}
	if list[0].ID != newer.ID {
		t.Fatalf("expected most recently updated first, got %v", list[0].ID)
	}

	at := time.Now().Add(time.Minute)
	if err := p.TouchProject(user, older.ID, "Renamed", at); err != nil {
		t.Fatalf("touch: %v", err)
	}
	list, _ = p.Projects(ctx, user)
	if list[0].ID != older.ID || list[0].Title != "Renamed" {
		t.Fatalf("touch should bump updatedAt and mirror title: %+v", list[0])
	}
	if list[0].UpdatedAt != at.UnixMilli() {
		t.Fatalf("unexpected updatedAt %d", list[0].UpdatedAt)
	}
	if list[0].CreatedAt != older.CreatedAt {
		t.Fatalf("touch must not change createdAt")
	}

	// Touching an unknown project is a no-op.
	if err := p.TouchProject(user, "missing", "x", at); err != nil {
		t.Fatalf("touch missing: %v", err)
	}

	if err := p.DeleteProject(user, newer.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	list, _ = p.Projects(ctx, user)
	if len(list) != 1 || list[0].ID != older.ID {
		t.Fatalf("expected only the older project, got %+v", list)
	}
}

func TestWatchEmitsMapChanges(t *testing.T) {
	p := testPersistence(t)
	key := Key{User: "dev@innovate-design.co.uk", Project: "p-1"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx, key)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.WriteMap(key, journey.NewDocument()); err != nil {
		t.Fatalf("write map: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventMapChanged {
				if evt.Key != key {
					t.Fatalf("expected key %+v, got %+v", key, evt.Key)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for map change event")
		}
	}
}
