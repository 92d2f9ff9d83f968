package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/jmap/pkg/drag"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/store"
	"tableflip.dev/jmap/pkg/sync"
)

type testConfig struct{ path string }

func (c testConfig) BasePath() string { return c.path }

func (c testConfig) Domains() []string { return nil }

func newTestModel(t *testing.T) (*Model, *sync.Controller) {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	key := store.Key{User: "dev@innovate-design.co.uk", Project: "p-1"}
	ctrl := sync.New(p, key, sync.WithDebounce(30*time.Millisecond))
	if err := ctrl.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(ctrl.Close)
	return New(ctrl, &drag.Controller{}), ctrl
}

func press(m *Model, key string) *Model {
	msg := tea.KeyPressMsg{Text: key, Code: rune(key[0])}
	next, _ := m.Update(msg)
	return next.(*Model)
}

func typeText(m *Model, text string) *Model {
	for _, r := range text {
		m = press(m, string(r))
	}
	return m
}

func pressEnter(m *Model) *Model {
	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return next.(*Model)
}

func pressEsc(m *Model) *Model {
	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	return next.(*Model)
}

func TestAddCommitFlow(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "o")
	if m.mode != modeInsert {
		t.Fatalf("adding must open the inline editor, mode=%d", m.mode)
	}
	if len(m.doc.Current.Items) != 1 || !m.doc.Current.Items[0].DraftNew {
		t.Fatalf("expected one draft item, got %+v", m.doc.Current.Items)
	}

	m = typeText(m, "Visit the store")
	m = pressEnter(m)
	if m.mode != modeNormal {
		t.Fatalf("commit must return to normal mode, mode=%d", m.mode)
	}
	item := m.doc.Current.Items[0]
	if item.Content != "Visit the store" || item.DraftNew {
		t.Fatalf("commit must set content and clear the draft flag, got %+v", item)
	}
}

func TestAddCancelRemovesDraft(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "o")
	m = pressEsc(m)
	if len(m.doc.Current.Items) != 0 {
		t.Fatalf("cancelling an add must remove the draft, got %+v", m.doc.Current.Items)
	}
}

func TestGrabAndDropReorders(t *testing.T) {
	m, _ := newTestModel(t)
	doc := m.doc
	var ids []string
	for _, content := range []string{"a", "b", "c"} {
		var item journey.Item
		doc, item = journey.AddItem(doc, journey.Current, "step")
		doc = journey.UpdateContent(doc, journey.Current, item.ID, content)
		ids = append(ids, item.ID)
	}
	m.setDoc(doc)

	// Grab the first item and walk the marker past the end slot.
	m = press(m, "m")
	if !m.drag.Dragging() {
		t.Fatal("expected a drag in progress")
	}
	m = press(m, "j")
	m = press(m, "j")
	m = press(m, "j") // end slot
	m = press(m, "m") // drop

	got := make([]string, 0, 3)
	for _, item := range m.doc.Current.Items {
		got = append(got, item.ID)
	}
	want := []string{ids[1], ids[2], ids[0]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if m.drag.Dragging() {
		t.Fatal("drop must return the controller to idle")
	}
}

func TestFocusLockedWhileDragging(t *testing.T) {
	m, _ := newTestModel(t)
	doc, item := journey.AddItem(m.doc, journey.Current, "step")
	doc = journey.UpdateContent(doc, journey.Current, item.ID, "only")
	m.setDoc(doc)

	m = press(m, "m")
	m = press(m, "l")
	if m.focus != 0 {
		t.Fatalf("focus must not move to the other column mid-drag, focus=%d", m.focus)
	}
	m = pressEsc(m)
	if m.drag.Dragging() {
		t.Fatal("esc must cancel the drag")
	}
}

func TestViewShowsBothColumns(t *testing.T) {
	m, _ := newTestModel(t)
	m.applySizesFor(120, 40)

	view := m.View()
	for _, want := range []string{"Current State", "Future State", "New Customer Journey"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func (m *Model) applySizesFor(w, h int) {
	m.termWidth = w
	m.termHeight = h
	m.applySizes()
}
