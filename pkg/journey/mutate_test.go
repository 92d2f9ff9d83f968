package journey

import (
	"reflect"
	"testing"

	"tableflip.dev/jmap/pkg/glyph"
)

func seedDoc() Document {
	doc := NewDocument()
	doc.Current.Items = []Item{
		{ID: "a", Kind: glyph.Section, Content: "Onboarding"},
		{ID: "b", Kind: glyph.Step, Content: "Sign up"},
		{ID: "c", Kind: glyph.Step, Content: "Verify email"},
	}
	doc.Future.Items = []Item{
		{ID: "f1", Kind: glyph.System, Content: "Auto-verify"},
	}
	return doc
}

func ids(col Column) []string {
	out := make([]string, 0, len(col.Items))
	for _, item := range col.Items {
		out = append(out, item.ID)
	}
	return out
}

func TestAddItemAppendsDraft(t *testing.T) {
	doc := seedDoc()
	next, item := AddItem(doc, Current, glyph.Step)

	if len(doc.Current.Items) != 3 {
		t.Fatalf("input document mutated: %d items", len(doc.Current.Items))
	}
	if len(next.Current.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(next.Current.Items))
	}
	got := next.Current.Items[3]
	if got.ID != item.ID || got.ID == "" {
		t.Fatalf("expected appended item id %q, got %q", item.ID, got.ID)
	}
	if got.Content != "" || !got.DraftNew {
		t.Fatalf("expected empty draft item, got %+v", got)
	}
}

func TestAddThenDeleteRoundTrips(t *testing.T) {
	doc := seedDoc()
	next, item := AddItem(doc, Future, glyph.System)
	back := DeleteItem(next, Future, item.ID)
	if !reflect.DeepEqual(ids(back.Future), ids(doc.Future)) {
		t.Fatalf("expected original sequence %v, got %v", ids(doc.Future), ids(back.Future))
	}
}

func TestDeleteAndUpdateMissingIDAreNoOps(t *testing.T) {
	doc := seedDoc()
	if got := DeleteItem(doc, Current, "nope"); !reflect.DeepEqual(got, doc) {
		t.Fatalf("delete of missing id should be a no-op")
	}
	if got := UpdateContent(doc, Current, "nope", "_"); !reflect.DeepEqual(got, doc) {
		t.Fatalf("update of missing id should be a no-op")
	}
	if got := MoveItem(doc, Current, "nope", End); !reflect.DeepEqual(got, doc) {
		t.Fatalf("move of missing id should be a no-op")
	}
}

func TestUpdateContentClearsDraftFlag(t *testing.T) {
	doc := seedDoc()
	doc, item := AddItem(doc, Current, glyph.Step)
	next := UpdateContent(doc, Current, item.ID, "Choose a plan")
	got := next.Current.Items[next.Current.IndexOf(item.ID)]
	if got.Content != "Choose a plan" {
		t.Fatalf("unexpected content %q", got.Content)
	}
	if got.DraftNew {
		t.Fatalf("draft flag should clear on first commit")
	}
}

func TestMoveItemBeforeTarget(t *testing.T) {
	doc := seedDoc()
	next := MoveItem(doc, Current, "c", "a")
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(ids(next.Current), want) {
		t.Fatalf("expected %v, got %v", want, ids(next.Current))
	}
	// Input untouched.
	if !reflect.DeepEqual(ids(doc.Current), []string{"a", "b", "c"}) {
		t.Fatalf("input document mutated: %v", ids(doc.Current))
	}
}

func TestMoveItemToEndAppends(t *testing.T) {
	doc := seedDoc()
	next := MoveItem(doc, Current, "a", End)
	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(ids(next.Current), want) {
		t.Fatalf("expected %v, got %v", want, ids(next.Current))
	}
}

func TestMoveItemOntoItselfFallsBackToTail(t *testing.T) {
	doc := seedDoc()
	next := MoveItem(doc, Current, "b", "b")
	want := []string{"a", "c", "b"}
	if !reflect.DeepEqual(ids(next.Current), want) {
		t.Fatalf("expected deterministic tail placement %v, got %v", want, ids(next.Current))
	}
	if len(next.Current.Items) != 3 {
		t.Fatalf("item duplicated or lost: %v", ids(next.Current))
	}
}

func TestMoveItemCrossColumnIsNoOp(t *testing.T) {
	doc := seedDoc()
	next := MoveItem(doc, Current, "b", "f1")
	if !reflect.DeepEqual(next, doc) {
		t.Fatalf("cross-column move should leave the document unchanged")
	}
}

func TestMoveItemPreservesOtherOrder(t *testing.T) {
	doc := seedDoc()
	doc.Current.Items = append(doc.Current.Items, Item{ID: "d", Kind: glyph.Step})
	next := MoveItem(doc, Current, "d", "b")
	want := []string{"a", "d", "b", "c"}
	if !reflect.DeepEqual(ids(next.Current), want) {
		t.Fatalf("expected %v, got %v", want, ids(next.Current))
	}
}

func TestDuplicateToFuture(t *testing.T) {
	doc := seedDoc()
	next := DuplicateToFuture(doc, "b")

	if !reflect.DeepEqual(ids(next.Current), ids(doc.Current)) {
		t.Fatalf("current column must be unchanged")
	}
	if len(next.Future.Items) != len(doc.Future.Items)+1 {
		t.Fatalf("expected exactly one appended item, got %v", ids(next.Future))
	}
	dup := next.Future.Items[len(next.Future.Items)-1]
	src := doc.Current.Items[doc.Current.IndexOf("b")]
	if dup.Kind != src.Kind || dup.Content != src.Content {
		t.Fatalf("duplicate should copy kind and content: %+v", dup)
	}
	if dup.ID == src.ID || dup.ID == "" {
		t.Fatalf("duplicate needs a fresh id, got %q", dup.ID)
	}
	if dup.DraftNew {
		t.Fatalf("duplicate is not a draft")
	}
}

func TestDuplicateToFutureMissingIDIsNoOp(t *testing.T) {
	doc := seedDoc()
	if got := DuplicateToFuture(doc, "f1"); !reflect.DeepEqual(got, doc) {
		t.Fatalf("duplicating a future-column id should be a no-op")
	}
}

func TestItemLabelPlaceholders(t *testing.T) {
	cases := []struct {
		kind glyph.Kind
		want string
	}{
		{glyph.Step, "New journey step..."},
		{glyph.System, "New system step..."},
		{glyph.Section, "Unnamed Section"},
	}
	for _, tc := range cases {
		item := Item{Kind: tc.kind}
		if got := item.Label(); got != tc.want {
			t.Fatalf("kind %s: expected %q, got %q", tc.kind, tc.want, got)
		}
	}
	item := Item{Kind: glyph.Step, Content: "Pay"}
	if item.Label() != "Pay" {
		t.Fatalf("content should win over placeholder")
	}
}
