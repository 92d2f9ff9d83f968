package drag

import (
	"reflect"
	"testing"

	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/journey"
)

func seedDoc() journey.Document {
	doc := journey.NewDocument()
	doc.Current.Items = []journey.Item{
		{ID: "a", Kind: glyph.Section},
		{ID: "b", Kind: glyph.Step},
		{ID: "c", Kind: glyph.Step},
	}
	doc.Future.Items = []journey.Item{
		{ID: "z", Kind: glyph.Step},
	}
	return doc
}

func currentIDs(doc journey.Document) []string {
	out := make([]string, 0, len(doc.Current.Items))
	for _, item := range doc.Current.Items {
		out = append(out, item.ID)
	}
	return out
}

func TestDropReordersSameColumn(t *testing.T) {
	var c Controller
	c.BeginDrag("c", journey.Current)
	if !c.Dragging() {
		t.Fatalf("expected dragging state")
	}

	doc := c.Drop(seedDoc(), "a", journey.Current)
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(currentIDs(doc), want) {
		t.Fatalf("expected %v, got %v", want, currentIDs(doc))
	}
	if c.Dragging() || c.HoverTarget() != "" {
		t.Fatalf("drop must return to idle and clear hover")
	}
}

func TestDropAtEnd(t *testing.T) {
	var c Controller
	c.BeginDrag("a", journey.Current)
	doc := c.Drop(seedDoc(), journey.End, journey.Current)
	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(currentIDs(doc), want) {
		t.Fatalf("expected %v, got %v", want, currentIDs(doc))
	}
}

func TestDropCrossColumnRejected(t *testing.T) {
	var c Controller
	c.BeginDrag("b", journey.Current)
	in := seedDoc()
	doc := c.Drop(in, "z", journey.Future)
	if !reflect.DeepEqual(doc, in) {
		t.Fatalf("cross-column drop must not mutate")
	}
	if c.Dragging() {
		t.Fatalf("rejected drop still ends the gesture")
	}
}

func TestDropWhileIdleIgnored(t *testing.T) {
	var c Controller
	in := seedDoc()
	doc := c.Drop(in, "a", journey.Current)
	if !reflect.DeepEqual(doc, in) {
		t.Fatalf("idle drop must be ignored")
	}
}

func TestHoverBookkeeping(t *testing.T) {
	var c Controller

	// Hovering while idle records nothing.
	c.HoverEnter("a")
	if c.HoverTarget() != "" {
		t.Fatalf("hover should be ignored while idle")
	}

	c.BeginDrag("b", journey.Current)
	c.HoverEnter("a")
	if c.HoverTarget() != "a" {
		t.Fatalf("expected hover target a, got %q", c.HoverTarget())
	}

	// A stale leave from another candidate is ignored.
	c.HoverLeave("c")
	if c.HoverTarget() != "a" {
		t.Fatalf("stale leave must not clear hover")
	}

	c.HoverLeave("a")
	if c.HoverTarget() != "" {
		t.Fatalf("matching leave should clear hover")
	}

	c.HoverEnter(journey.End)
	if c.HoverTarget() != journey.End {
		t.Fatalf("end slot is a valid hover candidate")
	}

	c.Cancel()
	if c.Dragging() || c.HoverTarget() != "" {
		t.Fatalf("cancel must reset the controller")
	}
}
