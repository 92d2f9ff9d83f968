package journey

import (
	"github.com/google/uuid"

	"tableflip.dev/jmap/pkg/glyph"
)

// Item is one entry in a journey column: a step, a system action, or a
// section divider. Identity is the ID; order is the position in the owning
// column's item list.
type Item struct {
	ID      string     `json:"id"`
	Kind    glyph.Kind `json:"type"`
	Content string     `json:"content"`

	// DraftNew is true only between creation and the first content commit.
	// It exists so UIs can auto-open the inline editor; it is cleared on
	// the first edit and is meaningless once persisted.
	DraftNew bool `json:"isNew,omitempty"`
}

// NewItem creates an empty draft item of the given kind with a fresh id.
func NewItem(kind glyph.Kind) Item {
	return Item{
		ID:       uuid.NewString(),
		Kind:     kind,
		Content:  "",
		DraftNew: true,
	}
}

// Label returns the display text for the item, falling back to the
// placeholder used when content is empty.
func (i Item) Label() string {
	if i.Content != "" {
		return i.Content
	}
	switch i.Kind {
	case glyph.Section:
		return "Unnamed Section"
	case glyph.System:
		return "New system step..."
	default:
		return "New journey step..."
	}
}
