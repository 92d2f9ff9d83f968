package journey

import (
	"github.com/google/uuid"

	"tableflip.dev/jmap/pkg/glyph"
)

// End is the synthetic drop target below a column's item list. Moving an
// item onto it appends the item to the tail.
const End = "end"

// Mutations are pure: each takes a document and returns a new one, leaving
// the input untouched. Operations referencing a missing item or column are
// silent no-ops returning the input unchanged, because drag events and
// stale UI references make "target vanished mid-gesture" a normal
// occurrence rather than an error.

// AddItem appends a fresh draft item of the given kind to the named column
// and returns the new document along with the created item.
func AddItem(doc Document, columnID ColumnID, kind glyph.Kind) (Document, Item) {
	if !columnID.Valid() || !kind.Valid() {
		return doc, Item{}
	}
	item := NewItem(kind)
	out := doc.Clone()
	col := out.Column(columnID)
	col.Items = append(col.Items, item)
	out.setColumn(col)
	return out, item
}

// DeleteItem removes the item with the given id from the named column.
func DeleteItem(doc Document, columnID ColumnID, itemID string) Document {
	if !columnID.Valid() {
		return doc
	}
	col := doc.Column(columnID)
	idx := col.IndexOf(itemID)
	if idx < 0 {
		return doc
	}
	out := doc.Clone()
	col = out.Column(columnID)
	col.Items = append(col.Items[:idx], col.Items[idx+1:]...)
	out.setColumn(col)
	return out
}

// UpdateContent replaces the item's content and clears its draft flag.
func UpdateContent(doc Document, columnID ColumnID, itemID, content string) Document {
	if !columnID.Valid() {
		return doc
	}
	col := doc.Column(columnID)
	idx := col.IndexOf(itemID)
	if idx < 0 {
		return doc
	}
	out := doc.Clone()
	col = out.Column(columnID)
	col.Items[idx].Content = content
	col.Items[idx].DraftNew = false
	out.setColumn(col)
	return out
}

// UpdateTitle sets the map title.
func UpdateTitle(doc Document, title string) Document {
	out := doc.Clone()
	out.Title = title
	return out
}

// UpdateColumnTitle sets the display title of the named column.
func UpdateColumnTitle(doc Document, columnID ColumnID, title string) Document {
	if !columnID.Valid() {
		return doc
	}
	out := doc.Clone()
	col := out.Column(columnID)
	col.Title = title
	out.setColumn(col)
	return out
}

// MoveItem reorders within a single column: the source item is removed and
// re-inserted immediately before the target item, or appended to the tail
// when the target is End. Insertion is always "before target" so the result
// depends only on (remove source, insert before target).
//
// A target living in the opposite column marks a cross-column drop, which
// is unsupported: the move is rejected and the document returned unchanged.
// If the target can no longer be located after the source is removed (the
// item was dropped on itself), the item is appended to the tail so it is
// never lost.
func MoveItem(doc Document, columnID ColumnID, sourceID, targetID string) Document {
	if !columnID.Valid() || sourceID == "" {
		return doc
	}
	col := doc.Column(columnID)
	if targetID != End && col.IndexOf(targetID) < 0 {
		// Either a cross-column drop or a target deleted mid-gesture.
		return doc
	}
	from := col.IndexOf(sourceID)
	if from < 0 {
		return doc
	}

	out := doc.Clone()
	col = out.Column(columnID)
	moved := col.Items[from]
	col.Items = append(col.Items[:from], col.Items[from+1:]...)

	if targetID == End {
		col.Items = append(col.Items, moved)
		out.setColumn(col)
		return out
	}

	to := col.IndexOf(targetID)
	if to < 0 {
		// Target was the source itself; keep the item at the tail rather
		// than dropping it.
		col.Items = append(col.Items, moved)
		out.setColumn(col)
		return out
	}
	col.Items = append(col.Items, Item{})
	copy(col.Items[to+1:], col.Items[to:])
	col.Items[to] = moved
	out.setColumn(col)
	return out
}

// DuplicateToFuture copies the identified item from the Current column to
// the tail of the Future column under a fresh id. Duplication is one-way;
// items already in Future cannot be duplicated.
func DuplicateToFuture(doc Document, itemID string) Document {
	idx := doc.Current.IndexOf(itemID)
	if idx < 0 {
		return doc
	}
	src := doc.Current.Items[idx]
	dup := Item{
		ID:      uuid.NewString(),
		Kind:    src.Kind,
		Content: src.Content,
	}
	out := doc.Clone()
	out.Future.Items = append(out.Future.Items, dup)
	return out
}
