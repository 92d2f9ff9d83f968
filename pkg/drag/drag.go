// Package drag tracks an in-progress reorder gesture and resolves drops
// into journey mutations.
package drag

import "tableflip.dev/jmap/pkg/journey"

// Source identifies the item being dragged and the column it came from.
type Source struct {
	ItemID   string
	ColumnID journey.ColumnID
}

// Controller is a per-session drag state machine: Idle until BeginDrag,
// Dragging until Drop or Cancel. While dragging it carries an optional
// hover target used to place the insertion marker; the hover target never
// mutates data on its own.
//
// Controllers are not safe for concurrent use; a session owns exactly one.
type Controller struct {
	source *Source
	hover  string
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.source != nil
}

// Source returns the active drag source, if any.
func (c *Controller) Source() (Source, bool) {
	if c.source == nil {
		return Source{}, false
	}
	return *c.source, true
}

// HoverTarget returns the current insertion-marker candidate, or "".
func (c *Controller) HoverTarget() string {
	return c.hover
}

// BeginDrag starts a gesture from the given item. Any kind of item may be
// dragged, sections included. Starting a new drag replaces a stale one.
func (c *Controller) BeginDrag(itemID string, columnID journey.ColumnID) {
	if itemID == "" || !columnID.Valid() {
		return
	}
	c.source = &Source{ItemID: itemID, ColumnID: columnID}
	c.hover = ""
}

// HoverEnter records the candidate the pointer is over. Ignored while Idle.
// journey.End is a valid candidate for the drop-at-end affordance.
func (c *Controller) HoverEnter(candidateID string) {
	if c.source == nil {
		return
	}
	c.hover = candidateID
}

// HoverLeave clears the hover target if it still matches candidateID.
// Stale leaves from a different candidate are ignored.
func (c *Controller) HoverLeave(candidateID string) {
	if c.hover == candidateID {
		c.hover = ""
	}
}

// Drop resolves the gesture against the target: same-column drops reorder
// via journey.MoveItem (targetID may be journey.End), cross-column drops
// are rejected without mutation. Either way the controller returns to
// Idle. A drop with no drag in progress returns the document unchanged.
func (c *Controller) Drop(doc journey.Document, targetID string, targetColumnID journey.ColumnID) journey.Document {
	src := c.source
	c.source = nil
	c.hover = ""
	if src == nil {
		return doc
	}
	if src.ColumnID != targetColumnID {
		return doc
	}
	return journey.MoveItem(doc, src.ColumnID, src.ItemID, targetID)
}

// Cancel abandons the gesture without mutating anything.
func (c *Controller) Cancel() {
	c.source = nil
	c.hover = ""
}
