// Package columnview renders one journey column: its title, its items in
// journey order, and the insertion marker while a reorder is in flight.
package columnview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/tui/theme"
)

// Model is a view-only component; mutations happen in the owning app
// model. The cursor may sit one past the last item while a drag is in
// flight, which is the drop-at-end slot.
type Model struct {
	theme theme.ColumnTheme

	column  journey.Column
	cursor  int
	focused bool

	dragSourceID string
	dropTargetID string // item id, journey.End, or ""

	width  int
	height int
}

// NewModel constructs the component for one column.
func NewModel(col journey.Column, th theme.ColumnTheme) *Model {
	return &Model{theme: th, column: col, width: 40, height: 20}
}

// SetColumn replaces the rendered column, clamping the cursor.
func (m *Model) SetColumn(col journey.Column) {
	m.column = col
	m.clampCursor(false)
}

// Column returns the rendered column.
func (m *Model) Column() journey.Column {
	return m.column
}

// SetSize configures the pane dimensions.
func (m *Model) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 5 {
		height = 5
	}
	m.width = width
	m.height = height
}

// Focus marks the pane active.
func (m *Model) Focus() { m.focused = true }

// Blur marks the pane inactive.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the pane is active.
func (m *Model) Focused() bool { return m.focused }

// CursorUp moves the selection up one row.
func (m *Model) CursorUp() {
	m.cursor--
	m.clampCursor(false)
}

// CursorDown moves the selection down one row. When endSlot is true the
// cursor may advance one past the last item.
func (m *Model) CursorDown(endSlot bool) {
	m.cursor++
	m.clampCursor(endSlot)
}

// SelectedItem returns the item under the cursor, if any.
func (m *Model) SelectedItem() (journey.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.column.Items) {
		return journey.Item{}, false
	}
	return m.column.Items[m.cursor], true
}

// CursorTarget returns the reorder target the cursor stands for: the item
// under it, or journey.End when it sits on the drop-at-end slot.
func (m *Model) CursorTarget() string {
	if m.cursor >= len(m.column.Items) {
		return journey.End
	}
	if item, ok := m.SelectedItem(); ok {
		return item.ID
	}
	return journey.End
}

// SelectID moves the cursor to the given item if present.
func (m *Model) SelectID(id string) {
	if idx := m.column.IndexOf(id); idx >= 0 {
		m.cursor = idx
	}
}

// SetDrag configures drag rendering: the faded source and the marker slot.
func (m *Model) SetDrag(sourceID, dropTargetID string) {
	m.dragSourceID = sourceID
	m.dropTargetID = dropTargetID
	if sourceID == "" {
		m.clampCursor(false)
	}
}

func (m *Model) clampCursor(endSlot bool) {
	max := len(m.column.Items) - 1
	if endSlot {
		max = len(m.column.Items)
	}
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the pane.
func (m *Model) View() string {
	inner := m.width - 4 // frame border and padding
	if inner < 12 {
		inner = 12
	}

	var b strings.Builder
	title := m.theme.Title.Render(m.column.Title)
	count := m.theme.Count.Render(fmt.Sprintf(" %d", len(m.column.Items)))
	b.WriteString(title + count + "\n\n")

	if len(m.column.Items) == 0 {
		b.WriteString(m.theme.Empty.Render("No steps yet") + "\n")
	}

	for i, item := range m.column.Items {
		if m.dropTargetID != "" && m.dropTargetID == item.ID {
			b.WriteString(m.theme.DropMarker.Render(strings.Repeat("▔", inner)) + "\n")
		}
		b.WriteString(m.renderItem(i, item, inner) + "\n")
	}
	if m.dropTargetID == journey.End {
		b.WriteString(m.theme.DropMarker.Render(strings.Repeat("▔", inner)) + "\n")
	} else if m.dragSourceID != "" && m.focused && m.cursor >= len(m.column.Items) {
		b.WriteString(m.theme.Cursor.Render("→ ") + m.theme.Empty.Render("(end)") + "\n")
	}

	frame := m.theme.Frame
	if m.focused {
		frame = m.theme.FocusedFrame
	}
	return frame.Width(m.width - 2).Height(m.height).Render(b.String())
}

func (m *Model) renderItem(idx int, item journey.Item, inner int) string {
	caret := "  "
	if m.focused && idx == m.cursor {
		caret = m.theme.Cursor.Render("→ ")
	}

	style := m.theme.Item
	switch {
	case item.ID == m.dragSourceID:
		style = m.theme.DragSource
	case item.DraftNew:
		style = m.theme.Draft
	case item.Kind == glyph.Section:
		style = m.theme.Section
	case item.Kind == glyph.System:
		style = m.theme.System
	}

	prefix := item.Kind.String() + " "
	avail := inner - lipgloss.Width(caret) - lipgloss.Width(prefix)
	if avail < 8 {
		avail = 8
	}
	wrapped := strings.Split(wordwrap.String(item.Label(), avail), "\n")
	pad := strings.Repeat(" ", lipgloss.Width(caret)+lipgloss.Width(prefix))
	for i, line := range wrapped {
		if i == 0 {
			wrapped[i] = caret + style.Render(prefix+line)
		} else {
			wrapped[i] = pad + style.Render(line)
		}
	}
	return strings.Join(wrapped, "\n")
}
