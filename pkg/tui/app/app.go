// Package app hosts the Bubble Tea editor for one journey map.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	appsvc "tableflip.dev/jmap/pkg/app"
	"tableflip.dev/jmap/pkg/drag"
	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/journey"
	"tableflip.dev/jmap/pkg/sync"
	"tableflip.dev/jmap/pkg/tui/components/columnview"
	"tableflip.dev/jmap/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeCommand
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionEdit
	actionRenameMap
	actionRenameColumn
)

// messages
type errMsg struct{ err error }
type remoteDocMsg struct{ doc journey.Document }

// Model contains the editor state for one map document.
type Model struct {
	ctrl *sync.Controller
	drag *drag.Controller
	th   theme.Theme

	doc   journey.Document
	panes [2]*columnview.Model
	focus int // 0 current, 1 future

	mode   mode
	action action
	// editID is the item the insert overlay is editing; editWasDraft marks
	// a just-added item so esc can take the add back.
	editID       string
	editWasDraft bool
	input        textinput.Model

	pendingKind glyph.Kind
	status      string

	termWidth  int
	termHeight int
}

const normalHelp = "NORMAL: h/l panes, j/k move, o add, i edit, dd delete, m grab/drop, c to future, t/y/n kind, R title, T column, ? help"

// New creates the editor model on top of a started sync controller.
func New(ctrl *sync.Controller, dc *drag.Controller) *Model {
	th := theme.Default()
	doc := ctrl.Document()

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := &Model{
		ctrl:        ctrl,
		drag:        dc,
		th:          th,
		doc:         doc,
		focus:       0,
		mode:        modeNormal,
		input:       ti,
		pendingKind: glyph.Step,
		status:      normalHelp,
	}
	m.panes[0] = columnview.NewModel(doc.Current, th.Column)
	m.panes[1] = columnview.NewModel(doc.Future, th.Column)
	m.panes[0].Focus()
	return m
}

// Init subscribes to remote document updates.
func (m *Model) Init() tea.Cmd {
	return m.waitForRemote()
}

func (m *Model) waitForRemote() tea.Cmd {
	updates := m.ctrl.Updates()
	return func() tea.Msg {
		doc, ok := <-updates
		if !ok {
			return nil
		}
		return remoteDocMsg{doc: doc}
	}
}

func (m *Model) focusedColumn() journey.ColumnID {
	if m.focus == 0 {
		return journey.Current
	}
	return journey.Future
}

func (m *Model) pane() *columnview.Model {
	return m.panes[m.focus]
}

// setDoc installs a new document, refreshing both panes and the drag
// rendering state.
func (m *Model) setDoc(doc journey.Document) {
	m.doc = doc
	m.panes[0].SetColumn(doc.Current)
	m.panes[1].SetColumn(doc.Future)
	m.refreshDrag()
}

func (m *Model) refreshDrag() {
	src, dragging := m.drag.Source()
	for i, pane := range m.panes {
		sourceID, targetID := "", ""
		if dragging && src.ColumnID == pane.Column().ID {
			sourceID = src.ItemID
			if i == m.focus {
				targetID = m.drag.HoverTarget()
			}
		}
		pane.SetDrag(sourceID, targetID)
	}
}

// apply records a local mutation: panes re-render immediately and the
// controller schedules the debounced write.
func (m *Model) apply(doc journey.Document) {
	m.setDoc(doc)
	m.ctrl.Apply(doc)
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case remoteDocMsg:
		// The store is the read-back authority; a received document
		// replaces local state without scheduling a write.
		m.setDoc(msg.doc)
		cmds = append(cmds, m.waitForRemote())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
				m.status = normalHelp
			}
		case modeInsert:
			cmds = append(cmds, m.updateInsert(msg)...)
		case modeCommand:
			cmds = append(cmds, m.updateCommand(msg)...)
		case modeNormal:
			cmds = append(cmds, m.updateNormal(msg)...)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	dragging := m.drag.Dragging()

	switch msg.String() {
	case ":":
		m.mode = modeCommand
		m.input.Reset()
		m.input.Placeholder = "command"
		if cmd := m.input.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, textinput.Blink)
		m.status = "COMMAND: :q quits"

	case "h", "left", "l", "right":
		if dragging {
			// Cross-column drops are rejected; keep the gesture in its
			// column instead of letting focus wander.
			m.status = "Drop stays in the same column (esc cancels)"
			break
		}
		if msg.String() == "h" || msg.String() == "left" {
			m.focus = 0
		} else {
			m.focus = 1
		}
		m.panes[0].Blur()
		m.panes[1].Blur()
		m.pane().Focus()

	case "j", "down":
		m.pane().CursorDown(dragging)
		if dragging {
			m.drag.HoverEnter(m.pane().CursorTarget())
			m.refreshDrag()
		}
	case "k", "up":
		m.pane().CursorUp()
		if dragging {
			m.drag.HoverEnter(m.pane().CursorTarget())
			m.refreshDrag()
		}

	case "m", " ":
		if dragging {
			m.dropAtCursor()
			break
		}
		if item, ok := m.pane().SelectedItem(); ok {
			m.drag.BeginDrag(item.ID, m.focusedColumn())
			m.drag.HoverEnter(m.pane().CursorTarget())
			m.refreshDrag()
			m.status = "MOVE: j/k choose a slot, m or enter drops, esc cancels"
		}
	case "enter":
		if dragging {
			m.dropAtCursor()
		}
	case "esc":
		if dragging {
			m.drag.Cancel()
			m.refreshDrag()
			m.status = "Move cancelled"
		}

	case "o", "O":
		if dragging {
			break
		}
		m.addItem(&cmds)

	case "i":
		if dragging {
			break
		}
		if item, ok := m.pane().SelectedItem(); ok {
			m.openEditor(&cmds, item, false)
		}

	case "d":
		if dragging {
			break
		}
		if item, ok := m.pane().SelectedItem(); ok {
			m.apply(journey.DeleteItem(m.doc, m.focusedColumn(), item.ID))
			m.status = "Deleted"
		}

	case "c":
		if dragging {
			break
		}
		if m.focusedColumn() != journey.Current {
			m.status = "Duplicate works from the current column"
			break
		}
		if item, ok := m.pane().SelectedItem(); ok {
			m.apply(journey.DuplicateToFuture(m.doc, item.ID))
			m.status = "Copied to Future State"
		}

	case "t":
		m.pendingKind = glyph.Step
		m.status = "New items: journey step"
	case "y":
		m.pendingKind = glyph.System
		m.status = "New items: system step"
	case "n":
		m.pendingKind = glyph.Section
		m.status = "New items: section"

	case "R":
		m.mode = modeInsert
		m.action = actionRenameMap
		m.input.Placeholder = "Map title"
		m.input.SetValue(m.doc.Title)
		m.input.CursorEnd()
		if cmd := m.input.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, textinput.Blink)
	case "T":
		m.mode = modeInsert
		m.action = actionRenameColumn
		m.input.Placeholder = "Column title"
		m.input.SetValue(m.doc.Column(m.focusedColumn()).Title)
		m.input.CursorEnd()
		if cmd := m.input.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, textinput.Blink)

	case "?":
		m.mode = modeHelp
	case "q":
		m.status = "Use :q to quit"
	}
	return cmds
}

// addItem appends a draft of the pending kind and opens the inline editor
// on it, mirroring the draft-then-commit flow.
func (m *Model) addItem(cmds *[]tea.Cmd) {
	doc, item := journey.AddItem(m.doc, m.focusedColumn(), m.pendingKind)
	m.apply(doc)
	m.pane().SelectID(item.ID)
	m.openEditor(cmds, item, true)
}

func (m *Model) openEditor(cmds *[]tea.Cmd, item journey.Item, wasDraft bool) {
	m.mode = modeInsert
	m.action = actionEdit
	m.editID = item.ID
	m.editWasDraft = wasDraft
	m.input.Placeholder = item.Label()
	m.input.SetValue(item.Content)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) dropAtCursor() {
	target := m.pane().CursorTarget()
	doc := m.drag.Drop(m.doc, target, m.focusedColumn())
	m.apply(doc)
	m.status = normalHelp
}

func (m *Model) updateInsert(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.action {
		case actionEdit:
			if value != "" {
				m.apply(journey.UpdateContent(m.doc, m.focusedColumn(), m.editID, value))
				m.status = "Saved"
			} else if m.editWasDraft {
				m.apply(journey.DeleteItem(m.doc, m.focusedColumn(), m.editID))
				m.status = "Add cancelled"
			}
		case actionRenameMap:
			if value != "" {
				m.apply(journey.UpdateTitle(m.doc, value))
				m.status = "Title updated"
			}
		case actionRenameColumn:
			if value != "" {
				m.apply(journey.UpdateColumnTitle(m.doc, m.focusedColumn(), value))
				m.status = "Column renamed"
			}
		}
		m.closeEditor()
	case "esc":
		if m.action == actionEdit && m.editWasDraft {
			m.apply(journey.DeleteItem(m.doc, m.focusedColumn(), m.editID))
			m.status = "Add cancelled"
		} else {
			m.status = "Cancelled"
		}
		m.closeEditor()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m *Model) closeEditor() {
	m.mode = modeNormal
	m.action = actionNone
	m.editID = ""
	m.editWasDraft = false
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) updateCommand(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		switch input {
		case "q", "quit", "exit":
			cmds = append(cmds, tea.Quit)
		case "":
		default:
			m.status = fmt.Sprintf("Unknown command: %s", input)
		}
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.status = normalHelp
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

// View renders the title, both panes side by side, any input overlay, and
// the status footer.
func (m *Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Underline(true).Render(m.doc.Title)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.panes[0].View(),
		lipgloss.NewStyle().Padding(0, 1).Render(" "),
		m.panes[1].View(),
	)

	out := title + "\n\n" + body

	switch m.mode {
	case modeInsert:
		prompt := "Edit: "
		switch m.action {
		case actionRenameMap:
			prompt = "Title: "
		case actionRenameColumn:
			prompt = "Column: "
		}
		out += "\n\n" + prompt + m.input.View()
	case modeCommand:
		out += "\n\n:" + m.input.View()
	case modeHelp:
		help := "Keys: h/l panes, j/k move, o add (t/y/n pick kind), i edit, d delete, m grab then m/enter drop, esc cancel, c copy to future, R map title, T column title, :q quit"
		out += "\n\n" + m.th.Footer.Help.Italic(true).Render(help)
	}

	mode := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeCommand: "CMD", modeHelp: "HELP"}[m.mode]
	footer := m.th.Footer.Mode.Render("["+mode+"] ") +
		m.th.Footer.Status.Render(fmt.Sprintf("%s (add kind: %s)", m.status, m.pendingKind.Glyph().Noun))
	return out + "\n\n" + footer
}

// applySizes splits the terminal between the two panes.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	paneWidth := (m.termWidth - 3) / 2
	height := m.termHeight - 8
	if height < 5 {
		height = 5
	}
	m.panes[0].SetSize(paneWidth, height)
	m.panes[1].SetSize(paneWidth, height)
}

// Run opens the editor for one of the current user's projects and blocks
// until it exits.
func Run(svc *appsvc.Service, projectID string) error {
	key, err := svc.Key(projectID)
	if err != nil {
		return err
	}
	ctrl := sync.New(svc.Persistence, key)
	if err := ctrl.Start(context.Background()); err != nil {
		return err
	}
	defer ctrl.Close()

	p := tea.NewProgram(New(ctrl, &drag.Controller{}), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
