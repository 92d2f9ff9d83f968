package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Column ColumnTheme
	Footer FooterTheme
}

// ColumnTheme styles one journey column pane.
type ColumnTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Count        lipgloss.Style
	Item         lipgloss.Style
	System       lipgloss.Style
	Section      lipgloss.Style
	Draft        lipgloss.Style
	Cursor       lipgloss.Style
	DragSource   lipgloss.Style
	DropMarker   lipgloss.Style
	Empty        lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Mode   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Column: ColumnTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			FocusedFrame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(0, 1),
			Title:      lipgloss.NewStyle().Bold(true),
			Count:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Item:       lipgloss.NewStyle(),
			System:     lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
			Section:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
			Draft:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
			Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			DragSource: lipgloss.NewStyle().Faint(true),
			DropMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Empty:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Mode:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		},
	}
}
