package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the focused item, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for the outgoing panel
)

// Styles contains shared style definitions used by the menu and the demo app.
var Styles = struct {
	// Panel styles
	Title     lipgloss.Style // Panel title (bold accent)
	Back      lipgloss.Style // Back affordance in front of the title
	Separator lipgloss.Style // Rule below the title
	Content   lipgloss.Style // Free-form panel content

	// Item styles
	Item         lipgloss.Style // Normal item
	ItemFocused  lipgloss.Style // Item under the keyboard cursor
	ItemDisabled lipgloss.Style // Disabled item
	SubPanel     lipgloss.Style // Sub-panel marker

	Outgoing lipgloss.Style // Whole outgoing panel while it transitions out
	MenuBox  lipgloss.Style // Border around the menu viewport

	// App chrome
	Header lipgloss.Style
	Status lipgloss.Style
	Hint   lipgloss.Style
	Error  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Back: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Separator: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Content: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Item: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	ItemFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	ItemDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Strikethrough(true),
	SubPanel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Outgoing: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Faint(true),
	MenuBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
