package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for enabled buttons, borders
	ColorBrand     = "97"  // Purple - for the active button background
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDisabled  = "238" // Dark gray - for disabled controls
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title          lipgloss.Style // Page heading
	TitleDanger    lipgloss.Style // Error panel heading
	BoxDanger      lipgloss.Style // Error panel box
	TableBorder    lipgloss.Style // Table border lines
	TableHeader    lipgloss.Style // Table header cells
	TableCell      lipgloss.Style // Table body cells
	TableCellLeft  lipgloss.Style // Left-aligned body cells (titles)
	Button         lipgloss.Style // Enabled button
	ButtonDisabled lipgloss.Style // Disabled button
	PageInfo       lipgloss.Style // "Page x of y"
	Normal         lipgloss.Style
	Hint           lipgloss.Style
	Status         lipgloss.Style // Spinner and loading line
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		MarginBottom(1),
	TitleDanger: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	TableBorder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Align(lipgloss.Center),
	TableCell: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1).
		Align(lipgloss.Center),
	TableCellLeft: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorBrand)).
		Padding(0, 2),
	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabled)).
		Padding(0, 2),
	PageInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Margin(0, 2),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}
