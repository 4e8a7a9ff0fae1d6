package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a screen region the AppModel delegates to: the projects table
// while loading or ready, the error panel after a failed load. Update
// returns the View so a region can replace itself.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
