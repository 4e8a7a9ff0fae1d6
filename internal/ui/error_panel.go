package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ErrorPanelTitle heads the panel shown when loading fails.
const ErrorPanelTitle = "Something went wrong"

// ErrorPanel replaces the table and pagination when the fetch fails.
// It shows the error message and a single Retry action.
type ErrorPanel struct {
	Title   string
	Message string
}

// Ensure ErrorPanel implements View.
var _ View = (*ErrorPanel)(nil)

// NewErrorPanel creates a panel for message.
func NewErrorPanel(message string) *ErrorPanel {
	return &ErrorPanel{
		Title:   ErrorPanelTitle,
		Message: message,
	}
}

// Init implements View.
func (p *ErrorPanel) Init() tea.Cmd {
	return nil
}

// Update implements View. Retry is handled by AppModel.
func (p *ErrorPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	return p, nil
}

// View implements View.
func (p *ErrorPanel) View() string {
	content := Styles.TitleDanger.Render(p.Title) + "\n\n"
	content += Styles.Normal.Render(p.Message) + "\n\n"
	content += Styles.Button.Render("Retry")
	content += "  " + Styles.Hint.Render("r/Enter: retry (reloads from scratch)")
	return Styles.BoxDanger.Render(content)
}
