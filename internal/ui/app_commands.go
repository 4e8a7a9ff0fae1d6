package ui

import (
	"context"

	"kickview/internal/kickstarter"

	tea "github.com/charmbracelet/bubbletea"
)

// ProjectSource fetches the full project list.
type ProjectSource interface {
	Fetch(ctx context.Context) ([]kickstarter.Project, error)
}

// loadProjectsCmd returns a command that performs the single fetch for a
// session and reports the outcome as ProjectsLoadedMsg or ProjectsFailedMsg.
// ctx is the owning model's lifetime; Close cancels it.
func loadProjectsCmd(ctx context.Context, session uint64, src ProjectSource) tea.Cmd {
	return func() tea.Msg {
		projects, err := src.Fetch(ctx)
		if err != nil {
			return ProjectsFailedMsg{Session: session, Err: err}
		}
		if projects == nil {
			projects = []kickstarter.Project{}
		}
		return ProjectsLoadedMsg{Session: session, Projects: projects}
	}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
