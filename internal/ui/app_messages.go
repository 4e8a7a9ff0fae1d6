package ui

import "kickview/internal/kickstarter"

// ProjectsLoadedMsg is sent when the fetch succeeds.
// Session identifies the AppModel that issued the fetch; other models drop it.
type ProjectsLoadedMsg struct {
	Session  uint64
	Projects []kickstarter.Project
}

// ProjectsFailedMsg is sent when the fetch fails for any reason.
type ProjectsFailedMsg struct {
	Session uint64
	Err     error
}

// PrevPageMsg moves to the previous page (left, h, p).
type PrevPageMsg struct{}

// NextPageMsg moves to the next page (right, l, n).
type NextPageMsg struct{}

// FirstPageMsg jumps to page 1 (home, g).
type FirstPageMsg struct{}

// LastPageMsg jumps to the last page (end, G).
type LastPageMsg struct{}

// RetryMsg is sent when the user activates Retry on the error panel.
type RetryMsg struct{}
