// Package ui implements the kickview terminal interface with Bubble Tea.
//
// The root AppModel owns one load session: Init starts the single project
// fetch, Update applies its result exactly once, and afterwards only page
// navigation changes state. Sub-views implement View:
//   - ProjectsView: the paginated project table and its Previous/Next controls
//   - ErrorPanel: the failure message with the Retry action
//
// Retry does not refetch in place. It calls AppModel.Reload, which by default
// ends the program so the caller can start a fresh one.
package ui
