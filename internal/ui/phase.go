package ui

// Phase is the load state of the page: Loading until the fetch resolves, then
// Ready or Failed for the rest of the program's life.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseReady:
		return "Ready"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
