package entities

// EventPathMode selects which event payload GITHUB_EVENT_PATH points at.
type EventPathMode int

const (
	// EventPathReal keeps the payload provided by the GitHub runner.
	EventPathReal EventPathMode = iota
	// EventPathDummy points at the bundled dummy payload.
	EventPathDummy
)

// EventPathModes lists both modes in the order they run.
var EventPathModes = []EventPathMode{EventPathReal, EventPathDummy} //nolint:gochecknoglobals // fixed parameter list

func (m EventPathMode) String() string {
	switch m {
	case EventPathReal:
		return "real"
	case EventPathDummy:
		return "dummy"
	default:
		return "unknown"
	}
}
