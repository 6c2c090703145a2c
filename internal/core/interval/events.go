package interval

import "time"

// State represents the current Timer phase.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateAlerting State = "alerting"
	StatePaused   State = "paused"
)

// Style is the display style tag for a phase. Exactly one is active at a time.
type Style string

const (
	StyleIdle     Style = "idle"
	StyleRunning  Style = "running"
	StyleAlerting Style = "alerting"
	StylePaused   Style = "paused"
)

// Style returns the display style for the state.
func (state State) Style() Style {
	switch state {
	case StateRunning:
		return StyleRunning
	case StateAlerting:
		return StyleAlerting
	case StatePaused:
		return StylePaused
	default:
		return StyleIdle
	}
}

// EventType defines the type of Timer event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
)

// Event represents a Timer update for observers.
type Event struct {
	Type       EventType
	State      State
	Remaining  time.Duration
	Repetition int
	At         time.Time
}
