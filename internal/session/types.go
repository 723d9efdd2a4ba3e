// Package session owns the picker's per-user state machine.
package session

import "github.com/jumpinjune/memepicker/internal/catalog"

// State is a controller's position in the selection lifecycle.
type State int

const (
	StateIdle      State = iota // no mood chosen
	StateReady                  // mood chosen, nothing shown
	StateSelecting              // selection in flight
	StateShowing                // overlay visible
	StateFailed                 // terminal until the controller is rebuilt
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateSelecting:
		return "selecting"
	case StateShowing:
		return "showing"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the non-error result of a selection request.
type Outcome int

const (
	OutcomeShown   Outcome = iota + 1 // an entry is now displayed
	OutcomeNoMatch                    // nothing matched; not a failure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeShown:
		return "shown"
	case OutcomeNoMatch:
		return "no match"
	default:
		return "none"
	}
}

// Snapshot is everything a renderer needs for one frame. When Failed is set
// only ID, State, Failed and Fault are populated.
type Snapshot struct {
	ID             string
	State          State
	SelectedMood   string
	AnimatedOnly   bool
	AvailableTags  []string
	DisplayedEntry *catalog.Entry
	OverlayVisible bool
	Busy           bool
	Failed         bool
	Fault          string

	// CanRequest mirrors the enabled state of the "Get Image" control.
	CanRequest bool
}
