// Package tui implements the terminal user interface using Bubble Tea.
package tui

import "github.com/jumpinjune/memepicker/internal/session"

// SelectionDoneMsg carries the result of a RequestSelection call that ran
// off the update loop.
type SelectionDoneMsg struct {
	Outcome session.Outcome
	Err     error
}

// CtrlCResetMsg clears the pending Ctrl+C confirmation.
type CtrlCResetMsg struct{}
