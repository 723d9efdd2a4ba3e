// Package app provides the main TUI application that wires the session
// controller to the views.
package app

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jumpinjune/memepicker/internal/session"
	"github.com/jumpinjune/memepicker/internal/tui"
	"github.com/jumpinjune/memepicker/internal/tui/views"
)

const noMatchNotice = "No images match that mood. Try another one."

// Factory builds a fresh session. It is called once at start and again on
// every "Try again".
type Factory func() *session.Controller

// App is the main TUI application.
type App struct {
	newSession Factory
	ctrl       *session.Controller
	assetDir   string

	pickerView views.PickerModel
	spinner    spinner.Model
	help       help.Model
	keys       tui.KeyMap

	notice string
	width  int
	height int

	// pending is set from dispatching a selection until its result arrives.
	pending bool

	// Ctrl+C confirmation state
	ctrlCPending bool
}

// New creates a new App. assetDir prefixes image paths in the overlay.
func New(newSession Factory, assetDir string) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = tui.WarningStyle

	a := &App{
		newSession: newSession,
		assetDir:   assetDir,
		spinner:    sp,
		help:       help.New(),
		keys:       tui.DefaultKeyMap,
		width:      80,
		height:     24,
	}
	a.reset()
	return a
}

// reset discards the current session and starts a new one.
func (a *App) reset() {
	a.ctrl = a.newSession()
	a.pickerView = views.NewPickerModel(len(a.ctrl.Tags()), a.width, a.height)
	a.notice = ""
	a.pending = false
}

// Session returns the controller currently driving the UI.
func (a *App) Session() *session.Controller {
	return a.ctrl
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		var cmd tea.Cmd
		a.pickerView, cmd = a.pickerView.Update(msg)
		return a, cmd

	case tui.CtrlCResetMsg:
		a.ctrlCPending = false
		return a, nil

	case tui.SelectionDoneMsg:
		return a.handleSelectionDone(msg)

	case spinner.TickMsg:
		if !a.busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.ctrlCPending {
				return a, tea.Quit
			}
			a.ctrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := a.ctrl.Snapshot()

	switch {
	case snap.Failed:
		if key.Matches(msg, a.keys.Retry) {
			a.reset()
		}
		return a, nil

	case snap.OverlayVisible:
		if key.Matches(msg, a.keys.Close) {
			_ = a.ctrl.Dismiss()
		}
		return a, nil

	case snap.Busy, a.pending:
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Choose):
		if len(snap.AvailableTags) == 0 {
			return a, nil
		}
		a.notice = ""
		_ = a.ctrl.ChooseMood(snap.AvailableTags[a.pickerView.Cursor()])
		return a, nil

	case key.Matches(msg, a.keys.Animated):
		a.notice = ""
		_ = a.ctrl.SetAnimatedOnly(!snap.AnimatedOnly)
		return a, nil

	case key.Matches(msg, a.keys.Get):
		if !snap.CanRequest {
			return a, nil
		}
		a.notice = ""
		a.pending = true
		return a, tea.Batch(requestSelection(a.ctrl), a.spinner.Tick)
	}

	var cmd tea.Cmd
	a.pickerView, cmd = a.pickerView.Update(msg)
	return a, cmd
}

func (a *App) handleSelectionDone(msg tui.SelectionDoneMsg) (tea.Model, tea.Cmd) {
	a.pending = false
	switch {
	case msg.Err == nil && msg.Outcome == session.OutcomeNoMatch:
		a.notice = noMatchNotice
	case errors.Is(msg.Err, session.ErrBusy):
		// Another selection is resolving; its own message will follow.
	default:
		a.notice = ""
	}
	return a, nil
}

// busy reports whether a selection is dispatched or still resolving.
func (a *App) busy() bool {
	return a.pending || a.ctrl.Snapshot().Busy
}

// requestSelection runs the selection off the update loop.
func requestSelection(ctrl *session.Controller) tea.Cmd {
	return func() tea.Msg {
		outcome, err := ctrl.RequestSelection()
		return tui.SelectionDoneMsg{Outcome: outcome, Err: err}
	}
}

// View renders the current application state.
func (a *App) View() string {
	snap := a.ctrl.Snapshot()

	var content string
	switch {
	case snap.Failed:
		return views.RenderFailed(a.width, a.height)
	case snap.OverlayVisible && snap.DisplayedEntry != nil:
		content = views.RenderOverlay(*snap.DisplayedEntry, a.assetDir, a.width, a.height-2)
	default:
		if a.pending {
			snap.Busy = true
			snap.CanRequest = false
		}
		content = a.pickerView.View(snap, a.spinner.View(), a.notice)
	}

	var b strings.Builder
	b.WriteString(content)
	b.WriteString("\n")
	if a.ctrlCPending {
		b.WriteString(tui.WarningStyle.Render("Press Ctrl+C again to exit"))
	} else {
		b.WriteString(a.help.ShortHelpView(a.keys.ShortHelp()))
	}
	return b.String()
}
