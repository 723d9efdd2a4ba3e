// Package views provides TUI view components for the meme picker.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jumpinjune/memepicker/internal/session"
	"github.com/jumpinjune/memepicker/internal/tui"
)

// ============================================================================
// PickerModel
// ============================================================================

// PickerModel renders the mood radios, the animated-only checkbox and the
// Get Image button. It owns only the cursor; session state comes from the
// snapshot passed to View.
type PickerModel struct {
	cursor int
	count  int
	width  int
	height int
}

// NewPickerModel creates a PickerModel over count mood tags.
func NewPickerModel(count, width, height int) PickerModel {
	return PickerModel{
		count:  count,
		width:  width,
		height: height,
	}
}

// Cursor returns the index of the highlighted mood.
func (m PickerModel) Cursor() int {
	return m.cursor
}

// Update moves the cursor and tracks the window size.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, tui.DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, tui.DefaultKeyMap.Down):
			if m.cursor < m.count-1 {
				m.cursor++
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the picker for snap. spin is the current spinner frame.
func (m PickerModel) View(snap session.Snapshot, spin, notice string) string {
	var b strings.Builder

	b.WriteString(tui.DimStyle.Render("Jumpin' June's..."))
	b.WriteString("\n")
	b.WriteString(tui.TitleStyle.Render("Meme Picker"))
	b.WriteString("\n\n")
	b.WriteString("Select Your Current Emotion")
	b.WriteString("\n\n")

	if len(snap.AvailableTags) == 0 {
		b.WriteString(tui.DimStyle.Render("  (the catalog has no moods)"))
		b.WriteString("\n")
	}
	for i, tag := range snap.AvailableTags {
		pointer := "  "
		if i == m.cursor {
			pointer = "> "
		}
		line := "( ) " + tag
		if tag == snap.SelectedMood {
			line = tui.SelectedStyle.Render("(•) " + tag)
		}
		b.WriteString(pointer + line + "\n")
	}
	b.WriteString("\n")

	check := "[ ]"
	if snap.AnimatedOnly {
		check = "[x]"
	}
	b.WriteString(fmt.Sprintf("%s Animated GIFs only\n\n", check))

	switch {
	case snap.Busy:
		b.WriteString(tui.DisabledButtonStyle.Render(spin + " Loading..."))
	case snap.CanRequest:
		b.WriteString(tui.ButtonStyle.Render("Get Image"))
	default:
		b.WriteString(tui.DisabledButtonStyle.Render("Get Image"))
	}
	b.WriteString("\n")

	if notice != "" {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render(notice))
		b.WriteString("\n")
	}

	return frame(b.String(), m.width, m.height)
}

// frame wraps content in the box style and nudges it toward the top third.
func frame(content string, width, height int) string {
	box := tui.BoxStyle
	if width > 8 {
		box = box.Width(width - 4)
	}
	boxed := box.Render(content)

	contentHeight := lipgloss.Height(boxed)
	if height > contentHeight {
		padding := (height - contentHeight) / 3
		if padding > 0 {
			boxed = strings.Repeat("\n", padding) + boxed
		}
	}
	return boxed
}
