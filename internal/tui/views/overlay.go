package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jumpinjune/memepicker/internal/catalog"
	"github.com/jumpinjune/memepicker/internal/tui"
)

// RenderOverlay shows the displayed entry with its resolved image path.
func RenderOverlay(e catalog.Entry, assetDir string, width, height int) string {
	var b strings.Builder

	b.WriteString(tui.DimStyle.Render("[X]"))
	b.WriteString("\n\n")
	b.WriteString(tui.SuccessStyle.Render(tui.ResolveAsset(assetDir, e.AssetPath)))
	if e.IsAnimated {
		b.WriteString(tui.DimStyle.Render("  (animated)"))
	}
	b.WriteString("\n\n")
	b.WriteString(e.AltText)
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("moods: %s", strings.Join(e.MoodTags, ", "))))

	boxed := tui.OverlayStyle.Render(b.String())
	return center(boxed, width, height)
}

// RenderFailed is the fallback shown once a session has failed.
func RenderFailed(width, height int) string {
	var b strings.Builder
	b.WriteString(tui.ErrorStyle.Render("Oops! Something went wrong."))
	b.WriteString("\n\n")
	b.WriteString(tui.ButtonStyle.Render("Try again"))
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("r: try again   q: quit"))
	return frame(b.String(), width, height)
}

func center(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
