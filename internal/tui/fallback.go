package tui

import (
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/jumpinjune/memepicker/internal/session"
)

// ErrMoodRequired is returned when no mood is given in non-interactive mode.
var ErrMoodRequired = errors.New("mood required in non-interactive mode")

// FallbackRunner performs a single selection without a terminal UI.
type FallbackRunner struct {
	ctrl     *session.Controller
	assetDir string
	out      io.Writer
}

// NewFallbackRunner creates a new FallbackRunner.
func NewFallbackRunner(ctrl *session.Controller, assetDir string, out io.Writer) *FallbackRunner {
	return &FallbackRunner{
		ctrl:     ctrl,
		assetDir: assetDir,
		out:      out,
	}
}

// Run chooses mood, applies the animated filter and prints the drawn image.
// NoMatch is reported on out and is not an error.
func (f *FallbackRunner) Run(mood string, animatedOnly bool) error {
	if mood == "" {
		return ErrMoodRequired
	}
	if err := f.ctrl.SetAnimatedOnly(animatedOnly); err != nil {
		return err
	}
	if err := f.ctrl.ChooseMood(mood); err != nil {
		return err
	}

	outcome, err := f.ctrl.RequestSelection()
	if err != nil {
		return fmt.Errorf("selecting image: %w", err)
	}
	if outcome == session.OutcomeNoMatch {
		fmt.Fprintf(f.out, "No images match %q\n", mood)
		return nil
	}

	e := f.ctrl.Snapshot().DisplayedEntry
	fmt.Fprintf(f.out, "%s\n", ResolveAsset(f.assetDir, e.AssetPath))
	fmt.Fprintf(f.out, "  %s\n", e.AltText)
	return nil
}

// ResolveAsset joins an image name onto the configured asset directory.
func ResolveAsset(assetDir, image string) string {
	if assetDir == "" {
		return image
	}
	return path.Join(assetDir, image)
}
