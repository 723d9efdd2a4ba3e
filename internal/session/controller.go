package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jumpinjune/memepicker/internal/catalog"
	"github.com/jumpinjune/memepicker/internal/log"
	"github.com/jumpinjune/memepicker/internal/picker"
)

// Recorder receives diagnostic events. *log.Logger satisfies it.
type Recorder interface {
	Append(event log.LogEvent) error
}

// Options configures a Controller.
type Options struct {
	// AnimatedOnly is the initial value of the animated-only filter.
	AnimatedOnly bool
	// Recorder, if set, receives one event per transition.
	Recorder Recorder
}

// Controller mediates every transition of one user session over a shared,
// read-only dataset. It is safe for concurrent use; at most one selection
// is in flight at a time.
type Controller struct {
	id       string
	entries  []catalog.Entry
	tags     []string
	rng      picker.RNG
	recorder Recorder

	mu           sync.Mutex
	state        State
	mood         string
	animatedOnly bool
	displayed    *catalog.Entry
	fault        error
}

// New builds a controller in StateIdle. Tags are extracted once here.
func New(entries []catalog.Entry, rng picker.RNG, opts Options) *Controller {
	c := &Controller{
		id:           uuid.New().String(),
		entries:      entries,
		tags:         picker.ExtractTags(entries),
		rng:          rng,
		recorder:     opts.Recorder,
		state:        StateIdle,
		animatedOnly: opts.AnimatedOnly,
	}
	c.record(log.LogEvent{Event: log.EventSessionStarted, AnimatedOnly: c.animatedOnly, Matches: len(entries)})
	return c
}

// ID returns the session identifier used in diagnostics.
func (c *Controller) ID() string {
	return c.id
}

// Tags returns a copy of the available mood tags.
func (c *Controller) Tags() []string {
	return append([]string(nil), c.tags...)
}

// ChooseMood selects tag and clears any displayed result. An empty tag
// returns the controller to StateIdle.
func (c *Controller) ChooseMood(tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateFailed:
		return ErrFailed
	case StateSelecting:
		return ErrBusy
	}

	c.mood = tag
	c.displayed = nil
	if tag == "" {
		c.state = StateIdle
	} else {
		c.state = StateReady
	}
	c.record(log.LogEvent{Event: log.EventMoodChosen, Mood: tag, AnimatedOnly: c.animatedOnly})
	return nil
}

// SetAnimatedOnly updates the filter flag. It does not touch a result that
// is already displayed.
func (c *Controller) SetAnimatedOnly(flag bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateFailed:
		return ErrFailed
	case StateSelecting:
		return ErrBusy
	}

	c.animatedOnly = flag
	c.record(log.LogEvent{Event: log.EventAnimatedToggled, Mood: c.mood, AnimatedOnly: flag})
	return nil
}

// RequestSelection draws one entry for the chosen mood and filter. It is
// legal only from StateReady. A second call while one is in flight returns
// ErrBusy. OutcomeNoMatch with a nil error means nothing matched.
//
// Any fault in the computation moves the controller to StateFailed and is
// returned as a *FaultError; no partial state survives.
func (c *Controller) RequestSelection() (Outcome, error) {
	c.mu.Lock()
	switch c.state {
	case StateFailed:
		c.mu.Unlock()
		return 0, ErrFailed
	case StateSelecting:
		c.mu.Unlock()
		return 0, ErrBusy
	case StateIdle:
		c.mu.Unlock()
		return 0, ErrNoMood
	case StateShowing:
		c.mu.Unlock()
		return 0, fmt.Errorf("%w: dismiss the current result first", ErrInvalidTransition)
	}
	c.state = StateSelecting
	mood, animatedOnly := c.mood, c.animatedOnly
	c.mu.Unlock()

	picked, found, matches, err := c.draw(mood, animatedOnly)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.fail(err)
		c.record(log.LogEvent{Event: log.EventSessionFailed, Mood: mood, AnimatedOnly: animatedOnly, Error: err.Error()})
		return 0, &FaultError{Cause: err}
	}
	if !found {
		c.state = StateReady
		c.record(log.LogEvent{Event: log.EventSelectionEmpty, Mood: mood, AnimatedOnly: animatedOnly})
		return OutcomeNoMatch, nil
	}

	c.displayed = &picked
	c.state = StateShowing
	c.record(log.LogEvent{
		Event:        log.EventSelectionShown,
		Mood:         mood,
		AnimatedOnly: animatedOnly,
		Image:        picked.AssetPath,
		Matches:      matches,
	})
	return OutcomeShown, nil
}

// draw is the fault boundary: panics from matching or the RNG, and picked
// entries that fail validation, come back as err.
func (c *Controller) draw(mood string, animatedOnly bool) (picked catalog.Entry, found bool, matches int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	candidates := picker.SelectMatches(c.entries, mood, animatedOnly)
	picked, found = picker.PickOne(candidates, c.rng)
	if found {
		if verr := picked.Validate(); verr != nil {
			return catalog.Entry{}, false, 0, fmt.Errorf("corrupt entry %q: %w", picked.AssetPath, verr)
		}
		picked.MoodTags = append([]string(nil), picked.MoodTags...)
	}
	return picked, found, len(candidates), nil
}

// fail clears all session state and enters StateFailed. Caller holds mu.
func (c *Controller) fail(err error) {
	c.state = StateFailed
	c.mood = ""
	c.animatedOnly = false
	c.displayed = nil
	c.fault = err
}

// Dismiss hides the displayed result. It is legal only from StateShowing.
func (c *Controller) Dismiss() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateFailed:
		return ErrFailed
	case StateShowing:
	default:
		return fmt.Errorf("%w: nothing to dismiss in state %s", ErrInvalidTransition, c.state)
	}

	c.displayed = nil
	c.state = StateReady
	c.record(log.LogEvent{Event: log.EventOverlayDismissed, Mood: c.mood})
	return nil
}

// Snapshot returns a copy of the presentation state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateFailed {
		return Snapshot{
			ID:     c.id,
			State:  StateFailed,
			Failed: true,
			Fault:  c.fault.Error(),
		}
	}

	s := Snapshot{
		ID:             c.id,
		State:          c.state,
		SelectedMood:   c.mood,
		AnimatedOnly:   c.animatedOnly,
		AvailableTags:  append([]string(nil), c.tags...),
		OverlayVisible: c.state == StateShowing,
		Busy:           c.state == StateSelecting,
		CanRequest:     c.state == StateReady && c.mood != "",
	}
	if c.displayed != nil {
		e := *c.displayed
		e.MoodTags = append([]string(nil), e.MoodTags...)
		s.DisplayedEntry = &e
	}
	return s
}

// record forwards an event to the recorder. Recorder errors are dropped.
func (c *Controller) record(event log.LogEvent) {
	if c.recorder == nil {
		return
	}
	event.Session = c.id
	_ = c.recorder.Append(event)
}
