// Package log provides structured event logging.
// This file appends JSON events to log.jsonl.
package log

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventSessionStarted   = "session_started"
	EventMoodChosen       = "mood_chosen"
	EventAnimatedToggled  = "animated_toggled"
	EventSelectionShown   = "selection_shown"
	EventSelectionEmpty   = "selection_empty"
	EventOverlayDismissed = "overlay_dismissed"
	EventSessionFailed    = "session_failed"
)

// LogEvent represents a single structured event written to the log.
type LogEvent struct {
	Time         time.Time `json:"time"`
	Event        string    `json:"event"`
	Session      string    `json:"session,omitempty"`
	Mood         string    `json:"mood,omitempty"`
	AnimatedOnly bool      `json:"animated_only,omitempty"`
	Image        string    `json:"image,omitempty"`
	Matches      int       `json:"matches,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// Logger writes append-only JSONL events to a log file.
type Logger struct {
	path string
	mu   sync.Mutex
}

// NewLogger creates a Logger that writes to .memepicker/log.jsonl inside dir.
// Creates the .memepicker/ directory if it does not already exist.
// Does not truncate an existing log file.
func NewLogger(dir string) (*Logger, error) {
	logDir := filepath.Join(dir, ".memepicker")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create .memepicker directory: %w", err)
	}

	return &Logger{
		path: filepath.Join(logDir, "log.jsonl"),
	}, nil
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}

// Append records event as one JSON line. A zero Time is stamped with the
// current UTC time.
func (l *Logger) Append(event LogEvent) error {
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if err := json.NewEncoder(f).Encode(event); err != nil {
		f.Close()
		return fmt.Errorf("write %s event: %w", event.Event, err)
	}
	return f.Close()
}

// ReadAll returns every recorded event in order. A missing log is empty.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	return l.read(func(LogEvent) bool { return true })
}

// ReadSession returns the events recorded by one session.
func (l *Logger) ReadSession(id string) ([]LogEvent, error) {
	return l.read(func(e LogEvent) bool { return e.Session == id })
}

func (l *Logger) read(keep func(LogEvent) bool) ([]LogEvent, error) {
	events := []LogEvent{}

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return events, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	for n := 1; ; n++ {
		var e LogEvent
		err := dec.Decode(&e)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse log event %d: %w", n, err)
		}
		if keep(e) {
			events = append(events, e)
		}
	}
	return events, nil
}
