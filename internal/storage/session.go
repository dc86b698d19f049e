package storage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"progresscountdown/internal/core/countdown"
)

// Session is a snapshot of a countdown, saved on exit so the next launch can
// pick up where it left off.
type Session struct {
	DurationSeconds  int             `yaml:"duration_seconds"`
	RemainingSeconds int             `yaml:"remaining_seconds"`
	State            countdown.State `yaml:"state"`
	SavedAt          time.Time       `yaml:"saved_at"`
}

// CaptureSession snapshots the timer. The timer is ticked first so the
// remaining time is current.
func CaptureSession(timer *countdown.Timer, now time.Time) Session {
	frame := timer.Tick()
	return Session{
		DurationSeconds:  frame.Duration,
		RemainingSeconds: frame.Remaining,
		State:            frame.State,
		SavedAt:          now,
	}
}

// Apply re-synchronises timer with the snapshot. A running snapshot keeps
// counting for the time the application was closed; a paused one does not.
// It reports whether the countdown was resumed. A snapshot that is not
// resumed leaves the timer untouched.
func (session Session) Apply(timer *countdown.Timer, now time.Time) bool {
	remaining := session.RemainingSeconds
	switch session.State {
	case countdown.StateRunning:
		away := now.Sub(session.SavedAt)
		if away > 0 {
			remaining -= int(away / time.Second)
		}
	case countdown.StatePaused:
	default:
		return false
	}
	if remaining <= 0 {
		return false
	}

	timer.SetDuration(session.DurationSeconds)
	timer.Start()
	timer.SetCurrentProgress(remaining)
	if session.State == countdown.StatePaused {
		timer.Pause()
	}
	return true
}

// SaveSession writes the snapshot to YAML.
func (store *Store) SaveSession(session Session) error {
	serialized, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session yaml: %w", err)
	}
	return store.write(store.sessionPath(), serialized)
}

// LoadSession reads the last snapshot. It returns ErrNoSession when none exists.
func (store *Store) LoadSession() (Session, error) {
	rawData, err := os.ReadFile(store.sessionPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("read session file: %w", err)
	}

	var session Session
	if err := yaml.Unmarshal(rawData, &session); err != nil {
		return Session{}, fmt.Errorf("parse session yaml: %w", err)
	}
	return session, nil
}

// ClearSession removes the snapshot, if any.
func (store *Store) ClearSession() error {
	if err := os.Remove(store.sessionPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
