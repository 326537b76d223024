// Package state persists the interval timer's completed session count.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Timer is the persisted timer state.
type Timer struct {
	SessionsCompleted int       `yaml:"sessions_completed"`
	UpdatedAt         time.Time `yaml:"updated_at,omitempty"`
}

// DefaultPath returns the default state file path.
func DefaultPath() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, "microtools", "pomodoro.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".microtools", "pomodoro.yml")
	}

	return filepath.Join(home, ".local", "state", "microtools", "pomodoro.yml")
}

// Load reads the timer state. A missing file yields the zero state.
func Load(path string) (*Timer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Timer{}, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var t Timer
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if t.SessionsCompleted < 0 {
		t.SessionsCompleted = 0
	}

	return &t, nil
}

// Save writes the timer state, stamping UpdatedAt.
func (t *Timer) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	t.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// Clear removes the state file. Removing a missing file is not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
