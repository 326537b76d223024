// Package pomodoro implements a work/break interval timer as a pure state machine.
//
// A State is advanced one second at a time by Schedule.Tick. Scheduling the
// ticks, pausing and persisting the session count are left to the caller.
package pomodoro

import (
	"errors"
	"fmt"
	"time"
)

// Phase is the current interval kind.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

const (
	DefaultWork  = 25 * time.Minute
	DefaultBreak = 5 * time.Minute
)

// maxPhase bounds phase durations to one day.
const maxPhase = 24 * time.Hour

// State is a snapshot of the timer.
type State struct {
	Phase     Phase `json:"phase"`
	Remaining int   `json:"remaining_seconds"`
	Sessions  int   `json:"sessions_completed"`
}

// Schedule holds the phase durations.
type Schedule struct {
	Work  time.Duration
	Break time.Duration
}

// DefaultSchedule returns 25 minute work phases and 5 minute breaks.
func DefaultSchedule() Schedule {
	return Schedule{Work: DefaultWork, Break: DefaultBreak}
}

// Validate checks that both phases last between one second and one day.
func (s Schedule) Validate() error {
	if s.Work < time.Second {
		return errors.New("work duration must be at least 1s")
	}
	if s.Break < time.Second {
		return errors.New("break duration must be at least 1s")
	}
	if s.Work > maxPhase || s.Break > maxPhase {
		return fmt.Errorf("phase durations must not exceed %s", maxPhase)
	}
	return nil
}

// Length returns the full length of phase p in whole seconds.
func (s Schedule) Length(p Phase) int {
	if p == PhaseBreak {
		return int(s.Break / time.Second)
	}
	return int(s.Work / time.Second)
}

// Start returns a fresh work phase carrying over the completed session count.
func (s Schedule) Start(sessions int) State {
	return State{Phase: PhaseWork, Remaining: s.Length(PhaseWork), Sessions: sessions}
}

// Tick advances st by one second. A tick at zero remaining ends the phase:
// finishing a work phase counts a session, and the other phase starts in full.
func (s Schedule) Tick(st State) State {
	if st.Remaining > 0 {
		st.Remaining--
		return st
	}

	next := PhaseBreak
	if st.Phase == PhaseWork {
		st.Sessions++
	} else {
		next = PhaseWork
	}
	st.Phase = next
	st.Remaining = s.Length(next)
	return st
}

// Reset restarts the current phase, keeping the session count.
func (s Schedule) Reset(st State) State {
	if st.Phase != PhaseBreak {
		st.Phase = PhaseWork
	}
	st.Remaining = s.Length(st.Phase)
	return st
}

// Clock formats the remaining time as MM:SS.
func (st State) Clock() string {
	r := st.Remaining
	if r < 0 {
		r = 0
	}
	return fmt.Sprintf("%02d:%02d", r/60, r%60)
}

// PhaseChanged reports whether next started a new phase relative to prev.
func PhaseChanged(prev, next State) bool {
	return prev.Phase != next.Phase
}
