package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule()
	assert.Equal(t, 25*60, s.Length(PhaseWork))
	assert.Equal(t, 5*60, s.Length(PhaseBreak))
	require.NoError(t, s.Validate())
}

func TestSchedule_Validate(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		errMsg   string
	}{
		{"valid", Schedule{Work: time.Minute, Break: time.Second}, ""},
		{"zero work", Schedule{Break: time.Minute}, "work duration must be at least 1s"},
		{"sub-second break", Schedule{Work: time.Minute, Break: time.Millisecond}, "break duration must be at least 1s"},
		{"too long", Schedule{Work: 25 * time.Hour, Break: time.Minute}, "must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSchedule_Start(t *testing.T) {
	s := Schedule{Work: 3 * time.Second, Break: 2 * time.Second}
	assert.Equal(t, State{Phase: PhaseWork, Remaining: 3, Sessions: 4}, s.Start(4))
}

func TestSchedule_Tick(t *testing.T) {
	s := Schedule{Work: 2 * time.Second, Break: time.Second}

	st := s.Start(0)
	var seen []State
	for i := 0; i < 8; i++ {
		st = s.Tick(st)
		seen = append(seen, st)
	}

	assert.Equal(t, []State{
		{Phase: PhaseWork, Remaining: 1, Sessions: 0},
		{Phase: PhaseWork, Remaining: 0, Sessions: 0},
		{Phase: PhaseBreak, Remaining: 1, Sessions: 1},
		{Phase: PhaseBreak, Remaining: 0, Sessions: 1},
		{Phase: PhaseWork, Remaining: 2, Sessions: 1},
		{Phase: PhaseWork, Remaining: 1, Sessions: 1},
		{Phase: PhaseWork, Remaining: 0, Sessions: 1},
		{Phase: PhaseBreak, Remaining: 1, Sessions: 2},
	}, seen)
}

func TestSchedule_TickIsPure(t *testing.T) {
	s := DefaultSchedule()
	st := s.Start(1)
	before := st

	_ = s.Tick(st)
	assert.Equal(t, before, st)
}

func TestSchedule_Reset(t *testing.T) {
	s := Schedule{Work: 10 * time.Second, Break: 4 * time.Second}

	work := s.Reset(State{Phase: PhaseWork, Remaining: 3, Sessions: 2})
	assert.Equal(t, State{Phase: PhaseWork, Remaining: 10, Sessions: 2}, work)

	brk := s.Reset(State{Phase: PhaseBreak, Remaining: 1, Sessions: 2})
	assert.Equal(t, State{Phase: PhaseBreak, Remaining: 4, Sessions: 2}, brk)

	zero := s.Reset(State{})
	assert.Equal(t, State{Phase: PhaseWork, Remaining: 10}, zero)
}

func TestState_Clock(t *testing.T) {
	tests := []struct {
		remaining int
		expected  string
	}{
		{25 * 60, "25:00"},
		{61, "01:01"},
		{9, "00:09"},
		{0, "00:00"},
		{-5, "00:00"},
		{100 * 60, "100:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, State{Remaining: tt.remaining}.Clock())
		})
	}
}

func TestPhaseChanged(t *testing.T) {
	assert.False(t, PhaseChanged(State{Phase: PhaseWork, Remaining: 2}, State{Phase: PhaseWork, Remaining: 1}))
	assert.True(t, PhaseChanged(State{Phase: PhaseWork}, State{Phase: PhaseBreak}))
}
