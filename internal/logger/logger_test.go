package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_QuietHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.InputLoaded("stdin", 10)
	assert.Empty(t, buf.String())

	l.StateError("save", errors.New("disk full"))
	assert.Contains(t, buf.String(), "state error")
	assert.Contains(t, buf.String(), "disk full")
}

func TestNew_VerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Converted("builtin", 120, 80, 3*time.Millisecond)
	out := buf.String()
	assert.Contains(t, out, "converted")
	assert.Contains(t, out, "engine=builtin")
	assert.Contains(t, out, "in_bytes=120")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() {
		l.PhaseChanged("break", 1)
		l.RenderFallback(errors.New("x"))
	})
}
