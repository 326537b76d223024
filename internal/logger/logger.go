// Package logger provides the structured logger used by microtools commands.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w. Verbose enables debug output; otherwise
// only warnings and errors are shown.
func New(w io.Writer, verbose bool) *Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "microtools",
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard, false)
}

// ConfigLoaded logs the resolved configuration source
func (l *Logger) ConfigLoaded(path, engine string) {
	l.Debug("config loaded",
		"path", path,
		"engine", engine)
}

// InputLoaded logs where conversion input came from
func (l *Logger) InputLoaded(source string, size int) {
	l.Debug("input loaded",
		"source", source,
		"bytes", size)
}

// Converted logs a finished conversion
func (l *Logger) Converted(engine string, in, out int, duration time.Duration) {
	l.Debug("converted",
		"engine", engine,
		"in_bytes", in,
		"out_bytes", out,
		"duration", duration.Round(time.Microsecond))
}

// RenderFallback logs that terminal rendering failed and plain output is used
func (l *Logger) RenderFallback(err error) {
	l.Warn("render failed, printing plain markdown",
		"error", err)
}

// PhaseChanged logs a timer phase transition
func (l *Logger) PhaseChanged(phase string, sessions int) {
	l.Debug("phase changed",
		"phase", phase,
		"sessions", sessions)
}

// StateError logs a failure to persist timer state
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}
