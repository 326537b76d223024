package view

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// StyleAuto picks a dark or light style from the terminal background.
const StyleAuto = "auto"

// RenderMarkdown renders markdown for terminal display. Style is a glamour
// standard style name or StyleAuto; noColor forces the plain "notty" style.
// A wordWrap of zero disables wrapping.
func RenderMarkdown(markdown, style string, wordWrap int, noColor bool) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(wordWrap),
	}
	switch {
	case noColor:
		opts = append(opts, glamour.WithStandardStyle("notty"))
	case style == "" || style == StyleAuto:
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
