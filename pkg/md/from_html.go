package md

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/vomodo/microtools/pkg/markup"
)

// Engine names an HTML to markdown conversion engine.
type Engine string

const (
	// EngineBuiltin walks the markup tree with Convert.
	EngineBuiltin Engine = "builtin"
	// EngineCommonMark delegates to html-to-markdown, which emits CommonMark
	// with numbered ordered lists and escaping.
	EngineCommonMark Engine = "commonmark"
)

// Engines returns the supported engine names.
func Engines() []Engine {
	return []Engine{EngineBuiltin, EngineCommonMark}
}

// ParseEngine validates an engine name. An empty name selects the builtin engine.
func ParseEngine(name string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(name))); e {
	case "":
		return EngineBuiltin, nil
	case EngineBuiltin, EngineCommonMark:
		return e, nil
	default:
		return "", fmt.Errorf("unknown engine %q", name)
	}
}

// ConvertOptions configures the HTML to markdown conversion.
type ConvertOptions struct {
	// Engine selects the converter. Empty means EngineBuiltin.
	Engine Engine
}

// FromHTML converts an HTML fragment to markdown with the builtin engine.
func FromHTML(html string) (string, error) {
	return FromHTMLWithOptions(html, ConvertOptions{})
}

// FromHTMLWithOptions converts an HTML fragment to markdown with configurable options.
func FromHTMLWithOptions(html string, opts ConvertOptions) (string, error) {
	engine, err := ParseEngine(string(opts.Engine))
	if err != nil {
		return "", err
	}

	if html == "" {
		return "", nil
	}

	switch engine {
	case EngineCommonMark:
		markdown, err := htmltomarkdown.ConvertString(html)
		if err != nil {
			return "", fmt.Errorf("failed to convert html: %w", err)
		}
		return strings.TrimSpace(markdown), nil
	default:
		root, err := markup.ParseString(html)
		if err != nil {
			return "", err
		}
		return Convert(root), nil
	}
}
