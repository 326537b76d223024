// Package textcase converts strings between letter-case styles.
package textcase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Mode names a case transformation.
type Mode string

const (
	ModeUpper Mode = "upper"
	ModeLower Mode = "lower"
	ModeTitle Mode = "title"
	ModeCamel Mode = "camel"
	ModeSnake Mode = "snake"
)

// space is a character-class body for whitespace, Unicode space separators included.
const space = `\s\v\pZ\x{FEFF}`

var (
	titleWordPattern  = regexp.MustCompile(`\w[^` + space + `]*`)
	camelStartPattern = regexp.MustCompile(`(?:^|[` + space + `_-])[a-zA-Z]`)
	separatorPattern  = regexp.MustCompile(`[` + space + `_-]`)
	spaceRunPattern   = regexp.MustCompile(`[` + space + `]+`)
	lowerUpperPattern = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Modes returns all supported modes.
func Modes() []Mode {
	return []Mode{ModeUpper, ModeLower, ModeTitle, ModeCamel, ModeSnake}
}

// ParseMode resolves a mode name case-insensitively. Unknown names produce an
// error that suggests the closest known mode when there is one.
func ParseMode(name string) (Mode, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		if string(m) == want {
			return m, nil
		}
		names = append(names, string(m))
	}

	if want != "" {
		if matches := fuzzy.Find(want, names); len(matches) > 0 {
			return "", fmt.Errorf("unknown case mode %q (did you mean %q?)", name, matches[0].Str)
		}
	}
	return "", fmt.Errorf("unknown case mode %q (valid: %s)", name, strings.Join(names, ", "))
}

// Convert applies mode to s. Unknown modes return s unchanged.
func Convert(mode Mode, s string) string {
	switch mode {
	case ModeUpper:
		return Upper(s)
	case ModeLower:
		return Lower(s)
	case ModeTitle:
		return Title(s)
	case ModeCamel:
		return Camel(s)
	case ModeSnake:
		return Snake(s)
	default:
		return s
	}
}

// Upper returns s in upper case.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Lower returns s in lower case.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Title upper-cases the first character of every word and lower-cases the rest.
// A word starts at a letter, digit or underscore and runs to the next whitespace.
func Title(s string) string {
	return titleWordPattern.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	})
}

// Camel joins words into camelCase. Letters following the start of the string,
// whitespace, '_' or '-' are upper-cased, separators are removed and the first
// character is lower-cased. Other letters keep their case.
func Camel(s string) string {
	out := camelStartPattern.ReplaceAllStringFunc(s, func(m string) string {
		return m[:len(m)-1] + strings.ToUpper(m[len(m)-1:])
	})
	out = separatorPattern.ReplaceAllString(out, "")
	return lowerFirst(out)
}

// Snake converts s to snake_case: whitespace runs become '_', a lower-case
// letter followed by an upper-case one is split with '_', and the result is
// lower-cased.
func Snake(s string) string {
	out := spaceRunPattern.ReplaceAllString(s, "_")
	out = lowerUpperPattern.ReplaceAllString(out, "${1}_${2}")
	return strings.ToLower(out)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
