package preview

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrUnknownColorMode = errors.New("unknown color mode")
)

// Theme is a visual styling of the portfolio. Themes never change which
// data is shown.
type Theme string

const (
	ThemeModern   Theme = "modern"
	ThemeMinimal  Theme = "minimal"
	ThemeCreative Theme = "creative"
)

// Themes lists every theme in menu order.
var Themes = []Theme{ThemeModern, ThemeMinimal, ThemeCreative}

// ParseTheme accepts a theme name in any case.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Themes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// ColorMode selects the light or dark palette of a theme.
type ColorMode string

const (
	ModeLight ColorMode = "light"
	ModeDark  ColorMode = "dark"
)

// ColorModes lists both modes.
var ColorModes = []ColorMode{ModeLight, ModeDark}

// ParseColorMode accepts "light" or "dark" in any case.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLight, ModeDark:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

// ModeFor maps a dark-mode switch to a ColorMode.
func ModeFor(dark bool) ColorMode {
	if dark {
		return ModeDark
	}
	return ModeLight
}
