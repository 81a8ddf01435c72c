package internal

import (
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the kiosk's visual appearance. One theme is active for the
// whole process; screens read it through GetTheme.
type Theme struct {
	AccentColor          sdl.Color // Buttons, progress, selected pills
	TextColor            sdl.Color // Default text
	HighlightedTextColor sdl.Color // Text on accent surfaces
	HintColor            sdl.Color // Secondary labels, help text
	BackgroundColor      sdl.Color // Screen background
	ErrorColor           sdl.Color // Inline error panels

	// Severity accents for the results screen.
	MildColor     sdl.Color
	ModerateColor sdl.Color
	SevereColor   sdl.Color

	FontPath string
}

var currentTheme = defaultTheme()

func defaultTheme() Theme {
	return Theme{
		AccentColor:          sdl.Color{R: 79, G: 70, B: 229, A: 255},
		TextColor:            sdl.Color{R: 230, G: 230, B: 235, A: 255},
		HighlightedTextColor: sdl.Color{R: 255, G: 255, B: 255, A: 255},
		HintColor:            sdl.Color{R: 150, G: 150, B: 160, A: 255},
		BackgroundColor:      sdl.Color{R: 16, G: 18, B: 28, A: 255},
		ErrorColor:           sdl.Color{R: 220, G: 68, B: 68, A: 255},
		MildColor:            sdl.Color{R: 34, G: 197, B: 94, A: 255},
		ModerateColor:        sdl.Color{R: 249, G: 115, B: 22, A: 255},
		SevereColor:          sdl.Color{R: 239, G: 68, B: 68, A: 255},
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor parses a "#RRGGBB" hex string. Malformed values return the
// default accent so a bad config line never blanks the UI.
func HexToColor(hex string) sdl.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return defaultTheme().AccentColor
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return defaultTheme().AccentColor
	}
	return sdl.Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
