// Package constants defines shared constants and types used throughout the
// mediscan kiosk: virtual input buttons, text alignment, timing values and
// environment switches.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names recognized by the kiosk.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	ConfigPathEnvVar   = "MEDISCAN_CONFIG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button. Both the SDL keyboard
// (development) and the kiosk's hardware keys (evdev) map onto this set.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonConfirm // advance / select / type selected key
	VirtualButtonBack    // retake / clear
	VirtualButtonShutter // dedicated capture key on the kiosk front panel
)

func (vb VirtualButton) String() string {
	switch vb {
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonConfirm:
		return "Confirm"
	case VirtualButtonBack:
		return "Back"
	case VirtualButtonShutter:
		return "Shutter"
	default:
		return "Unassigned"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Timing constants shared across screens.
const (
	DefaultInputDelay = 20 * time.Millisecond  // Debounce delay between input events
	ChoiceFlashDelay  = 300 * time.Millisecond // Confirmation highlight before advancing

	// QuestionAdvanceDelay is how long the questionnaire waits after an
	// answer before moving to the next question. Answering again inside
	// this window overwrites the answer and restarts the delay.
	QuestionAdvanceDelay = 500 * time.Millisecond

	// Face-guided auto-capture timing.
	DetectionInterval = 300 * time.Millisecond
	CountdownInterval = time.Second
	CountdownSteps    = 3
)
