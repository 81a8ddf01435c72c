package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"mediscan-kiosk/pkg/intake/constants"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 0x4F, G: 0x46, B: 0xE5, A: 255}, HexToColor("#4F46E5"))
	assert.Equal(t, sdl.Color{R: 0xFF, G: 0x00, B: 0x00, A: 255}, HexToColor("ff0000"))

	// Malformed values fall back to the default accent.
	def := defaultTheme().AccentColor
	assert.Equal(t, def, HexToColor(""))
	assert.Equal(t, def, HexToColor("#123"))
	assert.Equal(t, def, HexToColor("#zzzzzz"))
}

func TestDirectionalInputRepeat(t *testing.T) {
	d := NewDirectionalInput()
	d.repeatDelay = 10 * time.Millisecond
	d.repeatInterval = 5 * time.Millisecond

	assert.True(t, d.SetHeld(constants.VirtualButtonDown, true))
	assert.Equal(t, constants.VirtualButtonDown, d.HeldDirection())

	// No repeat before the delay elapses.
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())

	time.Sleep(12 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonDown, d.Update())

	time.Sleep(6 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonDown, d.Update())

	d.SetHeld(constants.VirtualButtonDown, false)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())
}

func TestDirectionalInputIgnoresNonDirections(t *testing.T) {
	d := NewDirectionalInput()
	assert.False(t, d.SetHeld(constants.VirtualButtonConfirm, true))
	assert.False(t, d.SetHeld(constants.VirtualButtonShutter, true))
	assert.Equal(t, constants.VirtualButtonUnassigned, d.HeldDirection())
}
