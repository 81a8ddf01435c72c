package internal

import (
	"time"

	"mediscan-kiosk/pkg/intake/constants"
)

// DirectionalInput tracks held directions and handles repeat timing. Embed
// in screen controllers for consistent held-key navigation.
type DirectionalInput struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing:
// 300ms before the first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return DirectionalInput{
		repeatDelay:    300 * time.Millisecond,
		repeatInterval: 50 * time.Millisecond,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a direction. Returns true if the
// button was directional.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonUp:
		d.held.up = held
	case constants.VirtualButtonDown:
		d.held.down = held
	case constants.VirtualButtonLeft:
		d.held.left = held
	case constants.VirtualButtonRight:
		d.held.right = held
	default:
		return false
	}
	if !held {
		d.hasRepeated = false
	}
	return true
}

// HeldDirection returns the held direction with priority up, down, left,
// right, or VirtualButtonUnassigned when nothing is held.
func (d *DirectionalInput) HeldDirection() constants.VirtualButton {
	switch {
	case d.held.up:
		return constants.VirtualButtonUp
	case d.held.down:
		return constants.VirtualButtonDown
	case d.held.left:
		return constants.VirtualButtonLeft
	case d.held.right:
		return constants.VirtualButtonRight
	}
	return constants.VirtualButtonUnassigned
}

// Update checks repeat timing. Call once per frame; returns the direction
// to process, or VirtualButtonUnassigned.
func (d *DirectionalInput) Update() constants.VirtualButton {
	dir := d.HeldDirection()
	if dir == constants.VirtualButtonUnassigned {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = false
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}
	if time.Since(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = true
		return dir
	}
	return constants.VirtualButtonUnassigned
}

// Reset clears all held state.
func (d *DirectionalInput) Reset() {
	d.held.up, d.held.down, d.held.left, d.held.right = false, false, false, false
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}
